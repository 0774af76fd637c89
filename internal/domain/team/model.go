package team

import (
	"fmt"
	"strings"
)

// Team is a franchise taking part in an event's auction.
type Team struct {
	ID          string
	EventID     string
	Name        string
	Short       string
	TotalBudget int64
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// Budget is the backend ledger view of one team in an auction.
type Budget struct {
	TeamID          string
	RemainingBudget int64
	PlayersBought   int
}

// Board is the budget snapshot the console holds between player transitions.
type Board struct {
	AuctionID     string
	InitialBudget int64
	Teams         []Budget
}

func (b Board) Find(teamID string) (Budget, bool) {
	for _, item := range b.Teams {
		if item.TeamID == teamID {
			return item, true
		}
	}
	return Budget{}, false
}

// Tier is the colour band shown next to a team's remaining budget.
type Tier string

const (
	TierRed   Tier = "red"
	TierAmber Tier = "amber"
	TierGreen Tier = "green"
)

// Percent is remaining/initial as a percentage in [0,100]. A missing initial
// budget reads as 0%.
func Percent(remaining, initial int64) float64 {
	if initial <= 0 || remaining <= 0 {
		return 0
	}
	pct := float64(remaining) / float64(initial) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

func TierFor(percent float64) Tier {
	switch {
	case percent < 30:
		return TierRed
	case percent < 60:
		return TierAmber
	default:
		return TierGreen
	}
}

// Standing joins a team with its budget row for display.
type Standing struct {
	Team            Team
	RemainingBudget int64
	PlayersBought   int
	Percent         float64
	Tier            Tier
}

// Standings joins roster and board. Teams missing from the board are shown
// with their full initial budget.
func Standings(roster []Team, board Board) []Standing {
	out := make([]Standing, 0, len(roster))
	for _, t := range roster {
		row := Standing{Team: t, RemainingBudget: board.InitialBudget}
		if b, ok := board.Find(t.ID); ok {
			row.RemainingBudget = b.RemainingBudget
			row.PlayersBought = b.PlayersBought
		}
		row.Percent = Percent(row.RemainingBudget, board.InitialBudget)
		row.Tier = TierFor(row.Percent)
		out = append(out, row)
	}
	return out
}
