package auction

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrTeamNotSelected    = errors.New("team is not selected")
	ErrInvalidBidAmount   = errors.New("bid amount must be greater than zero")
	ErrInsufficientBudget = errors.New("insufficient budget")
)

// BudgetError is returned when a bid is above the team's remaining budget.
// Its message is shown to the auctioneer verbatim.
type BudgetError struct {
	TeamName  string
	Amount    int64
	Remaining int64
}

func (e *BudgetError) Error() string {
	return fmt.Sprintf("Bid amount exceeds %s's remaining budget", e.TeamName)
}

func (e *BudgetError) Unwrap() error {
	return ErrInsufficientBudget
}

// ValidateBid is the pre-submit check. The backend ledger is still the
// authority; this only stops obviously bad bids before a network call.
func ValidateBid(teamID, teamName string, amount, remaining int64) error {
	if strings.TrimSpace(teamID) == "" {
		return ErrTeamNotSelected
	}
	if amount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBidAmount, amount)
	}
	if amount > remaining {
		name := strings.TrimSpace(teamName)
		if name == "" {
			name = teamID
		}
		return &BudgetError{TeamName: name, Amount: amount, Remaining: remaining}
	}
	return nil
}

// SaleRequest is the auctioneer's proposed sale of the current player.
type SaleRequest struct {
	TeamID          string
	TeamName        string
	Amount          int64
	RemainingBudget int64
}

// PendingSale is an issued confirmation waiting for the auctioneer to accept.
type PendingSale struct {
	ID              string
	AuctionID       string
	PlayerID        string
	PlayerName      string
	TeamID          string
	TeamName        string
	Amount          int64
	RemainingBudget int64
	CreatedAt       time.Time
}
