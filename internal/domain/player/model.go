package player

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTransition = errors.New("invalid player status transition")

// Status is the sale status of a player within one auction round.
type Status string

const (
	StatusAvailable Status = "available"
	StatusPending   Status = "pending"
	StatusSold      Status = "sold"
	StatusUnsold    Status = "unsold"
)

func ParseStatus(raw string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusSold:
		return StatusSold
	case StatusUnsold:
		return StatusUnsold
	case StatusPending:
		return StatusPending
	default:
		return StatusAvailable
	}
}

// Final reports whether the player already has an outcome for the round.
func (s Status) Final() bool {
	return s == StatusSold || s == StatusUnsold
}

// Source records which backend payload shape a player was decoded from.
type Source string

const (
	SourceAPI    Source = "api"
	SourceLegacy Source = "legacy"
)

// Player is a member of an event's auction pool.
type Player struct {
	ID         string
	FirstName  string
	LastName   string
	BasePrice  int64
	Status     Status
	TeamID     string
	SoldAmount int64
	Icon       bool
	Source     Source
}

func (p Player) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

func (p Player) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("player id is required")
	}
	if p.BasePrice < 0 {
		return fmt.Errorf("player base price must be >= 0")
	}
	return nil
}

// Sold returns the player with a sale outcome applied. A player gets exactly
// one outcome per round.
func (p Player) Sold(teamID string, amount int64) (Player, error) {
	if p.Status.Final() {
		return p, fmt.Errorf("%w: player=%s already %s", ErrInvalidTransition, p.ID, p.Status)
	}
	if strings.TrimSpace(teamID) == "" {
		return p, fmt.Errorf("team id is required to sell player %s", p.ID)
	}
	p.Status = StatusSold
	p.TeamID = teamID
	p.SoldAmount = amount
	return p, nil
}

func (p Player) Unsold() (Player, error) {
	if p.Status.Final() {
		return p, fmt.Errorf("%w: player=%s already %s", ErrInvalidTransition, p.ID, p.Status)
	}
	p.Status = StatusUnsold
	p.TeamID = ""
	p.SoldAmount = 0
	return p, nil
}
