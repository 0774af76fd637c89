package catalog

import (
	"strings"
	"time"
)

type Season struct {
	ID        string
	Name      string
	Year      int
	StartDate time.Time
	EndDate   time.Time
	Active    bool
}

// Event is one tournament within a season. Each event runs a single auction.
type Event struct {
	ID        string
	SeasonID  string
	Name      string
	Sport     string
	AuctionID string
	StartsAt  time.Time
	Status    string
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func ParseApprovalStatus(raw string) ApprovalStatus {
	switch ApprovalStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case ApprovalApproved:
		return ApprovalApproved
	case ApprovalRejected:
		return ApprovalRejected
	default:
		return ApprovalPending
	}
}

// Approval is a registration waiting for an admin decision.
type Approval struct {
	ID          string
	UserID      string
	Name        string
	Email       string
	Role        string
	TeamID      string
	Status      ApprovalStatus
	RequestedAt time.Time
}
