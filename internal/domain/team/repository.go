package team

import (
	"context"

	"github.com/riskibarqy/zerobid-console/internal/domain/account"
)

// Repository describes the team roster reads the console needs.
type Repository interface {
	ListByEvent(ctx context.Context, sess account.Session, eventID string) ([]Team, error)
}

// Ledger reads the backend-owned budget ledger for an auction.
type Ledger interface {
	GetTeamBudget(ctx context.Context, sess account.Session, auctionID string) (Board, error)
}
