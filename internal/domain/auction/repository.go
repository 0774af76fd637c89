package auction

import (
	"context"

	"github.com/riskibarqy/zerobid-console/internal/domain/account"
)

// Purchase is the transaction body the backend records for a sale.
type Purchase struct {
	AuctionID string
	PlayerID  string
	TeamID    string
	SoldPrice int64
}

// Purchaser submits sales to the backend ledger.
type Purchaser interface {
	PurchasePlayer(ctx context.Context, sess account.Session, purchase Purchase) error
}
