package player

import (
	"context"

	"github.com/riskibarqy/zerobid-console/internal/domain/account"
)

// NextOptions tells the rotation endpoint what happened to the previous player.
type NextOptions struct {
	Skipped  bool
	PlayerID string
}

// Rotation hands out the next randomly selected player of an event. Selection
// is owned by the backend.
type Rotation interface {
	GetNextPlayer(ctx context.Context, sess account.Session, eventID string, opts NextOptions) (Player, error)
}

// Repository lists the player pool for catalog screens.
type Repository interface {
	ListByEvent(ctx context.Context, sess account.Session, eventID string) ([]Player, error)
}
