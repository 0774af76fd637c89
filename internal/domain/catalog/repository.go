package catalog

import (
	"context"

	"github.com/riskibarqy/zerobid-console/internal/domain/account"
)

type Repository interface {
	ListSeasons(ctx context.Context, sess account.Session) ([]Season, error)
	ListEventsBySeason(ctx context.Context, sess account.Session, seasonID string) ([]Event, error)
	ListPendingApprovals(ctx context.Context, sess account.Session) ([]Approval, error)
	Approve(ctx context.Context, sess account.Session, approvalID string) (Approval, error)
}
