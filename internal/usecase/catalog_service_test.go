package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/domain/catalog"
	catalogmock "github.com/riskibarqy/zerobid-console/internal/mocks/domain/catalog"
	playermock "github.com/riskibarqy/zerobid-console/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/zerobid-console/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_ApprovalsAreAdminOnly(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(catalogmock.NewRepository(t), teammock.NewRepository(t), playermock.NewRepository(t))
	rep := account.Session{UserID: "u-rep", Role: account.RoleTeamRep}

	if _, err := service.ListPendingApprovals(context.Background(), rep); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := service.Approve(context.Background(), rep, "a1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCatalogService_ListPendingApprovalsOldestFirst(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := catalogmock.NewRepository(t)
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	repo.On("ListPendingApprovals", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), adminSession).
		Return([]catalog.Approval{
			{ID: "late", RequestedAt: base.Add(2 * time.Hour)},
			{ID: "early", RequestedAt: base},
		}, nil).
		Once()

	service := NewCatalogService(repo, teammock.NewRepository(t), playermock.NewRepository(t))
	got, err := service.ListPendingApprovals(ctx, adminSession)
	if err != nil {
		t.Fatalf("list approvals: %v", err)
	}
	if len(got) != 2 || got[0].ID != "early" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestCatalogService_RequiresIdentifiers(t *testing.T) {
	t.Parallel()

	service := NewCatalogService(catalogmock.NewRepository(t), teammock.NewRepository(t), playermock.NewRepository(t))
	if _, err := service.ListEvents(context.Background(), adminSession, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for events, got %v", err)
	}
	if _, err := service.ListTeams(context.Background(), adminSession, " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for teams, got %v", err)
	}
	if _, err := service.ListPlayers(context.Background(), adminSession, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for players, got %v", err)
	}
}

func TestCatalogService_ListSeasonsNewestFirst(t *testing.T) {
	t.Parallel()

	repo := catalogmock.NewRepository(t)
	repo.On("ListSeasons", mock.Anything, adminSession).
		Return([]catalog.Season{{ID: "s-2024", Year: 2024}, {ID: "s-2026", Year: 2026}, {ID: "s-2025", Year: 2025}}, nil).
		Once()

	service := NewCatalogService(repo, teammock.NewRepository(t), playermock.NewRepository(t))
	got, err := service.ListSeasons(context.Background(), adminSession)
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if got[0].ID != "s-2026" || got[2].ID != "s-2024" {
		t.Fatalf("unexpected order: %+v", got)
	}
}
