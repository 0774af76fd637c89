package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/domain/catalog"
	"github.com/riskibarqy/zerobid-console/internal/domain/player"
	"github.com/riskibarqy/zerobid-console/internal/domain/team"
)

type CatalogService struct {
	catalog catalog.Repository
	teams   team.Repository
	players player.Repository
}

func NewCatalogService(catalogRepo catalog.Repository, teamRepo team.Repository, playerRepo player.Repository) *CatalogService {
	return &CatalogService{
		catalog: catalogRepo,
		teams:   teamRepo,
		players: playerRepo,
	}
}

func (s *CatalogService) ListSeasons(ctx context.Context, sess account.Session) ([]catalog.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListSeasons")
	defer span.End()

	seasons, err := s.catalog.ListSeasons(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	sort.SliceStable(seasons, func(i, j int) bool {
		return seasons[i].Year > seasons[j].Year
	})
	return seasons, nil
}

func (s *CatalogService) ListEvents(ctx context.Context, sess account.Session, seasonID string) ([]catalog.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListEvents")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	events, err := s.catalog.ListEventsBySeason(ctx, sess, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list events season_id=%s: %w", seasonID, err)
	}
	return events, nil
}

func (s *CatalogService) ListTeams(ctx context.Context, sess account.Session, eventID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListTeams")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	teams, err := s.teams.ListByEvent(ctx, sess, eventID)
	if err != nil {
		return nil, fmt.Errorf("list teams event_id=%s: %w", eventID, err)
	}
	return teams, nil
}

func (s *CatalogService) ListPlayers(ctx context.Context, sess account.Session, eventID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListPlayers")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	players, err := s.players.ListByEvent(ctx, sess, eventID)
	if err != nil {
		return nil, fmt.Errorf("list players event_id=%s: %w", eventID, err)
	}
	return players, nil
}

func (s *CatalogService) ListPendingApprovals(ctx context.Context, sess account.Session) ([]catalog.Approval, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.ListPendingApprovals")
	defer span.End()

	if !sess.IsAdmin() {
		return nil, fmt.Errorf("%w: approvals are admin only", ErrForbidden)
	}

	approvals, err := s.catalog.ListPendingApprovals(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("list pending approvals: %w", err)
	}
	sort.SliceStable(approvals, func(i, j int) bool {
		return approvals[i].RequestedAt.Before(approvals[j].RequestedAt)
	})
	return approvals, nil
}

func (s *CatalogService) Approve(ctx context.Context, sess account.Session, approvalID string) (catalog.Approval, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CatalogService.Approve")
	defer span.End()

	if !sess.IsAdmin() {
		return catalog.Approval{}, fmt.Errorf("%w: approvals are admin only", ErrForbidden)
	}
	approvalID = strings.TrimSpace(approvalID)
	if approvalID == "" {
		return catalog.Approval{}, fmt.Errorf("%w: approval id is required", ErrInvalidInput)
	}

	approval, err := s.catalog.Approve(ctx, sess, approvalID)
	if err != nil {
		return catalog.Approval{}, fmt.Errorf("approve registration approval_id=%s: %w", approvalID, err)
	}
	return approval, nil
}
