package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/domain/catalog"
	"github.com/riskibarqy/zerobid-console/internal/domain/team"
	"github.com/sourcegraph/conc/pool"
)

type Dashboard struct {
	UserID string
	Name   string
	Email  string
	Role   account.Role
	TeamID string

	CurrentSeason    *catalog.Season
	SeasonCount      int
	EventCount       int
	PendingApprovals int

	Budget *TeamBudget
}

type DashboardService struct {
	catalog catalog.Repository
	ledger  team.Ledger
	clock   clockwork.Clock
}

func NewDashboardService(catalogRepo catalog.Repository, ledger team.Ledger, clock clockwork.Clock) *DashboardService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &DashboardService{
		catalog: catalogRepo,
		ledger:  ledger,
		clock:   clock,
	}
}

// Get builds the role dashboard. Admins get catalog counts, team reps get their
// budget for auctionID when one is given, everyone else just the profile.
func (s *DashboardService) Get(ctx context.Context, sess account.Session, auctionID string) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	out := Dashboard{
		UserID: sess.UserID,
		Name:   sess.Name,
		Email:  sess.Email,
		Role:   sess.Role,
		TeamID: sess.TeamID,
	}

	switch sess.Role {
	case account.RoleAdmin:
		if err := s.fillAdmin(ctx, sess, &out); err != nil {
			return Dashboard{}, err
		}
	case account.RoleTeamRep:
		auctionID = strings.TrimSpace(auctionID)
		if auctionID == "" || sess.TeamID == "" {
			return out, nil
		}
		board, err := s.ledger.GetTeamBudget(ctx, sess, auctionID)
		if err != nil {
			return Dashboard{}, fmt.Errorf("get team budget for dashboard: %w", err)
		}
		budget := TeamBudget{TeamID: sess.TeamID, InitialBudget: board.InitialBudget, RemainingBudget: board.InitialBudget}
		if row, ok := board.Find(sess.TeamID); ok {
			budget.RemainingBudget = row.RemainingBudget
			budget.PlayersBought = row.PlayersBought
		}
		budget.Percent = team.Percent(budget.RemainingBudget, budget.InitialBudget)
		budget.Tier = team.TierFor(budget.Percent)
		out.Budget = &budget
	}

	return out, nil
}

func (s *DashboardService) fillAdmin(ctx context.Context, sess account.Session, out *Dashboard) error {
	var (
		seasons   []catalog.Season
		approvals []catalog.Approval
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		items, err := s.catalog.ListSeasons(ctx, sess)
		if err != nil {
			return fmt.Errorf("list seasons for dashboard: %w", err)
		}
		seasons = items
		return nil
	})
	p.Go(func(ctx context.Context) error {
		items, err := s.catalog.ListPendingApprovals(ctx, sess)
		if err != nil {
			return fmt.Errorf("list approvals for dashboard: %w", err)
		}
		approvals = items
		return nil
	})
	if err := p.Wait(); err != nil {
		return err
	}

	out.SeasonCount = len(seasons)
	out.PendingApprovals = len(approvals)

	current, ok := resolveCurrentSeason(seasons, s.clock.Now())
	if !ok {
		return nil
	}
	out.CurrentSeason = &current

	events, err := s.catalog.ListEventsBySeason(ctx, sess, current.ID)
	if err != nil {
		return fmt.Errorf("list events for dashboard: %w", err)
	}
	out.EventCount = len(events)
	return nil
}

func resolveCurrentSeason(seasons []catalog.Season, now time.Time) (catalog.Season, bool) {
	if len(seasons) == 0 {
		return catalog.Season{}, false
	}

	for _, item := range seasons {
		if item.Active {
			return item, true
		}
	}

	for _, item := range seasons {
		if item.StartDate.IsZero() || item.EndDate.IsZero() {
			continue
		}
		if !now.Before(item.StartDate) && now.Before(item.EndDate) {
			return item, true
		}
	}

	latest := seasons[0]
	for _, item := range seasons[1:] {
		if item.Year > latest.Year {
			latest = item
		}
	}
	return latest, true
}
