package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/domain/auction"
	"github.com/riskibarqy/zerobid-console/internal/domain/player"
	"github.com/riskibarqy/zerobid-console/internal/domain/team"
	"github.com/riskibarqy/zerobid-console/internal/platform/cache"
	"github.com/riskibarqy/zerobid-console/internal/platform/id"
	"github.com/riskibarqy/zerobid-console/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const (
	DefaultNextPlayerDelay = 1500 * time.Millisecond
	DefaultTeamCacheTTL    = 5 * time.Minute
)

type AuctionConfig struct {
	NextPlayerDelay time.Duration
	TeamCacheTTL    time.Duration
}

// AuctionView is one auction as the console shows it: session state plus the
// latest budget board joined with the event roster.
type AuctionView struct {
	auction.Snapshot
	InitialBudget int64
	Standings     []team.Standing
}

type SaleInput struct {
	TeamID string
	Amount int64
}

// AuctionService runs one in-memory session per auction id and drives it
// against the backend rotation, ledger and purchase endpoints.
type AuctionService struct {
	rotation  player.Rotation
	teams     team.Repository
	ledger    team.Ledger
	purchaser auction.Purchaser
	ids       id.Generator
	clock     clockwork.Clock
	logger    *logging.Logger
	rosters   *cache.Store[[]team.Team]
	nextDelay time.Duration

	mu       sync.Mutex
	runtimes map[string]*auctionRuntime
}

type auctionRuntime struct {
	mu         sync.Mutex
	session    *auction.Session
	owner      account.Session
	roster     []team.Team
	board      team.Board
	nextOpts   player.NextOptions
	timer      clockwork.Timer
	generation uint64
	subs       map[string]chan AuctionView
}

func NewAuctionService(
	rotation player.Rotation,
	teams team.Repository,
	ledger team.Ledger,
	purchaser auction.Purchaser,
	ids id.Generator,
	clock clockwork.Clock,
	logger *logging.Logger,
	cfg AuctionConfig,
) *AuctionService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if cfg.NextPlayerDelay <= 0 {
		cfg.NextPlayerDelay = DefaultNextPlayerDelay
	}
	if cfg.TeamCacheTTL <= 0 {
		cfg.TeamCacheTTL = DefaultTeamCacheTTL
	}

	return &AuctionService{
		rotation:  rotation,
		teams:     teams,
		ledger:    ledger,
		purchaser: purchaser,
		ids:       ids,
		clock:     clock,
		logger:    logger.Named("auction"),
		rosters:   cache.NewStore[[]team.Team](cfg.TeamCacheTTL, clock),
		nextDelay: cfg.NextPlayerDelay,
		runtimes:  make(map[string]*auctionRuntime),
	}
}

// Open binds an auction id to its event and loads the budget board. Opening
// an already open auction returns its current state.
func (s *AuctionService) Open(ctx context.Context, sess account.Session, auctionID, eventID string) (AuctionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Open")
	defer span.End()

	session, err := auction.NewSession(auctionID, eventID, s.clock.Now())
	if err != nil {
		return AuctionView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.mu.Lock()
	if other, running := s.runningForEventLocked(session.EventID, session.AuctionID); running {
		s.mu.Unlock()
		return AuctionView{}, fmt.Errorf("%w: event %s is already running in auction %s", ErrEventAlreadyBound, session.EventID, other)
	}
	rt, exists := s.runtimes[session.AuctionID]
	if !exists {
		rt = &auctionRuntime{session: session, subs: make(map[string]chan AuctionView)}
		s.runtimes[session.AuctionID] = rt
	}
	s.mu.Unlock()
	s.rosters.Delete(ctx, rosterCacheKey(session.EventID))

	rt.mu.Lock()
	if exists && rt.session.EventID != session.EventID {
		if isRunning(rt.session.Status) {
			current := rt.session.EventID
			rt.mu.Unlock()
			return AuctionView{}, fmt.Errorf("%w: auction %s is running for event %s", ErrInvalidInput, session.AuctionID, current)
		}
		s.stopTimerLocked(rt)
		rt.generation++
		rt.session = session
		rt.roster = nil
		rt.board = team.Board{}
		rt.nextOpts = player.NextOptions{}
	}
	rt.owner = sess
	rt.mu.Unlock()

	if err := s.refreshBoard(ctx, sess, rt); err != nil {
		s.logger.WarnContext(ctx, "open auction without fresh budgets", "auction_id", session.AuctionID, "error", err)
	}

	return s.publish(rt), nil
}

// Start moves a ready session to live and puts the first player on the block.
// A failed fetch leaves the session live with LastError set.
func (s *AuctionService) Start(ctx context.Context, sess account.Session, auctionID string) (AuctionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Start")
	defer span.End()

	rt, err := s.runtime(auctionID)
	if err != nil {
		return AuctionView{}, err
	}

	rt.mu.Lock()
	boundID, eventID := rt.session.AuctionID, rt.session.EventID
	rt.mu.Unlock()
	s.mu.Lock()
	other, running := s.runningForEventLocked(eventID, boundID)
	s.mu.Unlock()
	if running {
		return AuctionView{}, fmt.Errorf("%w: event %s is already running in auction %s", ErrEventAlreadyBound, eventID, other)
	}

	rt.mu.Lock()
	rt.owner = sess
	if err := rt.session.Start(s.clock.Now()); err != nil {
		rt.mu.Unlock()
		return AuctionView{}, err
	}
	rt.nextOpts = player.NextOptions{}
	gen := rt.generation
	rt.publishLocked()
	rt.mu.Unlock()

	s.logger.InfoContext(ctx, "auction started", "auction_id", auctionID, "user_id", sess.UserID)
	_ = s.fetchNext(ctx, sess, rt, gen)

	return s.view(rt), nil
}

func (s *AuctionService) Pause(ctx context.Context, sess account.Session, auctionID string) (AuctionView, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AuctionService.Pause")
	defer span.End()

	return s.transition(sess, auctionID, func(session *auction.Session, now time.Time) error {
		return session.Pause(now)
	})
}

func (s *AuctionService) Resume(ctx context.Context, sess account.Session, auctionID string) (AuctionView, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AuctionService.Resume")
	defer span.End()

	return s.transition(sess, auctionID, func(session *auction.Session, now time.Time) error {
		return session.Resume(now)
	})
}

func (s *AuctionService) Complete(ctx context.Context, sess account.Session, auctionID string) (AuctionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Complete")
	defer span.End()

	view, err := s.transition(sess, auctionID, func(session *auction.Session, now time.Time) error {
		return session.Complete(now)
	})
	if err != nil {
		return AuctionView{}, err
	}
	s.logger.InfoContext(ctx, "auction completed", "auction_id", auctionID, "processed", view.Processed)
	return view, nil
}

// Reset clears local progress only. The backend round keeps its sold and
// unsold players.
func (s *AuctionService) Reset(ctx context.Context, sess account.Session, auctionID string) (AuctionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Reset")
	defer span.End()

	view, err := s.transition(sess, auctionID, func(session *auction.Session, now time.Time) error {
		session.Reset(now)
		return nil
	})
	if err != nil {
		return AuctionView{}, err
	}
	s.logger.WarnContext(ctx, "auction session reset locally, backend round unchanged", "auction_id", auctionID, "user_id", sess.UserID)

	s.rosters.Delete(ctx, rosterCacheKey(view.EventID))
	rt, err := s.runtime(auctionID)
	if err != nil {
		return view, nil
	}
	if err := s.refreshBoard(ctx, sess, rt); err != nil {
		s.logger.WarnContext(ctx, "reset auction without fresh budgets", "auction_id", auctionID, "error", err)
	}
	return s.publish(rt), nil
}

// NextPlayer is the manual rotation trigger. It re-sends the skip flag of the
// last unsold player when the automatic fetch after it failed.
func (s *AuctionService) NextPlayer(ctx context.Context, sess account.Session, auctionID string) (AuctionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.NextPlayer")
	defer span.End()

	rt, err := s.runtime(auctionID)
	if err != nil {
		return AuctionView{}, err
	}

	rt.mu.Lock()
	rt.owner = sess
	if rt.session.Status != auction.StatusLive {
		status := rt.session.Status
		rt.mu.Unlock()
		return AuctionView{}, fmt.Errorf("%w: status=%s", auction.ErrAuctionNotLive, status)
	}
	if rt.session.Current != nil {
		current := rt.session.Current.ID
		rt.mu.Unlock()
		return AuctionView{}, fmt.Errorf("%w: player %s is still up for auction", ErrInvalidInput, current)
	}
	s.stopTimerLocked(rt)
	gen := rt.generation
	rt.mu.Unlock()

	if err := s.fetchNext(ctx, sess, rt, gen); err != nil {
		markSpanError(span, err)
		return s.view(rt), err
	}
	return s.view(rt), nil
}

// ProposeSale validates a bid against the last budget snapshot and issues a
// pending confirmation. Nothing is sent to the backend yet.
func (s *AuctionService) ProposeSale(ctx context.Context, sess account.Session, auctionID string, input SaleInput) (auction.PendingSale, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AuctionService.ProposeSale")
	defer span.End()

	rt, err := s.runtime(auctionID)
	if err != nil {
		return auction.PendingSale{}, err
	}

	confirmationID, err := s.ids.NewID()
	if err != nil {
		return auction.PendingSale{}, fmt.Errorf("generate confirmation id: %w", err)
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.owner = sess

	req := auction.SaleRequest{TeamID: strings.TrimSpace(input.TeamID), Amount: input.Amount}
	if req.TeamID != "" {
		selected, ok := findTeam(rt.roster, req.TeamID)
		if !ok {
			return auction.PendingSale{}, fmt.Errorf("%w: team %s is not part of event %s", ErrInvalidInput, req.TeamID, rt.session.EventID)
		}
		req.TeamName = selected.Name
		req.RemainingBudget = rt.board.InitialBudget
		if budget, ok := rt.board.Find(selected.ID); ok {
			req.RemainingBudget = budget.RemainingBudget
		}
	}

	pending, err := rt.session.OpenSale(req, confirmationID, s.clock.Now())
	if err != nil {
		return auction.PendingSale{}, err
	}
	rt.publishLocked()
	return pending, nil
}

// ConfirmSale submits the pending sale. Local state changes only after the
// backend accepts the purchase; the next player follows after a short delay.
func (s *AuctionService) ConfirmSale(ctx context.Context, sess account.Session, auctionID, confirmationID string) (AuctionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.ConfirmSale")
	defer span.End()

	rt, err := s.runtime(auctionID)
	if err != nil {
		return AuctionView{}, err
	}

	rt.mu.Lock()
	rt.owner = sess
	pending, err := rt.session.TakePending(strings.TrimSpace(confirmationID), s.clock.Now())
	if err != nil {
		rt.publishLocked()
		rt.mu.Unlock()
		return AuctionView{}, err
	}
	gen := rt.generation
	rt.publishLocked()
	rt.mu.Unlock()

	err = s.purchaser.PurchasePlayer(ctx, sess, auction.Purchase{
		AuctionID: pending.AuctionID,
		PlayerID:  pending.PlayerID,
		TeamID:    pending.TeamID,
		SoldPrice: pending.Amount,
	})
	if err != nil {
		rt.mu.Lock()
		if rt.generation == gen {
			rt.session.AbortSubmission(s.clock.Now())
			rt.session.LastError = err.Error()
			rt.publishLocked()
		}
		rt.mu.Unlock()
		s.logger.ErrorContext(ctx, "purchase player failed",
			"auction_id", pending.AuctionID,
			"player_id", pending.PlayerID,
			"team_id", pending.TeamID,
			"sold_price", pending.Amount,
			"error", err,
		)
		markSpanError(span, err)
		return s.view(rt), fmt.Errorf("purchase player player_id=%s: %w", pending.PlayerID, err)
	}

	rt.mu.Lock()
	if rt.generation != gen {
		rt.mu.Unlock()
		s.logger.WarnContext(ctx, "purchase accepted after local session was reset",
			"auction_id", pending.AuctionID,
			"player_id", pending.PlayerID,
		)
		return s.view(rt), fmt.Errorf("%w: session changed while the sale was submitted", auction.ErrStaleSale)
	}
	sold, err := rt.session.RecordSale(pending, s.clock.Now())
	if err != nil {
		rt.mu.Unlock()
		return s.view(rt), err
	}
	rt.nextOpts = player.NextOptions{}
	if rt.session.Status == auction.StatusLive {
		s.scheduleNextLocked(rt)
	}
	rt.publishLocked()
	rt.mu.Unlock()

	s.logger.InfoContext(ctx, "player sold",
		"auction_id", pending.AuctionID,
		"player_id", sold.ID,
		"team_id", sold.TeamID,
		"sold_price", sold.SoldAmount,
	)

	_ = s.refreshBoard(ctx, sess, rt)
	return s.publish(rt), nil
}

func (s *AuctionService) CancelSale(ctx context.Context, sess account.Session, auctionID, confirmationID string) (AuctionView, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AuctionService.CancelSale")
	defer span.End()

	return s.transition(sess, auctionID, func(session *auction.Session, now time.Time) error {
		return session.CancelPending(strings.TrimSpace(confirmationID), now)
	})
}

// MarkUnsold records the outcome locally before asking the backend for the
// next player with the skip flag. A failed fetch does not undo the outcome.
func (s *AuctionService) MarkUnsold(ctx context.Context, sess account.Session, auctionID string) (AuctionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.MarkUnsold")
	defer span.End()

	rt, err := s.runtime(auctionID)
	if err != nil {
		return AuctionView{}, err
	}

	rt.mu.Lock()
	rt.owner = sess
	unsold, err := rt.session.RecordUnsold(s.clock.Now())
	if err != nil {
		rt.mu.Unlock()
		return AuctionView{}, err
	}
	rt.nextOpts = player.NextOptions{Skipped: true, PlayerID: unsold.ID}
	s.stopTimerLocked(rt)
	gen := rt.generation
	rt.publishLocked()
	rt.mu.Unlock()

	s.logger.InfoContext(ctx, "player marked unsold", "auction_id", auctionID, "player_id", unsold.ID)

	_ = s.refreshBoard(ctx, sess, rt)
	if err := s.fetchNext(ctx, sess, rt, gen); err != nil {
		return s.view(rt), err
	}
	return s.view(rt), nil
}

func (s *AuctionService) Snapshot(ctx context.Context, auctionID string) (AuctionView, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AuctionService.Snapshot")
	defer span.End()

	rt, err := s.runtime(auctionID)
	if err != nil {
		return AuctionView{}, err
	}
	return s.view(rt), nil
}

// Budgets reloads the ledger and roster and returns the refreshed view.
func (s *AuctionService) Budgets(ctx context.Context, sess account.Session, auctionID string) (AuctionView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuctionService.Budgets")
	defer span.End()

	rt, err := s.runtime(auctionID)
	if err != nil {
		return AuctionView{}, err
	}
	if err := s.refreshBoard(ctx, sess, rt); err != nil {
		return AuctionView{}, err
	}
	return s.publish(rt), nil
}

// Subscribe streams views of one auction. Slow readers only see the latest
// view. The returned func must be called to release the subscription.
func (s *AuctionService) Subscribe(auctionID string) (<-chan AuctionView, func(), error) {
	rt, err := s.runtime(auctionID)
	if err != nil {
		return nil, nil, err
	}
	subID, err := s.ids.NewID()
	if err != nil {
		return nil, nil, fmt.Errorf("generate subscriber id: %w", err)
	}

	ch := make(chan AuctionView, 1)
	rt.mu.Lock()
	ch <- rt.viewLocked()
	rt.subs[subID] = ch
	rt.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			rt.mu.Lock()
			delete(rt.subs, subID)
			rt.mu.Unlock()
		})
	}
	return ch, cancel, nil
}

// StatusForEvent reports the admin session status of the auction bound to
// eventID, if one is open. A live or paused session wins over ready or
// completed ones left open for the same event.
func (s *AuctionService) StatusForEvent(eventID string) (auction.Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		best  auction.Status
		found bool
	)
	for _, rt := range s.runtimes {
		rt.mu.Lock()
		matched, status := rt.session.EventID == eventID, rt.session.Status
		rt.mu.Unlock()
		if matched && (!found || statusRank(status) > statusRank(best)) {
			best, found = status, true
		}
	}
	return best, found
}

// runningForEventLocked finds another auction that is live or paused on
// eventID. Callers hold s.mu.
func (s *AuctionService) runningForEventLocked(eventID, exceptAuctionID string) (string, bool) {
	for auctionID, rt := range s.runtimes {
		if auctionID == exceptAuctionID {
			continue
		}
		rt.mu.Lock()
		running := rt.session.EventID == eventID && isRunning(rt.session.Status)
		rt.mu.Unlock()
		if running {
			return auctionID, true
		}
	}
	return "", false
}

func isRunning(status auction.Status) bool {
	return status == auction.StatusLive || status == auction.StatusPaused
}

func statusRank(status auction.Status) int {
	switch status {
	case auction.StatusPaused:
		return 3
	case auction.StatusLive:
		return 2
	case auction.StatusReady:
		return 1
	default:
		return 0
	}
}

// Close stops every scheduled next-player fetch.
func (s *AuctionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rt := range s.runtimes {
		rt.mu.Lock()
		s.stopTimerLocked(rt)
		rt.generation++
		rt.mu.Unlock()
	}
}

func (s *AuctionService) transition(sess account.Session, auctionID string, apply func(*auction.Session, time.Time) error) (AuctionView, error) {
	rt, err := s.runtime(auctionID)
	if err != nil {
		return AuctionView{}, err
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.owner = sess

	if err := apply(rt.session, s.clock.Now()); err != nil {
		return AuctionView{}, err
	}
	// Reset and Complete orphan anything in flight for the old session.
	if rt.session.Status == auction.StatusReady || rt.session.Status == auction.StatusCompleted {
		s.stopTimerLocked(rt)
		rt.generation++
		rt.nextOpts = player.NextOptions{}
	}
	return rt.publishLocked(), nil
}

// fetchNext puts the backend's next player on the block. It does nothing when
// the session is not live or already has a player, and drops the answer when
// the session moved on while the request was in flight.
func (s *AuctionService) fetchNext(ctx context.Context, sess account.Session, rt *auctionRuntime, gen uint64) error {
	rt.mu.Lock()
	if rt.generation != gen || rt.session.Status != auction.StatusLive || rt.session.Current != nil {
		rt.mu.Unlock()
		return nil
	}
	auctionID, eventID, opts := rt.session.AuctionID, rt.session.EventID, rt.nextOpts
	rt.mu.Unlock()

	next, err := s.rotation.GetNextPlayer(ctx, sess, eventID, opts)

	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.generation != gen {
		return nil
	}
	if err == nil && (rt.session.Status != auction.StatusLive || rt.session.Current != nil) {
		s.logger.InfoContext(ctx, "dropping fetched player, session moved on",
			"auction_id", auctionID,
			"player_id", next.ID,
			"status", string(rt.session.Status),
		)
		return nil
	}
	if err == nil {
		err = rt.session.SetCurrent(next, s.clock.Now())
	}
	if err != nil {
		rt.session.LastError = rotationErrorMessage(err)
		rt.publishLocked()
		s.logger.WarnContext(ctx, "next player fetch failed",
			"auction_id", auctionID,
			"event_id", eventID,
			"skipped", opts.Skipped,
			"error", err,
		)
		return fmt.Errorf("get next player event_id=%s: %w", eventID, err)
	}

	rt.nextOpts = player.NextOptions{}
	rt.publishLocked()
	return nil
}

func (s *AuctionService) scheduleNextLocked(rt *auctionRuntime) {
	s.stopTimerLocked(rt)
	gen := rt.generation
	rt.timer = s.clock.AfterFunc(s.nextDelay, func() {
		rt.mu.Lock()
		owner := rt.owner
		rt.mu.Unlock()
		_ = s.fetchNext(context.Background(), owner, rt, gen)
	})
}

func (s *AuctionService) stopTimerLocked(rt *auctionRuntime) {
	if rt.timer != nil {
		rt.timer.Stop()
		rt.timer = nil
	}
}

// refreshBoard reloads the roster (cached per event) and the budget ledger
// concurrently. Partial results are kept.
func (s *AuctionService) refreshBoard(ctx context.Context, sess account.Session, rt *auctionRuntime) error {
	rt.mu.Lock()
	auctionID, eventID, gen := rt.session.AuctionID, rt.session.EventID, rt.generation
	rt.mu.Unlock()

	var (
		roster []team.Team
		board  team.Board
		loaded bool
	)
	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		teams, err := s.rosters.GetOrLoad(ctx, rosterCacheKey(eventID), func(ctx context.Context) ([]team.Team, error) {
			return s.teams.ListByEvent(ctx, sess, eventID)
		})
		if err != nil {
			return fmt.Errorf("list teams event_id=%s: %w", eventID, err)
		}
		roster = teams
		return nil
	})
	p.Go(func(ctx context.Context) error {
		b, err := s.ledger.GetTeamBudget(ctx, sess, auctionID)
		if err != nil {
			return fmt.Errorf("get team budget auction_id=%s: %w", auctionID, err)
		}
		board = b
		loaded = true
		return nil
	})
	err := p.Wait()

	rt.mu.Lock()
	defer rt.mu.Unlock()
	if rt.generation != gen {
		return nil
	}
	if roster != nil {
		rt.roster = roster
	}
	if loaded {
		rt.board = board
	}
	if err != nil {
		rt.session.LastError = err.Error()
		s.logger.WarnContext(ctx, "refresh budget board failed", "auction_id", auctionID, "event_id", eventID, "error", err)
	}
	return err
}

func (s *AuctionService) runtime(auctionID string) (*auctionRuntime, error) {
	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, auction.ErrMissingAuctionID)
	}

	s.mu.Lock()
	rt, ok := s.runtimes[auctionID]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: auction session %s is not open", ErrNotFound, auctionID)
	}
	return rt, nil
}

func (s *AuctionService) view(rt *auctionRuntime) AuctionView {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.viewLocked()
}

func (s *AuctionService) publish(rt *auctionRuntime) AuctionView {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.publishLocked()
}

func (rt *auctionRuntime) viewLocked() AuctionView {
	return AuctionView{
		Snapshot:      rt.session.Snapshot(),
		InitialBudget: rt.board.InitialBudget,
		Standings:     team.Standings(rt.roster, rt.board),
	}
}

func (rt *auctionRuntime) publishLocked() AuctionView {
	view := rt.viewLocked()
	for _, ch := range rt.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- view:
		default:
		}
	}
	return view
}

func rosterCacheKey(eventID string) string {
	return "teams:" + eventID
}

func findTeam(roster []team.Team, teamID string) (team.Team, bool) {
	for _, t := range roster {
		if t.ID == teamID {
			return t, true
		}
	}
	return team.Team{}, false
}

func rotationErrorMessage(err error) string {
	if errors.Is(err, ErrPoolExhausted) {
		return ErrPoolExhausted.Error()
	}
	return err.Error()
}
