package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/domain/auction"
	"github.com/riskibarqy/zerobid-console/internal/domain/player"
	"github.com/riskibarqy/zerobid-console/internal/domain/team"
	"github.com/riskibarqy/zerobid-console/internal/platform/logging"
)

const (
	DefaultPollInterval = 5 * time.Second
	DefaultPollWorkers  = 8
)

type FeedConfig struct {
	PollInterval time.Duration
	Workers      int
}

type auctionStatusLookup interface {
	StatusForEvent(eventID string) (auction.Status, bool)
}

// LiveView is what a team representative sees for one event.
type LiveView struct {
	EventID             string
	Player              *player.Player
	Error               string
	PolledAt            time.Time
	AdminStatus         auction.Status
	SurfacedWhilePaused bool
	Budget              *TeamBudget
}

type TeamBudget struct {
	TeamID          string
	RemainingBudget int64
	InitialBudget   int64
	PlayersBought   int
	Percent         float64
	Tier            team.Tier
}

// eventWatch polls with sess, which always belongs to a current watcher.
type eventWatch struct {
	eventID  string
	sess     account.Session
	watchers map[string]account.Session
	latest   LiveView
}

func (w *eventWatch) add(sess account.Session) {
	w.watchers[sess.UserID] = sess
	w.sess = sess
}

// remove drops a watcher and hands polling to the remaining session that
// stays valid the longest.
func (w *eventWatch) remove(userID string) {
	delete(w.watchers, userID)
	if w.sess.UserID != userID {
		return
	}

	w.sess = account.Session{}
	for _, candidate := range w.watchers {
		if w.sess.UserID == "" || outlives(candidate, w.sess) {
			w.sess = candidate
		}
	}
}

// outlives reports whether a stays valid longer than b. A zero expiry never
// lapses. Ties go to the lower user id.
func outlives(a, b account.Session) bool {
	switch {
	case a.ExpiresAt.Equal(b.ExpiresAt):
		return a.UserID < b.UserID
	case a.ExpiresAt.IsZero():
		return true
	case b.ExpiresAt.IsZero():
		return false
	default:
		return a.ExpiresAt.After(b.ExpiresAt)
	}
}

// TeamRepFeed polls the rotation endpoint for every watched event on a fixed
// interval, whatever the admin session is doing.
type TeamRepFeed struct {
	rotation player.Rotation
	ledger   team.Ledger
	status   auctionStatusLookup
	clock    clockwork.Clock
	logger   *logging.Logger
	interval time.Duration
	pool     *ants.Pool

	mu      sync.Mutex
	watches map[string]*eventWatch
	stop    chan struct{}
}

func NewTeamRepFeed(
	rotation player.Rotation,
	ledger team.Ledger,
	status auctionStatusLookup,
	clock clockwork.Clock,
	logger *logging.Logger,
	cfg FeedConfig,
) (*TeamRepFeed, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultPollWorkers
	}

	pool, err := ants.NewPool(cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("create poll worker pool: %w", err)
	}

	return &TeamRepFeed{
		rotation: rotation,
		ledger:   ledger,
		status:   status,
		clock:    clock,
		logger:   logger.Named("team_rep_feed"),
		interval: cfg.PollInterval,
		pool:     pool,
		watches:  make(map[string]*eventWatch),
	}, nil
}

// Watch registers the caller on an event, polls it once and makes sure the
// poll loop is running.
func (f *TeamRepFeed) Watch(ctx context.Context, sess account.Session, eventID string) (LiveView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamRepFeed.Watch")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return LiveView{}, fmt.Errorf("%w: %v", ErrInvalidInput, auction.ErrMissingEventID)
	}

	f.mu.Lock()
	w, ok := f.watches[eventID]
	if !ok {
		w = &eventWatch{eventID: eventID, watchers: make(map[string]account.Session)}
		f.watches[eventID] = w
	}
	w.add(sess)
	f.startLocked()
	f.mu.Unlock()

	f.logger.InfoContext(ctx, "team rep watching event", "event_id", eventID, "user_id", sess.UserID)
	return f.poll(ctx, eventID), nil
}

// Unwatch removes the caller. The poll loop stops with the last watcher;
// requests already in flight finish on their own.
func (f *TeamRepFeed) Unwatch(ctx context.Context, sess account.Session, eventID string) error {
	_, span := startUsecaseSpan(ctx, "usecase.TeamRepFeed.Unwatch")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return fmt.Errorf("%w: %v", ErrInvalidInput, auction.ErrMissingEventID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	w, ok := f.watches[eventID]
	if !ok {
		return fmt.Errorf("%w: event %s is not watched", ErrNotFound, eventID)
	}
	w.remove(sess.UserID)
	if len(w.watchers) == 0 {
		delete(f.watches, eventID)
	}
	if len(f.watches) == 0 {
		f.stopLocked()
	}
	return nil
}

// View returns the last polled state of an event. With an auction and team id
// it also reads that team's budget from the ledger.
func (f *TeamRepFeed) View(ctx context.Context, sess account.Session, eventID, auctionID, teamID string) (LiveView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamRepFeed.View")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	f.mu.Lock()
	w, ok := f.watches[eventID]
	var view LiveView
	if ok {
		view = w.latest
	}
	f.mu.Unlock()
	if !ok {
		return LiveView{}, fmt.Errorf("%w: event %s is not watched", ErrNotFound, eventID)
	}

	auctionID = strings.TrimSpace(auctionID)
	teamID = strings.TrimSpace(teamID)
	if auctionID == "" || teamID == "" {
		return view, nil
	}

	board, err := f.ledger.GetTeamBudget(ctx, sess, auctionID)
	if err != nil {
		return LiveView{}, fmt.Errorf("get team budget auction_id=%s: %w", auctionID, err)
	}
	budget := TeamBudget{TeamID: teamID, InitialBudget: board.InitialBudget, RemainingBudget: board.InitialBudget}
	if row, ok := board.Find(teamID); ok {
		budget.RemainingBudget = row.RemainingBudget
		budget.PlayersBought = row.PlayersBought
	}
	budget.Percent = team.Percent(budget.RemainingBudget, budget.InitialBudget)
	budget.Tier = team.TierFor(budget.Percent)
	view.Budget = &budget

	return view, nil
}

// Close stops the poll loop and releases the worker pool.
func (f *TeamRepFeed) Close() {
	f.mu.Lock()
	f.stopLocked()
	f.mu.Unlock()
	f.pool.Release()
}

func (f *TeamRepFeed) startLocked() {
	if f.stop != nil {
		return
	}
	f.stop = make(chan struct{})
	go f.run(f.clock.NewTicker(f.interval), f.stop)
}

func (f *TeamRepFeed) stopLocked() {
	if f.stop == nil {
		return
	}
	close(f.stop)
	f.stop = nil
}

func (f *TeamRepFeed) run(ticker clockwork.Ticker, stop <-chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			f.pollAll(context.Background())
		}
	}
}

// pollAll fans one tick out over the worker pool and waits for it.
func (f *TeamRepFeed) pollAll(ctx context.Context) {
	f.mu.Lock()
	eventIDs := make([]string, 0, len(f.watches))
	for eventID := range f.watches {
		eventIDs = append(eventIDs, eventID)
	}
	f.mu.Unlock()

	var wg sync.WaitGroup
	for _, eventID := range eventIDs {
		eventID := eventID
		wg.Add(1)
		if err := f.pool.Submit(func() {
			defer wg.Done()
			f.poll(ctx, eventID)
		}); err != nil {
			wg.Done()
			f.logger.Warn("submit poll to worker pool failed", "event_id", eventID, "error", err)
		}
	}
	wg.Wait()
}

func (f *TeamRepFeed) poll(ctx context.Context, eventID string) LiveView {
	f.mu.Lock()
	w, ok := f.watches[eventID]
	var sess account.Session
	if ok {
		sess = w.sess
	}
	f.mu.Unlock()
	if !ok {
		return LiveView{}
	}

	view := LiveView{EventID: eventID, PolledAt: f.clock.Now()}
	if f.status != nil {
		if status, found := f.status.StatusForEvent(eventID); found {
			view.AdminStatus = status
		}
	}

	current, err := f.rotation.GetNextPlayer(ctx, sess, eventID, player.NextOptions{})
	if err != nil {
		view.Error = rotationErrorMessage(err)
		f.logger.WarnContext(ctx, "team rep poll failed", "event_id", eventID, "error", err)
	} else {
		view.Player = &current
		if view.AdminStatus == auction.StatusPaused {
			view.SurfacedWhilePaused = true
			f.logger.WarnContext(ctx, "player surfaced while auction is paused",
				"event_id", eventID,
				"player_id", current.ID,
			)
		}
	}

	f.mu.Lock()
	if w, ok := f.watches[eventID]; ok {
		w.latest = view
	}
	f.mu.Unlock()
	return view
}
