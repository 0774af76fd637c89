package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/domain/auction"
	"github.com/riskibarqy/zerobid-console/internal/domain/player"
	"github.com/riskibarqy/zerobid-console/internal/domain/team"
	playermock "github.com/riskibarqy/zerobid-console/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/zerobid-console/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var repSession = account.Session{Token: "rep-tok", UserID: "u-rep", Role: account.RoleTeamRep, TeamID: "t1"}

type stubStatusLookup struct {
	mu       sync.Mutex
	statuses map[string]auction.Status
}

func (s *stubStatusLookup) set(eventID string, status auction.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[eventID] = status
}

func (s *stubStatusLookup) StatusForEvent(eventID string) (auction.Status, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.statuses[eventID]
	return status, ok
}

func newTestFeed(t *testing.T) (*TeamRepFeed, *playermock.Rotation, *teammock.Ledger, *stubStatusLookup, *clockwork.FakeClock) {
	t.Helper()

	rotation := playermock.NewRotation(t)
	ledger := teammock.NewLedger(t)
	status := &stubStatusLookup{statuses: map[string]auction.Status{"evt-1": auction.StatusLive}}
	clock := clockwork.NewFakeClock()

	feed, err := NewTeamRepFeed(rotation, ledger, status, clock, nil, FeedConfig{Workers: 2})
	if err != nil {
		t.Fatalf("new feed: %v", err)
	}
	t.Cleanup(feed.Close)
	return feed, rotation, ledger, status, clock
}

func TestTeamRepFeed_WatchPollsImmediately(t *testing.T) {
	t.Parallel()

	feed, rotation, _, _, _ := newTestFeed(t)
	rotation.On("GetNextPlayer", mock.Anything, repSession, "evt-1", player.NextOptions{}).
		Return(testPlayer("p1"), nil).
		Once()

	view, err := feed.Watch(context.Background(), repSession, "evt-1")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if view.Player == nil || view.Player.ID != "p1" {
		t.Fatalf("unexpected player: %+v", view.Player)
	}
	if view.AdminStatus != auction.StatusLive || view.SurfacedWhilePaused {
		t.Fatalf("unexpected status flags: %+v", view)
	}
}

func TestTeamRepFeed_PollsEveryIntervalAndFlagsPaused(t *testing.T) {
	t.Parallel()

	feed, rotation, _, status, clock := newTestFeed(t)
	rotation.On("GetNextPlayer", mock.Anything, repSession, "evt-1", player.NextOptions{}).
		Return(testPlayer("p1"), nil).
		Once()
	if _, err := feed.Watch(context.Background(), repSession, "evt-1"); err != nil {
		t.Fatalf("watch: %v", err)
	}

	status.set("evt-1", auction.StatusPaused)
	rotation.On("GetNextPlayer", mock.Anything, repSession, "evt-1", player.NextOptions{}).
		Return(testPlayer("p2"), nil).
		Once()

	clock.Advance(DefaultPollInterval)

	require.Eventually(t, func() bool {
		view, err := feed.View(context.Background(), repSession, "evt-1", "", "")
		return err == nil && view.Player != nil && view.Player.ID == "p2" && view.SurfacedWhilePaused
	}, time.Second, 5*time.Millisecond)
}

func TestTeamRepFeed_PollErrorIsSurfaced(t *testing.T) {
	t.Parallel()

	feed, rotation, _, _, _ := newTestFeed(t)
	rotation.On("GetNextPlayer", mock.Anything, repSession, "evt-1", player.NextOptions{}).
		Return(player.Player{}, ErrPoolExhausted).
		Once()

	view, err := feed.Watch(context.Background(), repSession, "evt-1")
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	if view.Player != nil || view.Error != ErrPoolExhausted.Error() {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestTeamRepFeed_UnwatchStopsPolling(t *testing.T) {
	t.Parallel()

	feed, rotation, _, _, clock := newTestFeed(t)
	rotation.On("GetNextPlayer", mock.Anything, repSession, "evt-1", player.NextOptions{}).
		Return(testPlayer("p1"), nil).
		Once()
	if _, err := feed.Watch(context.Background(), repSession, "evt-1"); err != nil {
		t.Fatalf("watch: %v", err)
	}
	if err := feed.Unwatch(context.Background(), repSession, "evt-1"); err != nil {
		t.Fatalf("unwatch: %v", err)
	}

	clock.Advance(3 * DefaultPollInterval)
	time.Sleep(20 * time.Millisecond)
	rotation.AssertNumberOfCalls(t, "GetNextPlayer", 1)

	if _, err := feed.View(context.Background(), repSession, "evt-1", "", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after unwatch, got %v", err)
	}
	if err := feed.Unwatch(context.Background(), repSession, "evt-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second unwatch, got %v", err)
	}
}

func TestTeamRepFeed_UnwatchHandsPollingToRemainingWatcher(t *testing.T) {
	t.Parallel()

	feed, rotation, _, _, clock := newTestFeed(t)
	otherRep := account.Session{Token: "rep-b-tok", UserID: "u-rep-b", Role: account.RoleTeamRep, TeamID: "t2"}

	rotation.On("GetNextPlayer", mock.Anything, repSession, "evt-1", player.NextOptions{}).
		Return(testPlayer("p1"), nil).
		Once()
	rotation.On("GetNextPlayer", mock.Anything, otherRep, "evt-1", player.NextOptions{}).
		Return(testPlayer("p2"), nil).
		Once()
	if _, err := feed.Watch(context.Background(), repSession, "evt-1"); err != nil {
		t.Fatalf("watch first rep: %v", err)
	}
	if _, err := feed.Watch(context.Background(), otherRep, "evt-1"); err != nil {
		t.Fatalf("watch second rep: %v", err)
	}
	if err := feed.Unwatch(context.Background(), otherRep, "evt-1"); err != nil {
		t.Fatalf("unwatch second rep: %v", err)
	}

	rotation.On("GetNextPlayer", mock.Anything, repSession, "evt-1", player.NextOptions{}).
		Return(testPlayer("p3"), nil).
		Once()
	clock.Advance(DefaultPollInterval)

	require.Eventually(t, func() bool {
		view, err := feed.View(context.Background(), repSession, "evt-1", "", "")
		return err == nil && view.Player != nil && view.Player.ID == "p3"
	}, time.Second, 5*time.Millisecond)
}

func TestEventWatch_RemovePrefersLongestLivedSession(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	short := account.Session{UserID: "u-short", Token: "short", ExpiresAt: now.Add(time.Minute)}
	long := account.Session{UserID: "u-long", Token: "long", ExpiresAt: now.Add(time.Hour)}
	latest := account.Session{UserID: "u-latest", Token: "latest", ExpiresAt: now.Add(2 * time.Minute)}

	w := &eventWatch{eventID: "evt-1", watchers: make(map[string]account.Session)}
	w.add(short)
	w.add(long)
	w.add(latest)

	w.remove("u-latest")
	if w.sess.Token != "long" {
		t.Fatalf("expected longest lived session to take over, got %q", w.sess.Token)
	}

	w.remove("u-short")
	if w.sess.Token != "long" {
		t.Fatalf("expected polling session to stay put, got %q", w.sess.Token)
	}

	w.remove("u-long")
	if w.sess.UserID != "" || len(w.watchers) != 0 {
		t.Fatalf("expected no polling session left, got %+v", w.sess)
	}
}

func TestTeamRepFeed_ViewWithBudget(t *testing.T) {
	t.Parallel()

	feed, rotation, ledger, _, _ := newTestFeed(t)
	rotation.On("GetNextPlayer", mock.Anything, repSession, "evt-1", player.NextOptions{}).
		Return(testPlayer("p1"), nil).
		Once()
	ledger.On("GetTeamBudget", mock.Anything, repSession, "auc-1").
		Return(team.Board{InitialBudget: 100000, Teams: []team.Budget{{TeamID: "t1", RemainingBudget: 45000, PlayersBought: 4}}}, nil).
		Once()

	if _, err := feed.Watch(context.Background(), repSession, "evt-1"); err != nil {
		t.Fatalf("watch: %v", err)
	}
	view, err := feed.View(context.Background(), repSession, "evt-1", "auc-1", "t1")
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if view.Budget == nil || view.Budget.Tier != team.TierAmber || view.Budget.Percent != 45 {
		t.Fatalf("unexpected budget: %+v", view.Budget)
	}
}

func TestTeamRepFeed_WatchRequiresEvent(t *testing.T) {
	t.Parallel()

	feed, _, _, _, _ := newTestFeed(t)
	if _, err := feed.Watch(context.Background(), repSession, " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
