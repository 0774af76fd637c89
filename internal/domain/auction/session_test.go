package auction

import (
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/zerobid-console/internal/domain/player"
)

var testNow = time.Date(2026, 10, 16, 18, 0, 0, 0, time.UTC)

func newLiveSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession("auc-1", "evt-1", testNow)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if err := s.Start(testNow); err != nil {
		t.Fatalf("start session: %v", err)
	}
	return s
}

func samplePlayer(id string) player.Player {
	return player.Player{ID: id, FirstName: "Player", LastName: id, BasePrice: 1000, Status: player.StatusAvailable}
}

func TestNewSession_FailsClosedWithoutIdentity(t *testing.T) {
	if _, err := NewSession("", "evt-1", testNow); !errors.Is(err, ErrMissingAuctionID) {
		t.Fatalf("expected ErrMissingAuctionID, got %v", err)
	}
	if _, err := NewSession("auc-1", "  ", testNow); !errors.Is(err, ErrMissingEventID) {
		t.Fatalf("expected ErrMissingEventID, got %v", err)
	}
}

func TestSession_StatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*Session)
		apply   func(*Session) error
		want    Status
		wantErr error
	}{
		{
			name:  "ready to live",
			apply: func(s *Session) error { return s.Start(testNow) },
			want:  StatusLive,
		},
		{
			name:    "pause from ready is rejected",
			apply:   func(s *Session) error { return s.Pause(testNow) },
			want:    StatusReady,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "live pause",
			prepare: func(s *Session) { _ = s.Start(testNow) },
			apply:   func(s *Session) error { return s.Pause(testNow) },
			want:    StatusPaused,
		},
		{
			name: "paused resume",
			prepare: func(s *Session) {
				_ = s.Start(testNow)
				_ = s.Pause(testNow)
			},
			apply: func(s *Session) error { return s.Resume(testNow) },
			want:  StatusLive,
		},
		{
			name: "paused complete",
			prepare: func(s *Session) {
				_ = s.Start(testNow)
				_ = s.Pause(testNow)
			},
			apply: func(s *Session) error { return s.Complete(testNow) },
			want:  StatusCompleted,
		},
		{
			name:    "complete from ready is rejected",
			apply:   func(s *Session) error { return s.Complete(testNow) },
			want:    StatusReady,
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "start twice is rejected",
			prepare: func(s *Session) { _ = s.Start(testNow) },
			apply:   func(s *Session) error { return s.Start(testNow) },
			want:    StatusLive,
			wantErr: ErrInvalidTransition,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewSession("auc-1", "evt-1", testNow)
			if err != nil {
				t.Fatalf("new session: %v", err)
			}
			if tc.prepare != nil {
				tc.prepare(s)
			}
			err = tc.apply(s)
			if tc.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
			if s.Status != tc.want {
				t.Fatalf("unexpected status: got=%s want=%s", s.Status, tc.want)
			}
		})
	}
}

func TestSession_ResetReturnsToReadyFromAnyState(t *testing.T) {
	for _, prepare := range []func(*Session){
		func(*Session) {},
		func(s *Session) { _ = s.Pause(testNow) },
		func(s *Session) { _ = s.Complete(testNow) },
		func(s *Session) {
			_ = s.SetCurrent(samplePlayer("p1"), testNow)
			_, _ = s.RecordUnsold(testNow)
			_ = s.SetCurrent(samplePlayer("p2"), testNow)
		},
	} {
		s := newLiveSession(t)
		prepare(s)

		s.Reset(testNow)

		snap := s.Snapshot()
		if snap.Status != StatusReady || snap.Current != nil || snap.Processed != 0 {
			t.Fatalf("unexpected state after reset: %+v", snap)
		}
		if len(snap.Sold) != 0 || len(snap.Unsold) != 0 || snap.Pending != nil {
			t.Fatalf("expected history cleared after reset: %+v", snap)
		}
	}
}

func TestSession_SaleFlowCountsAndHistory(t *testing.T) {
	s := newLiveSession(t)
	if err := s.SetCurrent(samplePlayer("p1"), testNow); err != nil {
		t.Fatalf("set current: %v", err)
	}

	pending, err := s.OpenSale(SaleRequest{TeamID: "t1", TeamName: "Strikers", Amount: 45000, RemainingBudget: 100000}, "conf-1", testNow)
	if err != nil {
		t.Fatalf("open sale: %v", err)
	}
	if pending.PlayerID != "p1" || pending.Amount != 45000 {
		t.Fatalf("unexpected pending sale: %+v", pending)
	}

	taken, err := s.TakePending("conf-1", testNow)
	if err != nil {
		t.Fatalf("take pending: %v", err)
	}
	if _, err := s.TakePending("conf-1", testNow); !errors.Is(err, ErrNoPendingSale) {
		t.Fatalf("expected second take to fail, got %v", err)
	}

	sold, err := s.RecordSale(taken, testNow)
	if err != nil {
		t.Fatalf("record sale: %v", err)
	}
	if sold.Status != player.StatusSold || sold.TeamID != "t1" || sold.SoldAmount != 45000 {
		t.Fatalf("unexpected sold player: %+v", sold)
	}
	if s.Processed != 1 || len(s.Sold) != 1 || s.Current != nil {
		t.Fatalf("unexpected session after sale: processed=%d sold=%d current=%v", s.Processed, len(s.Sold), s.Current)
	}

	if err := s.SetCurrent(samplePlayer("p1"), testNow); !errors.Is(err, ErrPlayerAlreadyProcessed) {
		t.Fatalf("expected sold player to be refused, got %v", err)
	}
}

func TestSession_UnsoldIncrementsByOne(t *testing.T) {
	s := newLiveSession(t)
	for i, id := range []string{"p1", "p2", "p3"} {
		if err := s.SetCurrent(samplePlayer(id), testNow); err != nil {
			t.Fatalf("set current %s: %v", id, err)
		}
		if _, err := s.RecordUnsold(testNow); err != nil {
			t.Fatalf("record unsold %s: %v", id, err)
		}
		if s.Processed != i+1 {
			t.Fatalf("expected processed=%d, got %d", i+1, s.Processed)
		}
	}
	if _, err := s.RecordUnsold(testNow); !errors.Is(err, ErrNoCurrentPlayer) {
		t.Fatalf("expected ErrNoCurrentPlayer, got %v", err)
	}
}

func TestSession_PausedGatesActions(t *testing.T) {
	s := newLiveSession(t)
	if err := s.SetCurrent(samplePlayer("p1"), testNow); err != nil {
		t.Fatalf("set current: %v", err)
	}
	if err := s.Pause(testNow); err != nil {
		t.Fatalf("pause: %v", err)
	}

	if _, err := s.OpenSale(SaleRequest{TeamID: "t1", Amount: 1, RemainingBudget: 10}, "c", testNow); !errors.Is(err, ErrAuctionNotLive) {
		t.Fatalf("expected ErrAuctionNotLive for sale, got %v", err)
	}
	if _, err := s.RecordUnsold(testNow); !errors.Is(err, ErrAuctionNotLive) {
		t.Fatalf("expected ErrAuctionNotLive for unsold, got %v", err)
	}
	if err := s.SetCurrent(samplePlayer("p2"), testNow); !errors.Is(err, ErrAuctionNotLive) {
		t.Fatalf("expected ErrAuctionNotLive for rotation, got %v", err)
	}
}

func TestSession_RecordSaleAfterResetIsStale(t *testing.T) {
	s := newLiveSession(t)
	_ = s.SetCurrent(samplePlayer("p1"), testNow)
	pending, err := s.OpenSale(SaleRequest{TeamID: "t1", TeamName: "Strikers", Amount: 10, RemainingBudget: 10}, "c1", testNow)
	if err != nil {
		t.Fatalf("open sale: %v", err)
	}
	taken, err := s.TakePending(pending.ID, testNow)
	if err != nil {
		t.Fatalf("take pending: %v", err)
	}

	s.Reset(testNow)

	if _, err := s.RecordSale(taken, testNow); !errors.Is(err, ErrStaleSale) {
		t.Fatalf("expected ErrStaleSale, got %v", err)
	}
	if s.Processed != 0 {
		t.Fatalf("expected processed to stay 0, got %d", s.Processed)
	}
}

func TestSession_SnapshotIsDetached(t *testing.T) {
	s := newLiveSession(t)
	_ = s.SetCurrent(samplePlayer("p1"), testNow)

	snap := s.Snapshot()
	snap.Current.FirstName = "mutated"

	if s.Current.FirstName == "mutated" {
		t.Fatalf("snapshot shares current player with session")
	}
}

func TestSession_SubmittingBlocksOtherOutcomes(t *testing.T) {
	s := newLiveSession(t)
	_ = s.SetCurrent(samplePlayer("p1"), testNow)
	if _, err := s.OpenSale(SaleRequest{TeamID: "t1", TeamName: "Strikers", Amount: 10, RemainingBudget: 10}, "c1", testNow); err != nil {
		t.Fatalf("open sale: %v", err)
	}
	if _, err := s.TakePending("c1", testNow); err != nil {
		t.Fatalf("take pending: %v", err)
	}

	if _, err := s.RecordUnsold(testNow); !errors.Is(err, ErrSaleInProgress) {
		t.Fatalf("expected ErrSaleInProgress, got %v", err)
	}
	if _, err := s.OpenSale(SaleRequest{TeamID: "t1", Amount: 5, RemainingBudget: 10}, "c2", testNow); !errors.Is(err, ErrSaleInProgress) {
		t.Fatalf("expected ErrSaleInProgress on second proposal, got %v", err)
	}

	s.AbortSubmission(testNow)
	if s.Submitting {
		t.Fatalf("expected submission to be released")
	}
	if s.Current == nil || s.Current.ID != "p1" || s.Processed != 0 {
		t.Fatalf("failed sale must not change the current player: %+v", s.Snapshot())
	}
}
