package auction

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/zerobid-console/internal/domain/player"
)

var (
	ErrMissingAuctionID       = errors.New("auction id is required")
	ErrMissingEventID         = errors.New("event id is required")
	ErrInvalidTransition      = errors.New("invalid auction status transition")
	ErrAuctionNotLive         = errors.New("auction is not live")
	ErrNoCurrentPlayer        = errors.New("no player is up for auction")
	ErrPlayerAlreadyProcessed = errors.New("player already processed in this session")
	ErrNoPendingSale          = errors.New("no pending sale confirmation")
	ErrStaleSale              = errors.New("sale no longer matches the current player")
	ErrSaleInProgress         = errors.New("a sale for the current player is being submitted")
)

// Status is the local auction session state.
type Status string

const (
	StatusReady     Status = "ready"
	StatusLive      Status = "live"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Session is the orchestrator's in-memory state for one auction. It is not
// persisted and the backend round is never reset from here.
//
// Submitting is set while a confirmed sale is on its way to the backend.
// Session is not safe for concurrent use; callers serialise access.
type Session struct {
	AuctionID  string
	EventID    string
	Status     Status
	Current    *player.Player
	Processed  int
	Sold       []player.Player
	Unsold     []player.Player
	Pending    *PendingSale
	Submitting bool
	LastError  string
	UpdatedAt  time.Time

	processed map[string]struct{}
}

func NewSession(auctionID, eventID string, now time.Time) (*Session, error) {
	auctionID = strings.TrimSpace(auctionID)
	eventID = strings.TrimSpace(eventID)
	if auctionID == "" {
		return nil, ErrMissingAuctionID
	}
	if eventID == "" {
		return nil, ErrMissingEventID
	}

	return &Session{
		AuctionID: auctionID,
		EventID:   eventID,
		Status:    StatusReady,
		UpdatedAt: now,
		processed: make(map[string]struct{}),
	}, nil
}

func (s *Session) Start(now time.Time) error {
	if s.Status != StatusReady {
		return fmt.Errorf("%w: cannot start from %s", ErrInvalidTransition, s.Status)
	}
	if s.AuctionID == "" {
		return ErrMissingAuctionID
	}
	if s.EventID == "" {
		return ErrMissingEventID
	}
	s.Status = StatusLive
	s.touch(now)
	return nil
}

func (s *Session) Pause(now time.Time) error {
	if s.Status != StatusLive {
		return fmt.Errorf("%w: cannot pause from %s", ErrInvalidTransition, s.Status)
	}
	s.Status = StatusPaused
	s.touch(now)
	return nil
}

func (s *Session) Resume(now time.Time) error {
	if s.Status != StatusPaused {
		return fmt.Errorf("%w: cannot resume from %s", ErrInvalidTransition, s.Status)
	}
	s.Status = StatusLive
	s.touch(now)
	return nil
}

func (s *Session) Complete(now time.Time) error {
	if s.Status != StatusLive && s.Status != StatusPaused {
		return fmt.Errorf("%w: cannot complete from %s", ErrInvalidTransition, s.Status)
	}
	s.Status = StatusCompleted
	s.Current = nil
	s.Pending = nil
	s.Submitting = false
	s.touch(now)
	return nil
}

// Reset drops all local progress regardless of status.
func (s *Session) Reset(now time.Time) {
	s.Status = StatusReady
	s.Current = nil
	s.Processed = 0
	s.Sold = nil
	s.Unsold = nil
	s.Pending = nil
	s.Submitting = false
	s.LastError = ""
	s.processed = make(map[string]struct{})
	s.touch(now)
}

// SetCurrent puts a freshly rotated player up for auction.
func (s *Session) SetCurrent(p player.Player, now time.Time) error {
	if s.Status != StatusLive {
		return fmt.Errorf("%w: status=%s", ErrAuctionNotLive, s.Status)
	}
	if s.Submitting {
		return ErrSaleInProgress
	}
	if err := p.Validate(); err != nil {
		return err
	}
	if _, seen := s.processed[p.ID]; seen || p.Status.Final() {
		return fmt.Errorf("%w: player=%s", ErrPlayerAlreadyProcessed, p.ID)
	}
	current := p
	s.Current = &current
	s.Pending = nil
	s.LastError = ""
	s.touch(now)
	return nil
}

// OpenSale validates a bid and, when it passes, issues the pending confirmation.
func (s *Session) OpenSale(req SaleRequest, confirmationID string, now time.Time) (PendingSale, error) {
	if s.Status != StatusLive {
		return PendingSale{}, fmt.Errorf("%w: status=%s", ErrAuctionNotLive, s.Status)
	}
	if s.Current == nil {
		return PendingSale{}, ErrNoCurrentPlayer
	}
	if s.Submitting {
		return PendingSale{}, ErrSaleInProgress
	}
	if err := ValidateBid(req.TeamID, req.TeamName, req.Amount, req.RemainingBudget); err != nil {
		return PendingSale{}, err
	}

	pending := PendingSale{
		ID:              confirmationID,
		AuctionID:       s.AuctionID,
		PlayerID:        s.Current.ID,
		PlayerName:      s.Current.FullName(),
		TeamID:          req.TeamID,
		TeamName:        req.TeamName,
		Amount:          req.Amount,
		RemainingBudget: req.RemainingBudget,
		CreatedAt:       now,
	}
	s.Pending = &pending
	s.touch(now)
	return pending, nil
}

// TakePending consumes the pending confirmation so it can be submitted once.
// The session stays in Submitting until RecordSale or AbortSubmission.
func (s *Session) TakePending(confirmationID string, now time.Time) (PendingSale, error) {
	if s.Pending == nil || s.Pending.ID != confirmationID {
		return PendingSale{}, ErrNoPendingSale
	}
	if s.Status != StatusLive {
		return PendingSale{}, fmt.Errorf("%w: status=%s", ErrAuctionNotLive, s.Status)
	}
	if s.Current == nil || s.Current.ID != s.Pending.PlayerID {
		s.Pending = nil
		return PendingSale{}, ErrStaleSale
	}
	pending := *s.Pending
	s.Pending = nil
	s.Submitting = true
	s.touch(now)
	return pending, nil
}

// AbortSubmission releases the current player after the backend refused a sale.
func (s *Session) AbortSubmission(now time.Time) {
	if !s.Submitting {
		return
	}
	s.Submitting = false
	s.touch(now)
}

func (s *Session) CancelPending(confirmationID string, now time.Time) error {
	if s.Pending == nil || s.Pending.ID != confirmationID {
		return ErrNoPendingSale
	}
	s.Pending = nil
	s.touch(now)
	return nil
}

// RecordSale applies a purchase the backend has already accepted.
func (s *Session) RecordSale(sale PendingSale, now time.Time) (player.Player, error) {
	if s.Current == nil || s.Current.ID != sale.PlayerID {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrStaleSale, sale.PlayerID)
	}
	sold, err := s.Current.Sold(sale.TeamID, sale.Amount)
	if err != nil {
		return player.Player{}, err
	}
	s.Sold = append(s.Sold, sold)
	s.markProcessed(sold.ID)
	s.touch(now)
	return sold, nil
}

// RecordUnsold marks the current player unsold before the backend hears about it.
func (s *Session) RecordUnsold(now time.Time) (player.Player, error) {
	if s.Status != StatusLive {
		return player.Player{}, fmt.Errorf("%w: status=%s", ErrAuctionNotLive, s.Status)
	}
	if s.Current == nil {
		return player.Player{}, ErrNoCurrentPlayer
	}
	if s.Submitting {
		return player.Player{}, ErrSaleInProgress
	}
	unsold, err := s.Current.Unsold()
	if err != nil {
		return player.Player{}, err
	}
	s.Unsold = append(s.Unsold, unsold)
	s.markProcessed(unsold.ID)
	s.touch(now)
	return unsold, nil
}

func (s *Session) markProcessed(playerID string) {
	if s.processed == nil {
		s.processed = make(map[string]struct{})
	}
	s.processed[playerID] = struct{}{}
	s.Processed++
	s.Current = nil
	s.Pending = nil
	s.Submitting = false
}

func (s *Session) touch(now time.Time) {
	if !now.IsZero() {
		s.UpdatedAt = now
	}
}

// Snapshot is a copy of the session safe to hand to other goroutines.
type Snapshot struct {
	AuctionID  string
	EventID    string
	Status     Status
	Current    *player.Player
	Processed  int
	Sold       []player.Player
	Unsold     []player.Player
	Pending    *PendingSale
	Submitting bool
	LastError  string
	UpdatedAt  time.Time
}

func (s *Session) Snapshot() Snapshot {
	out := Snapshot{
		AuctionID:  s.AuctionID,
		EventID:    s.EventID,
		Status:     s.Status,
		Processed:  s.Processed,
		Sold:       append([]player.Player(nil), s.Sold...),
		Unsold:     append([]player.Player(nil), s.Unsold...),
		Submitting: s.Submitting,
		LastError:  s.LastError,
		UpdatedAt:  s.UpdatedAt,
	}
	if s.Current != nil {
		current := *s.Current
		out.Current = &current
	}
	if s.Pending != nil {
		pending := *s.Pending
		out.Pending = &pending
	}
	return out
}
