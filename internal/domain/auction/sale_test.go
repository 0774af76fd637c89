package auction

import (
	"errors"
	"testing"
)

func TestValidateBid(t *testing.T) {
	tests := []struct {
		name      string
		teamID    string
		amount    int64
		remaining int64
		wantErr   error
	}{
		{name: "missing team", teamID: "", amount: 10, remaining: 100, wantErr: ErrTeamNotSelected},
		{name: "zero amount", teamID: "t1", amount: 0, remaining: 100, wantErr: ErrInvalidBidAmount},
		{name: "negative amount", teamID: "t1", amount: -5, remaining: 100, wantErr: ErrInvalidBidAmount},
		{name: "exceeds budget", teamID: "t1", amount: 101, remaining: 100, wantErr: ErrInsufficientBudget},
		{name: "exactly remaining", teamID: "t1", amount: 100, remaining: 100},
		{name: "within budget", teamID: "t1", amount: 1, remaining: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateBid(tc.teamID, "Strikers", tc.amount, tc.remaining)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestValidateBid_BudgetMessage(t *testing.T) {
	err := ValidateBid("t1", "Royal Strikers", 150000, 100000)

	var budgetErr *BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected BudgetError, got %T", err)
	}
	if got := err.Error(); got != "Bid amount exceeds Royal Strikers's remaining budget" {
		t.Fatalf("unexpected message: %q", got)
	}
	if budgetErr.Remaining != 100000 || budgetErr.Amount != 150000 {
		t.Fatalf("unexpected error fields: %+v", budgetErr)
	}
}

func TestOpenSale_RejectsOverBudgetWithoutPending(t *testing.T) {
	s := newLiveSession(t)
	_ = s.SetCurrent(samplePlayer("p1"), testNow)

	_, err := s.OpenSale(SaleRequest{TeamID: "t1", TeamName: "Strikers", Amount: 150000, RemainingBudget: 100000}, "conf-x", testNow)
	if !errors.Is(err, ErrInsufficientBudget) {
		t.Fatalf("expected ErrInsufficientBudget, got %v", err)
	}
	if s.Pending != nil {
		t.Fatalf("expected no pending confirmation after rejected bid")
	}
}
