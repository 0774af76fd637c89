package zerobid

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/domain/auction"
	"github.com/riskibarqy/zerobid-console/internal/domain/player"
	"github.com/riskibarqy/zerobid-console/internal/platform/resilience"
	"github.com/riskibarqy/zerobid-console/internal/usecase"
)

var testSession = account.Session{Token: "tok-admin", UserID: "u1", Role: account.RoleAdmin}

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*ClientConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ClientConfig{
		HTTPClient:     server.Client(),
		BaseURL:        server.URL + "/api/",
		CircuitBreaker: resilience.CircuitBreakerConfig{Enabled: false},
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	return NewClient(cfg)
}

func TestGetNextPlayer_DecodesEnvelopedAPIShape(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auctions/getRandomPlayers" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-admin" {
			t.Errorf("unexpected authorization header %q", got)
		}
		q := r.URL.Query()
		if q.Get("eventId") != "ev-1" || q.Get("skipped") != "true" || q.Get("playerId") != "p-9" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_, _ = io.WriteString(w, `{"success":true,"data":{"_id":"p-10","firstName":"Rohit","lastName":"Sharma","basePrice":"2000","soldStatus":"available","teamId":null,"isIcon":true}}`)
	})

	got, err := client.GetNextPlayer(context.Background(), testSession, "ev-1", player.NextOptions{Skipped: true, PlayerID: "p-9"})
	if err != nil {
		t.Fatalf("get next player: %v", err)
	}
	if got.ID != "p-10" || got.FullName() != "Rohit Sharma" || got.BasePrice != 2000 {
		t.Fatalf("unexpected player: %+v", got)
	}
	if got.Source != player.SourceAPI || !got.Icon || got.Status != player.StatusAvailable {
		t.Fatalf("unexpected player flags: %+v", got)
	}
}

func TestGetNextPlayer_DecodesLegacyShape(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("skipped") {
			t.Errorf("skipped flag must be omitted, got %s", r.URL.RawQuery)
		}
		_, _ = io.WriteString(w, `[{"id":42,"name":"Jasprit Bumrah Jr","base_price":1500,"status":"pending","team":{"_id":"t-3"},"sold_price":0}]`)
	})

	got, err := client.GetNextPlayer(context.Background(), testSession, "ev-1", player.NextOptions{})
	if err != nil {
		t.Fatalf("get next player: %v", err)
	}
	if got.ID != "42" || got.FirstName != "Jasprit" || got.LastName != "Bumrah Jr" {
		t.Fatalf("unexpected legacy player: %+v", got)
	}
	if got.Source != player.SourceLegacy || got.Status != player.StatusPending || got.TeamID != "t-3" {
		t.Fatalf("unexpected legacy fields: %+v", got)
	}
}

func TestGetNextPlayer_EmptyPool(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		payload string
	}{
		{name: "not found", status: http.StatusNotFound, payload: `{"message":"No players available"}`},
		{name: "empty body", status: http.StatusOK, payload: ``},
		{name: "null data", status: http.StatusOK, payload: `{"data":null}`},
		{name: "empty list", status: http.StatusOK, payload: `{"data":[]}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.payload)
			})

			_, err := client.GetNextPlayer(context.Background(), testSession, "ev-1", player.NextOptions{})
			if !errors.Is(err, usecase.ErrPoolExhausted) {
				t.Fatalf("expected ErrPoolExhausted, got %v", err)
			}
		})
	}
}

func TestPurchasePlayer_PostsOnceAndSurfacesMessage(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Method != http.MethodPost || r.URL.Path != "/api/auctions/purchase" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		if err := sonic.Unmarshal(raw, &body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["auctionId"] != "auc-1" || body["playerId"] != "p-1" || body["teamId"] != "t-1" || body["soldPrice"] != float64(3500) {
			t.Errorf("unexpected body %s", raw)
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"Team budget exceeded"}`)
	}, func(cfg *ClientConfig) { cfg.MaxRetries = 3 })

	err := client.PurchasePlayer(context.Background(), testSession, auction.Purchase{
		AuctionID: "auc-1",
		PlayerID:  "p-1",
		TeamID:    "t-1",
		SoldPrice: 3500,
	})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "Team budget exceeded") {
		t.Fatalf("expected backend message in error, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected exactly one POST, got %d", calls.Load())
	}
}

func TestPurchasePlayer_ServerErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, func(cfg *ClientConfig) { cfg.MaxRetries = 2 })

	err := client.PurchasePlayer(context.Background(), testSession, auction.Purchase{AuctionID: "a", PlayerID: "p", TeamID: "t", SoldPrice: 1})
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one POST attempt, got %d", calls.Load())
	}
}

func TestGetTeamBudget_DecodesBoard(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auctions/getTeamBudget/auc-7" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"teams":[{"teamId":"t1","remainingBudget":45000,"playersBought":3},{"teamId":"","remainingBudget":1}],"initialBudget":100000}`)
	})

	board, err := client.GetTeamBudget(context.Background(), testSession, "auc-7")
	if err != nil {
		t.Fatalf("get team budget: %v", err)
	}
	if board.AuctionID != "auc-7" || board.InitialBudget != 100000 || len(board.Teams) != 1 {
		t.Fatalf("unexpected board: %+v", board)
	}
	row, ok := board.Find("t1")
	if !ok || row.RemainingBudget != 45000 || row.PlayersBought != 3 {
		t.Fatalf("unexpected row: %+v", row)
	}
}

func TestGet_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"data":[{"_id":"s1","name":"Season 2026","year":2026,"isActive":true}]}`)
	}, func(cfg *ClientConfig) { cfg.MaxRetries = 1 })

	seasons, err := client.ListSeasons(context.Background(), testSession)
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(seasons) != 1 || seasons[0].ID != "s1" || seasons[0].Year != 2026 || !seasons[0].Active {
		t.Fatalf("unexpected seasons: %+v", seasons)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected one retry, got %d calls", calls.Load())
	}
}

func TestCircuitBreaker_OpensOnTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2}
	})

	for i := 0; i < 3; i++ {
		_, err := client.GetTeamBudget(context.Background(), testSession, "auc-1")
		if !errors.Is(err, usecase.ErrDependencyUnavailable) {
			t.Fatalf("call %d: expected ErrDependencyUnavailable, got %v", i, err)
		}
	}
	if calls.Load() != 2 {
		t.Fatalf("expected breaker to short-circuit the third call, backend saw %d", calls.Load())
	}
	if client.BreakerState() != resilience.CircuitStateOpen {
		t.Fatalf("expected open breaker, got %s", client.BreakerState())
	}
}

func TestCircuitBreaker_IgnoresClientErrors(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"message":"auction not found"}`)
	}, func(cfg *ClientConfig) {
		cfg.CircuitBreaker = resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1}
	})

	for i := 0; i < 3; i++ {
		if _, err := client.GetTeamBudget(context.Background(), testSession, "missing"); !errors.Is(err, usecase.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	}
	if client.BreakerState() != resilience.CircuitStateClosed {
		t.Fatalf("expected closed breaker, got %s", client.BreakerState())
	}
}

func TestStatusErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status int
		want   error
	}{
		{status: http.StatusUnauthorized, want: usecase.ErrUnauthorized},
		{status: http.StatusForbidden, want: usecase.ErrForbidden},
		{status: http.StatusNotFound, want: usecase.ErrNotFound},
		{status: http.StatusConflict, want: usecase.ErrInvalidInput},
		{status: http.StatusTooManyRequests, want: usecase.ErrDependencyUnavailable},
		{status: http.StatusInternalServerError, want: usecase.ErrDependencyUnavailable},
	}
	for _, tc := range cases {
		err := statusError(tc.status, []byte(`{"error":"boom"}`))
		if !errors.Is(err, tc.want) {
			t.Fatalf("status %d: expected %v, got %v", tc.status, tc.want, err)
		}
		if !strings.Contains(err.Error(), "boom") {
			t.Fatalf("status %d: expected backend message, got %v", tc.status, err)
		}
	}
	if !isTransient(statusError(http.StatusServiceUnavailable, nil)) {
		t.Fatalf("expected 503 to be transient")
	}
	if isTransient(statusError(http.StatusBadRequest, nil)) {
		t.Fatalf("expected 400 not to be transient")
	}
}

func TestTeamRepository_ListByEvent(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("eventId") != "ev-2" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_, _ = io.WriteString(w, `{"data":[{"_id":"t1","name":"Royal Strikers","shortName":"RS","totalBudget":100000},{"name":"orphan"}]}`)
	})

	teams, err := NewTeamRepository(client).ListByEvent(context.Background(), testSession, "ev-2")
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("expected one team, got %+v", teams)
	}
	if teams[0].ID != "t1" || teams[0].EventID != "ev-2" || teams[0].Short != "RS" || teams[0].TotalBudget != 100000 {
		t.Fatalf("unexpected team: %+v", teams[0])
	}
}

func TestApprove_FallsBackToRequestedID(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/approvals/ap-1/approve" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = io.WriteString(w, `{"message":"approved"}`)
	})

	got, err := client.Approve(context.Background(), testSession, "ap-1")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if got.ID != "ap-1" || got.Status != "approved" {
		t.Fatalf("unexpected approval: %+v", got)
	}
}

func TestLoginAndRegister(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("auth endpoints must not carry a bearer token")
		}
		switch r.URL.Path {
		case "/api/auth/login":
			_, _ = io.WriteString(w, `{"data":{"accessToken":"jwt-value"}}`)
		case "/api/auth/register":
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{"message":"registration pending approval"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	token, err := client.Login(context.Background(), account.Credentials{Email: "a@b.c", Password: "secret"})
	if err != nil || token != "jwt-value" {
		t.Fatalf("login: token=%q err=%v", token, err)
	}

	token, err = client.Register(context.Background(), account.Registration{Name: "Rep", Email: "r@b.c", Password: "secret", Role: account.RoleTeamRep, TeamID: "t1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token != "" {
		t.Fatalf("expected pending registration without token, got %q", token)
	}
}
