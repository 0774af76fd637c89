package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/platform/logging"
	"github.com/riskibarqy/zerobid-console/internal/platform/resilience"
	"github.com/riskibarqy/zerobid-console/internal/usecase"
)

const defaultWSPingInterval = 30 * time.Second

// BackendProbe reports the circuit state of the auction backend client.
type BackendProbe interface {
	BreakerState() resilience.CircuitState
}

type HandlerConfig struct {
	WSPingInterval     time.Duration
	CORSAllowedOrigins []string
}

type Handler struct {
	authService      *usecase.AuthService
	catalogService   *usecase.CatalogService
	dashboardService *usecase.DashboardService
	auctionService   *usecase.AuctionService
	teamRepFeed      *usecase.TeamRepFeed
	backend          BackendProbe
	logger           *logging.Logger
	validator        *validator.Validate
	upgrader         websocket.Upgrader
	pingInterval     time.Duration
}

func NewHandler(
	authService *usecase.AuthService,
	catalogService *usecase.CatalogService,
	dashboardService *usecase.DashboardService,
	auctionService *usecase.AuctionService,
	teamRepFeed *usecase.TeamRepFeed,
	backend BackendProbe,
	logger *logging.Logger,
	cfg HandlerConfig,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.WSPingInterval <= 0 {
		cfg.WSPingInterval = defaultWSPingInterval
	}

	return &Handler{
		authService:      authService,
		catalogService:   catalogService,
		dashboardService: dashboardService,
		auctionService:   auctionService,
		teamRepFeed:      teamRepFeed,
		backend:          backend,
		logger:           logger.Named("httpapi"),
		validator:        validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(cfg.CORSAllowedOrigins),
		},
		pingInterval: cfg.WSPingInterval,
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) requireSession(ctx context.Context) (account.Session, error) {
	sess, ok := sessionFromContext(ctx)
	if !ok {
		return account.Session{}, fmt.Errorf("%w: session is missing from request context", usecase.ErrUnauthorized)
	}
	return sess, nil
}

func originChecker(allowedOrigins []string) func(*http.Request) bool {
	allowAll := false
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		candidate := strings.TrimSpace(origin)
		if candidate == "*" {
			allowAll = true
		}
		if candidate != "" {
			allowed[candidate] = struct{}{}
		}
	}

	return func(r *http.Request) bool {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" || allowAll {
			return true
		}
		if _, ok := allowed[origin]; ok {
			return true
		}
		return strings.EqualFold(strings.TrimPrefix(strings.TrimPrefix(origin, "https://"), "http://"), r.Host)
	}
}
