package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/zerobid-console/internal/platform/resilience"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	body := map[string]string{"status": "ok"}
	if h.backend != nil {
		state := h.backend.BreakerState()
		body["backend"] = string(state)
		if state == resilience.CircuitStateOpen {
			body["status"] = "degraded"
		}
	}
	writeSuccess(ctx, w, http.StatusOK, body)
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	auctionID := strings.TrimSpace(r.URL.Query().Get("auctionId"))
	dashboard, err := h.dashboardService.Get(ctx, sess, auctionID)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "user_id", sess.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}
