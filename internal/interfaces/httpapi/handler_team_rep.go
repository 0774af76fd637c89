package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) WatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.WatchEvent")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	view, err := h.teamRepFeed.Watch(ctx, sess, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "watch event failed", "event_id", eventID, "user_id", sess.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, liveViewToDTO(view))
}

func (h *Handler) UnwatchEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UnwatchEvent")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	if err := h.teamRepFeed.Unwatch(ctx, sess, eventID); err != nil {
		h.logger.WarnContext(ctx, "unwatch event failed", "event_id", eventID, "user_id", sess.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"eventId": eventID, "status": "unwatched"})
}

// GetLiveView returns the last poll. Team reps always see their own team's
// budget; admins may name a team with teamId.
func (h *Handler) GetLiveView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLiveView")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	auctionID := strings.TrimSpace(r.URL.Query().Get("auctionId"))
	teamID := sess.TeamID
	if sess.IsAdmin() {
		teamID = strings.TrimSpace(r.URL.Query().Get("teamId"))
	}

	view, err := h.teamRepFeed.View(ctx, sess, eventID, auctionID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get live view failed", "event_id", eventID, "auction_id", auctionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, liveViewToDTO(view))
}
