package httpapi

import "net/http"

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasons, err := h.catalogService.ListSeasons(ctx, sess)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]seasonDTO, 0, len(seasons))
	for _, s := range seasons {
		items = append(items, seasonToDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	seasonID := r.PathValue("seasonID")
	events, err := h.catalogService.ListEvents(ctx, sess, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]eventDTO, 0, len(events))
	for _, e := range events {
		items = append(items, eventToDTO(e))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	teams, err := h.catalogService.ListTeams(ctx, sess, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	players, err := h.catalogService.ListPlayers(ctx, sess, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListPendingApprovals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPendingApprovals")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	approvals, err := h.catalogService.ListPendingApprovals(ctx, sess)
	if err != nil {
		h.logger.WarnContext(ctx, "list pending approvals failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]approvalDTO, 0, len(approvals))
	for _, a := range approvals {
		items = append(items, approvalToDTO(a))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Approve")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	approvalID := r.PathValue("approvalID")
	approval, err := h.catalogService.Approve(ctx, sess, approvalID)
	if err != nil {
		h.logger.WarnContext(ctx, "approve registration failed", "approval_id", approvalID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "registration approved", "approval_id", approval.ID, "admin_id", sess.UserID)
	writeSuccess(ctx, w, http.StatusOK, approvalToDTO(approval))
}
