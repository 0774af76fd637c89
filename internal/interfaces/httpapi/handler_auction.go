package httpapi

import (
	"context"
	"net/http"

	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/usecase"
)

type auctionAction func(ctx context.Context, sess account.Session, auctionID string) (usecase.AuctionView, error)

// runAuctionAction covers the console endpoints that take only the auction id
// and answer with the refreshed auction view.
func (h *Handler) runAuctionAction(w http.ResponseWriter, r *http.Request, spanName, logMsg string, action auctionAction) {
	ctx, span := startSpan(r.Context(), spanName)
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	auctionID := r.PathValue("auctionID")
	view, err := action(ctx, sess, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, logMsg, "auction_id", auctionID, "user_id", sess.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(view))
}

func (h *Handler) OpenAuction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OpenAuction")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req openAuctionRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	auctionID := r.PathValue("auctionID")
	view, err := h.auctionService.Open(ctx, sess, auctionID, req.EventID)
	if err != nil {
		h.logger.WarnContext(ctx, "open auction failed", "auction_id", auctionID, "event_id", req.EventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(view))
}

func (h *Handler) GetAuction(w http.ResponseWriter, r *http.Request) {
	h.runAuctionAction(w, r, "httpapi.Handler.GetAuction", "get auction failed",
		func(ctx context.Context, _ account.Session, auctionID string) (usecase.AuctionView, error) {
			return h.auctionService.Snapshot(ctx, auctionID)
		})
}

func (h *Handler) StartAuction(w http.ResponseWriter, r *http.Request) {
	h.runAuctionAction(w, r, "httpapi.Handler.StartAuction", "start auction failed", h.auctionService.Start)
}

func (h *Handler) PauseAuction(w http.ResponseWriter, r *http.Request) {
	h.runAuctionAction(w, r, "httpapi.Handler.PauseAuction", "pause auction failed", h.auctionService.Pause)
}

func (h *Handler) ResumeAuction(w http.ResponseWriter, r *http.Request) {
	h.runAuctionAction(w, r, "httpapi.Handler.ResumeAuction", "resume auction failed", h.auctionService.Resume)
}

func (h *Handler) CompleteAuction(w http.ResponseWriter, r *http.Request) {
	h.runAuctionAction(w, r, "httpapi.Handler.CompleteAuction", "complete auction failed", h.auctionService.Complete)
}

func (h *Handler) ResetAuction(w http.ResponseWriter, r *http.Request) {
	h.runAuctionAction(w, r, "httpapi.Handler.ResetAuction", "reset auction failed", h.auctionService.Reset)
}

func (h *Handler) NextPlayer(w http.ResponseWriter, r *http.Request) {
	h.runAuctionAction(w, r, "httpapi.Handler.NextPlayer", "fetch next player failed", h.auctionService.NextPlayer)
}

// MarkUnsold answers with the view even when the follow-up fetch failed; the
// player is already marked unsold locally and lastError carries the failure.
func (h *Handler) MarkUnsold(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MarkUnsold")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	auctionID := r.PathValue("auctionID")
	view, err := h.auctionService.MarkUnsold(ctx, sess, auctionID)
	if err != nil {
		h.logger.WarnContext(ctx, "mark unsold failed", "auction_id", auctionID, "error", err)
		if view.AuctionID == "" {
			writeError(ctx, w, err)
			return
		}
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(view))
}

func (h *Handler) GetBudgets(w http.ResponseWriter, r *http.Request) {
	h.runAuctionAction(w, r, "httpapi.Handler.GetBudgets", "get budgets failed", h.auctionService.Budgets)
}

func (h *Handler) ProposeSale(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProposeSale")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req proposeSaleRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	auctionID := r.PathValue("auctionID")
	pending, err := h.auctionService.ProposeSale(ctx, sess, auctionID, usecase.SaleInput{TeamID: req.TeamID, Amount: req.Amount})
	if err != nil {
		h.logger.WarnContext(ctx, "propose sale failed",
			"auction_id", auctionID,
			"team_id", req.TeamID,
			"amount", req.Amount,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, pendingSaleToDTO(pending))
}

func (h *Handler) ConfirmSale(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ConfirmSale")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	auctionID := r.PathValue("auctionID")
	confirmationID := r.PathValue("confirmationID")
	view, err := h.auctionService.ConfirmSale(ctx, sess, auctionID, confirmationID)
	if err != nil {
		h.logger.WarnContext(ctx, "confirm sale failed",
			"auction_id", auctionID,
			"confirmation_id", confirmationID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(view))
}

func (h *Handler) CancelSale(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CancelSale")
	defer span.End()

	sess, err := h.requireSession(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	auctionID := r.PathValue("auctionID")
	confirmationID := r.PathValue("confirmationID")
	view, err := h.auctionService.CancelSale(ctx, sess, auctionID, confirmationID)
	if err != nil {
		h.logger.WarnContext(ctx, "cancel sale failed", "auction_id", auctionID, "confirmation_id", confirmationID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, auctionToDTO(view))
}
