package httpapi

import (
	"net/http"

	"github.com/riskibarqy/zerobid-console/internal/usecase"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	sess, err := h.authService.Login(ctx, usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		h.logger.WarnContext(ctx, "login failed", "email", req.Email, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(sess))
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Register")
	defer span.End()

	var req registerRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.authService.Register(ctx, usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		TeamID:   req.TeamID,
		EventID:  req.EventID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "register failed", "email", req.Email, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := registerDTO{PendingApproval: result.PendingApproval}
	if result.Session != nil {
		sess := sessionToDTO(*result.Session)
		out.Session = &sess
	}
	writeSuccess(ctx, w, http.StatusCreated, out)
}
