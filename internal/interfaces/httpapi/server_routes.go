package httpapi

import (
	"net/http"

	"github.com/riskibarqy/zerobid-console/internal/domain/account"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("POST /v1/auth/register", handler.Register)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, authenticator SessionAuthenticator) {
	registerAuthorizedDashboardRoutes(mux, handler, authenticator)
	registerAuthorizedCatalogRoutes(mux, handler, authenticator)
	registerAuthorizedAuctionRoutes(mux, handler, authenticator)
	registerAuthorizedTeamRepRoutes(mux, handler, authenticator)
}

func registerAuthorizedDashboardRoutes(mux *http.ServeMux, handler *Handler, authenticator SessionAuthenticator) {
	mux.Handle("GET /v1/dashboard", RequireAuth(authenticator, http.HandlerFunc(handler.GetDashboard)))
}

func registerAuthorizedCatalogRoutes(mux *http.ServeMux, handler *Handler, authenticator SessionAuthenticator) {
	mux.Handle("GET /v1/seasons", RequireAuth(authenticator, http.HandlerFunc(handler.ListSeasons)))
	mux.Handle("GET /v1/seasons/{seasonID}/events", RequireAuth(authenticator, http.HandlerFunc(handler.ListEvents)))
	mux.Handle("GET /v1/events/{eventID}/teams", RequireAuth(authenticator, http.HandlerFunc(handler.ListTeams)))
	mux.Handle("GET /v1/events/{eventID}/players", RequireAuth(authenticator, http.HandlerFunc(handler.ListPlayers)))
	mux.Handle("GET /v1/approvals", RequireAuth(authenticator, adminOnly(handler.ListPendingApprovals)))
	mux.Handle("POST /v1/approvals/{approvalID}/approve", RequireAuth(authenticator, adminOnly(handler.Approve)))
}

func registerAuthorizedAuctionRoutes(mux *http.ServeMux, handler *Handler, authenticator SessionAuthenticator) {
	const base = "/v1/auctions/{auctionID}"
	routes := map[string]http.HandlerFunc{
		"POST " + base + "/session":                        handler.OpenAuction,
		"GET " + base + "/session":                         handler.GetAuction,
		"POST " + base + "/start":                          handler.StartAuction,
		"POST " + base + "/pause":                          handler.PauseAuction,
		"POST " + base + "/resume":                         handler.ResumeAuction,
		"POST " + base + "/complete":                       handler.CompleteAuction,
		"POST " + base + "/reset":                          handler.ResetAuction,
		"POST " + base + "/next":                           handler.NextPlayer,
		"POST " + base + "/unsold":                         handler.MarkUnsold,
		"POST " + base + "/sales":                          handler.ProposeSale,
		"POST " + base + "/sales/{confirmationID}/confirm": handler.ConfirmSale,
		"DELETE " + base + "/sales/{confirmationID}":       handler.CancelSale,
		"GET " + base + "/budgets":                         handler.GetBudgets,
		"GET " + base + "/stream":                          handler.StreamAuction,
	}
	for pattern, fn := range routes {
		mux.Handle(pattern, RequireAuth(authenticator, adminOnly(fn)))
	}
}

func registerAuthorizedTeamRepRoutes(mux *http.ServeMux, handler *Handler, authenticator SessionAuthenticator) {
	mux.Handle("POST /v1/events/{eventID}/watch", RequireAuth(authenticator, teamRepOrAdmin(handler.WatchEvent)))
	mux.Handle("DELETE /v1/events/{eventID}/watch", RequireAuth(authenticator, teamRepOrAdmin(handler.UnwatchEvent)))
	mux.Handle("GET /v1/events/{eventID}/live", RequireAuth(authenticator, teamRepOrAdmin(handler.GetLiveView)))
}

func adminOnly(fn http.HandlerFunc) http.Handler {
	return RequireRole(fn, account.RoleAdmin)
}

func teamRepOrAdmin(fn http.HandlerFunc) http.Handler {
	return RequireRole(fn, account.RoleTeamRep, account.RoleAdmin)
}
