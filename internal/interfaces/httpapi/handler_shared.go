package httpapi

import (
	"time"

	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/domain/auction"
	"github.com/riskibarqy/zerobid-console/internal/domain/catalog"
	"github.com/riskibarqy/zerobid-console/internal/domain/player"
	"github.com/riskibarqy/zerobid-console/internal/domain/team"
	"github.com/riskibarqy/zerobid-console/internal/usecase"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,max=32"`
	TeamID   string `json:"teamId" validate:"omitempty,max=64"`
	EventID  string `json:"eventId" validate:"omitempty,max=64"`
}

type openAuctionRequest struct {
	EventID string `json:"eventId" validate:"required"`
}

type proposeSaleRequest struct {
	TeamID string `json:"teamId" validate:"required"`
	Amount int64  `json:"amount" validate:"gt=0"`
}

type sessionDTO struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	TeamID    string `json:"teamId,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

type registerDTO struct {
	PendingApproval bool        `json:"pendingApproval"`
	Session         *sessionDTO `json:"session,omitempty"`
}

type dashboardDTO struct {
	UserID           string         `json:"userId"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Role             string         `json:"role"`
	TeamID           string         `json:"teamId,omitempty"`
	CurrentSeason    *seasonDTO     `json:"currentSeason,omitempty"`
	SeasonCount      int            `json:"seasonCount"`
	EventCount       int            `json:"eventCount"`
	PendingApprovals int            `json:"pendingApprovals"`
	Budget           *teamBudgetDTO `json:"budget,omitempty"`
}

type seasonDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Year      int    `json:"year"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Active    bool   `json:"active"`
}

type eventDTO struct {
	ID        string `json:"id"`
	SeasonID  string `json:"seasonId"`
	Name      string `json:"name"`
	Sport     string `json:"sport,omitempty"`
	AuctionID string `json:"auctionId,omitempty"`
	StartsAt  string `json:"startsAt,omitempty"`
	Status    string `json:"status,omitempty"`
}

type approvalDTO struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	TeamID      string `json:"teamId,omitempty"`
	Status      string `json:"status"`
	RequestedAt string `json:"requestedAt,omitempty"`
}

type teamDTO struct {
	ID          string `json:"id"`
	EventID     string `json:"eventId"`
	Name        string `json:"name"`
	Short       string `json:"short,omitempty"`
	TotalBudget int64  `json:"totalBudget"`
}

type playerDTO struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	FullName   string `json:"fullName"`
	BasePrice  int64  `json:"basePrice"`
	SoldStatus string `json:"soldStatus"`
	TeamID     string `json:"teamId,omitempty"`
	SoldAmount int64  `json:"soldAmount,omitempty"`
	IsIcon     bool   `json:"isIcon"`
	Source     string `json:"source,omitempty"`
}

type pendingSaleDTO struct {
	ConfirmationID  string `json:"confirmationId"`
	AuctionID       string `json:"auctionId"`
	PlayerID        string `json:"playerId"`
	PlayerName      string `json:"playerName"`
	TeamID          string `json:"teamId"`
	TeamName        string `json:"teamName"`
	Amount          int64  `json:"amount"`
	RemainingBudget int64  `json:"remainingBudget"`
	CreatedAt       string `json:"createdAt"`
}

type standingDTO struct {
	TeamID          string  `json:"teamId"`
	TeamName        string  `json:"teamName"`
	Short           string  `json:"short,omitempty"`
	RemainingBudget int64   `json:"remainingBudget"`
	PlayersBought   int     `json:"playersBought"`
	Percent         float64 `json:"percent"`
	Tier            string  `json:"tier"`
}

type auctionDTO struct {
	AuctionID     string          `json:"auctionId"`
	EventID       string          `json:"eventId"`
	Status        string          `json:"status"`
	CurrentPlayer *playerDTO      `json:"currentPlayer,omitempty"`
	Processed     int             `json:"processed"`
	Sold          []playerDTO     `json:"sold"`
	Unsold        []playerDTO     `json:"unsold"`
	Pending       *pendingSaleDTO `json:"pendingSale,omitempty"`
	Submitting    bool            `json:"submitting"`
	LastError     string          `json:"lastError,omitempty"`
	UpdatedAt     string          `json:"updatedAt"`
	InitialBudget int64           `json:"initialBudget"`
	Standings     []standingDTO   `json:"standings"`
}

type teamBudgetDTO struct {
	TeamID          string  `json:"teamId"`
	RemainingBudget int64   `json:"remainingBudget"`
	InitialBudget   int64   `json:"initialBudget"`
	PlayersBought   int     `json:"playersBought"`
	Percent         float64 `json:"percent"`
	Tier            string  `json:"tier"`
}

type liveViewDTO struct {
	EventID             string         `json:"eventId"`
	CurrentPlayer       *playerDTO     `json:"currentPlayer,omitempty"`
	Error               string         `json:"error,omitempty"`
	PolledAt            string         `json:"polledAt,omitempty"`
	AdminStatus         string         `json:"adminStatus,omitempty"`
	SurfacedWhilePaused bool           `json:"surfacedWhilePaused"`
	Budget              *teamBudgetDTO `json:"budget,omitempty"`
}

func sessionToDTO(sess account.Session) sessionDTO {
	return sessionDTO{
		Token:     sess.Token,
		UserID:    sess.UserID,
		Email:     sess.Email,
		Name:      sess.Name,
		Role:      string(sess.Role),
		TeamID:    sess.TeamID,
		ExpiresAt: formatTime(sess.ExpiresAt),
	}
}

func dashboardToDTO(d usecase.Dashboard) dashboardDTO {
	out := dashboardDTO{
		UserID:           d.UserID,
		Name:             d.Name,
		Email:            d.Email,
		Role:             string(d.Role),
		TeamID:           d.TeamID,
		SeasonCount:      d.SeasonCount,
		EventCount:       d.EventCount,
		PendingApprovals: d.PendingApprovals,
	}
	if d.CurrentSeason != nil {
		season := seasonToDTO(*d.CurrentSeason)
		out.CurrentSeason = &season
	}
	if d.Budget != nil {
		budget := teamBudgetToDTO(*d.Budget)
		out.Budget = &budget
	}
	return out
}

func seasonToDTO(v catalog.Season) seasonDTO {
	return seasonDTO{
		ID:        v.ID,
		Name:      v.Name,
		Year:      v.Year,
		StartDate: formatDate(v.StartDate),
		EndDate:   formatDate(v.EndDate),
		Active:    v.Active,
	}
}

func eventToDTO(v catalog.Event) eventDTO {
	return eventDTO{
		ID:        v.ID,
		SeasonID:  v.SeasonID,
		Name:      v.Name,
		Sport:     v.Sport,
		AuctionID: v.AuctionID,
		StartsAt:  formatTime(v.StartsAt),
		Status:    v.Status,
	}
}

func approvalToDTO(v catalog.Approval) approvalDTO {
	return approvalDTO{
		ID:          v.ID,
		UserID:      v.UserID,
		Name:        v.Name,
		Email:       v.Email,
		Role:        v.Role,
		TeamID:      v.TeamID,
		Status:      string(v.Status),
		RequestedAt: formatTime(v.RequestedAt),
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:          v.ID,
		EventID:     v.EventID,
		Name:        v.Name,
		Short:       v.Short,
		TotalBudget: v.TotalBudget,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:         v.ID,
		FirstName:  v.FirstName,
		LastName:   v.LastName,
		FullName:   v.FullName(),
		BasePrice:  v.BasePrice,
		SoldStatus: string(v.Status),
		TeamID:     v.TeamID,
		SoldAmount: v.SoldAmount,
		IsIcon:     v.Icon,
		Source:     string(v.Source),
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func pendingSaleToDTO(v auction.PendingSale) pendingSaleDTO {
	return pendingSaleDTO{
		ConfirmationID:  v.ID,
		AuctionID:       v.AuctionID,
		PlayerID:        v.PlayerID,
		PlayerName:      v.PlayerName,
		TeamID:          v.TeamID,
		TeamName:        v.TeamName,
		Amount:          v.Amount,
		RemainingBudget: v.RemainingBudget,
		CreatedAt:       formatTime(v.CreatedAt),
	}
}

func auctionToDTO(v usecase.AuctionView) auctionDTO {
	out := auctionDTO{
		AuctionID:     v.AuctionID,
		EventID:       v.EventID,
		Status:        string(v.Status),
		Processed:     v.Processed,
		Sold:          playersToDTO(v.Sold),
		Unsold:        playersToDTO(v.Unsold),
		Submitting:    v.Submitting,
		LastError:     v.LastError,
		UpdatedAt:     formatTime(v.UpdatedAt),
		InitialBudget: v.InitialBudget,
		Standings:     make([]standingDTO, 0, len(v.Standings)),
	}
	if v.Current != nil {
		current := playerToDTO(*v.Current)
		out.CurrentPlayer = &current
	}
	if v.Pending != nil {
		pending := pendingSaleToDTO(*v.Pending)
		out.Pending = &pending
	}
	for _, s := range v.Standings {
		out.Standings = append(out.Standings, standingDTO{
			TeamID:          s.Team.ID,
			TeamName:        s.Team.Name,
			Short:           s.Team.Short,
			RemainingBudget: s.RemainingBudget,
			PlayersBought:   s.PlayersBought,
			Percent:         s.Percent,
			Tier:            string(s.Tier),
		})
	}
	return out
}

func teamBudgetToDTO(v usecase.TeamBudget) teamBudgetDTO {
	return teamBudgetDTO{
		TeamID:          v.TeamID,
		RemainingBudget: v.RemainingBudget,
		InitialBudget:   v.InitialBudget,
		PlayersBought:   v.PlayersBought,
		Percent:         v.Percent,
		Tier:            string(v.Tier),
	}
}

func liveViewToDTO(v usecase.LiveView) liveViewDTO {
	out := liveViewDTO{
		EventID:             v.EventID,
		Error:               v.Error,
		PolledAt:            formatTime(v.PolledAt),
		AdminStatus:         string(v.AdminStatus),
		SurfacedWhilePaused: v.SurfacedWhilePaused,
	}
	if v.Player != nil {
		current := playerToDTO(*v.Player)
		out.CurrentPlayer = &current
	}
	if v.Budget != nil {
		budget := teamBudgetToDTO(*v.Budget)
		out.Budget = &budget
	}
	return out
}

func formatTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

func formatDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format("2006-01-02")
}
