package zerobid

import (
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/zerobid-console/internal/domain/catalog"
	"github.com/riskibarqy/zerobid-console/internal/domain/player"
	"github.com/riskibarqy/zerobid-console/internal/domain/team"
)

// flexID accepts a string, a number or a populated reference object.
type flexID string

func (f *flexID) UnmarshalJSON(raw []byte) error {
	text := strings.TrimSpace(string(raw))
	switch {
	case text == "" || text == "null":
		*f = ""
	case strings.HasPrefix(text, `"`):
		var s string
		if err := sonic.Unmarshal(raw, &s); err != nil {
			return err
		}
		*f = flexID(strings.TrimSpace(s))
	case strings.HasPrefix(text, "{"):
		var ref struct {
			MongoID string `json:"_id"`
			ID      flexID `json:"id"`
		}
		if err := sonic.Unmarshal(raw, &ref); err != nil {
			return err
		}
		*f = flexID(firstNonEmpty(ref.MongoID, string(ref.ID)))
	default:
		*f = flexID(text)
	}
	return nil
}

// flexInt accepts JSON numbers and numeric strings.
type flexInt int64

func (f *flexInt) UnmarshalJSON(raw []byte) error {
	text := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if text == "" || text == "null" {
		*f = 0
		return nil
	}
	if v, err := strconv.ParseInt(text, 10, 64); err == nil {
		*f = flexInt(v)
		return nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return err
	}
	*f = flexInt(int64(v))
	return nil
}

// flexTime accepts RFC3339 timestamps, plain dates and empty values.
type flexTime time.Time

func (f *flexTime) UnmarshalJSON(raw []byte) error {
	text := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if text == "" || text == "null" {
		*f = flexTime(time.Time{})
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, text); err == nil {
			*f = flexTime(t.UTC())
			return nil
		}
	}
	*f = flexTime(time.Time{})
	return nil
}

func (f flexTime) Time() time.Time {
	return time.Time(f)
}

// playerPayload carries both backend shapes. The API shape uses _id and
// camelCase fields, the legacy shape a numeric id and a single name.
type playerPayload struct {
	MongoID    string  `json:"_id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	BasePrice  flexInt `json:"basePrice"`
	SoldStatus string  `json:"soldStatus"`
	TeamID     flexID  `json:"teamId"`
	SoldAmount flexInt `json:"soldAmount"`
	IsIcon     bool    `json:"isIcon"`

	ID              flexID  `json:"id"`
	Name            string  `json:"name"`
	LegacyBasePrice flexInt `json:"base_price"`
	Status          string  `json:"status"`
	Team            flexID  `json:"team"`
	SoldPrice       flexInt `json:"sold_price"`
	Icon            bool    `json:"icon"`
}

func (p playerPayload) isAPI() bool {
	return p.MongoID != "" || p.FirstName != "" || p.LastName != "" || p.SoldStatus != ""
}

func (p playerPayload) toDomain() player.Player {
	if p.isAPI() {
		return player.Player{
			ID:         firstNonEmpty(p.MongoID, string(p.ID)),
			FirstName:  strings.TrimSpace(p.FirstName),
			LastName:   strings.TrimSpace(p.LastName),
			BasePrice:  int64(p.BasePrice),
			Status:     player.ParseStatus(firstNonEmpty(p.SoldStatus, p.Status)),
			TeamID:     string(p.TeamID),
			SoldAmount: int64(p.SoldAmount),
			Icon:       p.IsIcon,
			Source:     player.SourceAPI,
		}
	}

	first, last := splitName(p.Name)
	return player.Player{
		ID:         string(p.ID),
		FirstName:  first,
		LastName:   last,
		BasePrice:  int64(p.LegacyBasePrice),
		Status:     player.ParseStatus(p.Status),
		TeamID:     string(p.Team),
		SoldAmount: int64(p.SoldPrice),
		Icon:       p.Icon,
		Source:     player.SourceLegacy,
	}
}

type teamPayload struct {
	MongoID     string  `json:"_id"`
	ID          flexID  `json:"id"`
	EventID     flexID  `json:"eventId"`
	Name        string  `json:"name"`
	ShortName   string  `json:"shortName"`
	Short       string  `json:"short"`
	TotalBudget flexInt `json:"totalBudget"`
	Budget      flexInt `json:"budget"`
}

func (p teamPayload) toDomain(eventID string) team.Team {
	total := int64(p.TotalBudget)
	if total == 0 {
		total = int64(p.Budget)
	}
	return team.Team{
		ID:          firstNonEmpty(p.MongoID, string(p.ID)),
		EventID:     firstNonEmpty(string(p.EventID), eventID),
		Name:        strings.TrimSpace(p.Name),
		Short:       firstNonEmpty(p.ShortName, p.Short),
		TotalBudget: total,
	}
}

type budgetPayload struct {
	Teams []struct {
		TeamID          flexID  `json:"teamId"`
		RemainingBudget flexInt `json:"remainingBudget"`
		PlayersBought   flexInt `json:"playersBought"`
	} `json:"teams"`
	InitialBudget flexInt `json:"initialBudget"`
}

func (p budgetPayload) toDomain(auctionID string) team.Board {
	out := team.Board{
		AuctionID:     auctionID,
		InitialBudget: int64(p.InitialBudget),
		Teams:         make([]team.Budget, 0, len(p.Teams)),
	}
	for _, item := range p.Teams {
		if item.TeamID == "" {
			continue
		}
		out.Teams = append(out.Teams, team.Budget{
			TeamID:          string(item.TeamID),
			RemainingBudget: int64(item.RemainingBudget),
			PlayersBought:   int(item.PlayersBought),
		})
	}
	return out
}

type purchaseRequest struct {
	AuctionID string `json:"auctionId"`
	PlayerID  string `json:"playerId"`
	TeamID    string `json:"teamId"`
	SoldPrice int64  `json:"soldPrice"`
}

type seasonPayload struct {
	MongoID   string   `json:"_id"`
	ID        flexID   `json:"id"`
	Name      string   `json:"name"`
	Year      flexInt  `json:"year"`
	StartDate flexTime `json:"startDate"`
	EndDate   flexTime `json:"endDate"`
	IsActive  bool     `json:"isActive"`
	Active    bool     `json:"active"`
}

func (p seasonPayload) toDomain() catalog.Season {
	return catalog.Season{
		ID:        firstNonEmpty(p.MongoID, string(p.ID)),
		Name:      strings.TrimSpace(p.Name),
		Year:      int(p.Year),
		StartDate: p.StartDate.Time(),
		EndDate:   p.EndDate.Time(),
		Active:    p.IsActive || p.Active,
	}
}

type eventPayload struct {
	MongoID   string   `json:"_id"`
	ID        flexID   `json:"id"`
	SeasonID  flexID   `json:"seasonId"`
	Name      string   `json:"name"`
	Sport     string   `json:"sport"`
	AuctionID flexID   `json:"auctionId"`
	StartDate flexTime `json:"startDate"`
	Status    string   `json:"status"`
}

func (p eventPayload) toDomain(seasonID string) catalog.Event {
	return catalog.Event{
		ID:        firstNonEmpty(p.MongoID, string(p.ID)),
		SeasonID:  firstNonEmpty(string(p.SeasonID), seasonID),
		Name:      strings.TrimSpace(p.Name),
		Sport:     strings.TrimSpace(p.Sport),
		AuctionID: string(p.AuctionID),
		StartsAt:  p.StartDate.Time(),
		Status:    strings.ToLower(strings.TrimSpace(p.Status)),
	}
}

type approvalPayload struct {
	MongoID   string   `json:"_id"`
	ID        flexID   `json:"id"`
	UserID    flexID   `json:"userId"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      string   `json:"role"`
	TeamID    flexID   `json:"teamId"`
	Status    string   `json:"status"`
	CreatedAt flexTime `json:"createdAt"`
}

func (p approvalPayload) toDomain() catalog.Approval {
	return catalog.Approval{
		ID:          firstNonEmpty(p.MongoID, string(p.ID)),
		UserID:      string(p.UserID),
		Name:        strings.TrimSpace(p.Name),
		Email:       strings.TrimSpace(p.Email),
		Role:        strings.TrimSpace(p.Role),
		TeamID:      string(p.TeamID),
		Status:      catalog.ParseApprovalStatus(p.Status),
		RequestedAt: p.CreatedAt.Time(),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
	TeamID   string `json:"teamId,omitempty"`
	EventID  string `json:"eventId,omitempty"`
}

type tokenPayload struct {
	Token       string `json:"token"`
	AccessToken string `json:"accessToken"`
}

func (p tokenPayload) value() string {
	return firstNonEmpty(p.Token, p.AccessToken)
}

type errorPayload struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// unwrapData returns the value under "data" when the backend used an
// envelope, or the payload itself when it did not.
func unwrapData(raw []byte) []byte {
	node, err := sonic.Get(raw, "data")
	if err != nil || !node.Exists() {
		return raw
	}
	inner, err := node.Raw()
	if err != nil {
		return raw
	}
	return []byte(inner)
}

func isEmptyPayload(raw []byte) bool {
	text := strings.TrimSpace(string(raw))
	return text == "" || text == "null" || text == "{}" || text == "[]"
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
