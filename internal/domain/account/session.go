package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid access token")
	ErrTokenExpired = errors.New("access token expired")
)

// Role is the console role derived once from the access token.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeamRep Role = "team_rep"
	RolePlayer  Role = "player"
	RoleViewer  Role = "viewer"
)

// ParseRole normalises the role spellings the backend has issued over time.
func ParseRole(raw string) Role {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)
	switch normalized {
	case "admin", "administrator", "super_admin", "superadmin":
		return RoleAdmin
	case "team_rep", "teamrep", "team_representative", "team", "owner", "team_owner":
		return RoleTeamRep
	case "player":
		return RolePlayer
	default:
		return RoleViewer
	}
}

// Session is the authenticated caller, carried explicitly through the console.
// It is only built from tokens whose signature has been verified.
type Session struct {
	Token     string
	UserID    string
	Email     string
	Name      string
	Role      Role
	TeamID    string
	ExpiresAt time.Time
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

func (s Session) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if s.Role == role {
			return true
		}
	}
	return false
}

type claims struct {
	jwt.RegisteredClaims
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	TeamID string `json:"teamId"`
}

var signingMethods = []string{
	jwt.SigningMethodHS256.Alg(),
	jwt.SigningMethodHS384.Alg(),
	jwt.SigningMethodHS512.Alg(),
}

// SessionFromToken verifies the HMAC signature against secret and decodes the
// claims. A zero now falls back to the wall clock for expiry checks.
func SessionFromToken(token string, secret []byte, now time.Time) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}
	if len(secret) == 0 {
		return Session{}, fmt.Errorf("%w: signing secret is not configured", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods(signingMethods)}
	if !now.IsZero() {
		opts = append(opts, jwt.WithTimeFunc(func() time.Time { return now }))
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Session{}, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return Session{}, fmt.Errorf("%w: token is not valid", ErrInvalidToken)
	}

	userID := firstNonEmpty(c.Subject, c.UserID, c.ID)
	if userID == "" {
		return Session{}, fmt.Errorf("%w: subject is missing", ErrInvalidToken)
	}

	var expiresAt time.Time
	if c.ExpiresAt != nil {
		expiresAt = c.ExpiresAt.Time.UTC()
	}

	return Session{
		Token:     token,
		UserID:    userID,
		Email:     strings.TrimSpace(c.Email),
		Name:      strings.TrimSpace(c.Name),
		Role:      ParseRole(c.Role),
		TeamID:    strings.TrimSpace(c.TeamID),
		ExpiresAt: expiresAt,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
