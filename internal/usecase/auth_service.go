package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/zerobid-console/internal/domain/account"
)

type LoginInput struct {
	Email    string
	Password string
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	TeamID   string
	EventID  string
}

// RegisterResult carries a session only when the backend signs the user in
// straight away. Otherwise the registration waits for admin approval.
type RegisterResult struct {
	Session         *account.Session
	PendingApproval bool
}

type AuthService struct {
	auth   account.Authenticator
	secret []byte
	clock  clockwork.Clock
}

// NewAuthService verifies every token with secret, the HMAC key the backend
// signs access tokens with.
func NewAuthService(auth account.Authenticator, secret []byte, clock clockwork.Clock) *AuthService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &AuthService{auth: auth, secret: secret, clock: clock}
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (account.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return account.Session{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	token, err := s.auth.Login(ctx, account.Credentials{Email: email, Password: input.Password})
	if err != nil {
		return account.Session{}, fmt.Errorf("login: %w", err)
	}

	sess, err := account.SessionFromToken(token, s.secret, s.clock.Now())
	if err != nil {
		return account.Session{}, fmt.Errorf("%w: backend issued an unusable token: %v", ErrDependencyUnavailable, err)
	}
	return sess, nil
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (RegisterResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	reg := account.Registration{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
		Role:     account.ParseRole(input.Role),
		TeamID:   strings.TrimSpace(input.TeamID),
		EventID:  strings.TrimSpace(input.EventID),
	}
	if reg.Name == "" {
		return RegisterResult{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(reg.Email); err != nil {
		return RegisterResult{}, fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if len(reg.Password) < 6 {
		return RegisterResult{}, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}
	if reg.Role == account.RoleAdmin {
		return RegisterResult{}, fmt.Errorf("%w: admin accounts cannot self-register", ErrForbidden)
	}
	if reg.Role == account.RoleTeamRep && reg.TeamID == "" {
		return RegisterResult{}, fmt.Errorf("%w: team id is required for team representatives", ErrInvalidInput)
	}

	token, err := s.auth.Register(ctx, reg)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("register: %w", err)
	}
	if strings.TrimSpace(token) == "" {
		return RegisterResult{PendingApproval: true}, nil
	}

	sess, err := account.SessionFromToken(token, s.secret, s.clock.Now())
	if err != nil {
		return RegisterResult{}, fmt.Errorf("%w: backend issued an unusable token: %v", ErrDependencyUnavailable, err)
	}
	return RegisterResult{Session: &sess}, nil
}

// Authenticate turns a bearer token into a session once its signature checks
// out. Revocation stays with the backend.
func (s *AuthService) Authenticate(ctx context.Context, token string) (account.Session, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AuthService.Authenticate")
	defer span.End()

	sess, err := account.SessionFromToken(token, s.secret, s.clock.Now())
	if err != nil {
		if errors.Is(err, account.ErrTokenExpired) {
			return account.Session{}, fmt.Errorf("%w: token expired", ErrUnauthorized)
		}
		return account.Session{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return sess, nil
}
