package zerobid

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/zerobid-console/internal/domain/account"
	"github.com/riskibarqy/zerobid-console/internal/usecase"
)

// Login exchanges credentials for the backend access token.
func (c *Client) Login(ctx context.Context, creds account.Credentials) (string, error) {
	body := loginRequest{
		Email:    strings.TrimSpace(creds.Email),
		Password: creds.Password,
	}

	var payload tokenPayload
	if _, err := c.postJSON(ctx, account.Session{}, "/auth/login", body, &payload); err != nil {
		return "", fmt.Errorf("login: %w", err)
	}

	token := payload.value()
	if token == "" {
		return "", fmt.Errorf("%w: login response carried no token", usecase.ErrDependencyUnavailable)
	}
	return token, nil
}

// Register creates an account. An empty token means the registration is
// waiting for admin approval.
func (c *Client) Register(ctx context.Context, reg account.Registration) (string, error) {
	body := registerRequest{
		Name:     strings.TrimSpace(reg.Name),
		Email:    strings.TrimSpace(reg.Email),
		Password: reg.Password,
		Role:     string(reg.Role),
		TeamID:   strings.TrimSpace(reg.TeamID),
		EventID:  strings.TrimSpace(reg.EventID),
	}

	var payload tokenPayload
	if _, err := c.postJSON(ctx, account.Session{}, "/auth/register", body, &payload); err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return payload.value(), nil
}
