package account

import "context"

type Credentials struct {
	Email    string
	Password string
}

type Registration struct {
	Name     string
	Email    string
	Password string
	Role     Role
	TeamID   string
	EventID  string
}

// Authenticator exchanges credentials with the backend for an access token.
type Authenticator interface {
	Login(ctx context.Context, creds Credentials) (string, error)
	Register(ctx context.Context, reg Registration) (string, error)
}
