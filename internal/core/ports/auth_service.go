package ports

import "context"

// AuthService authenticates a username/password pair into a signed token.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}
