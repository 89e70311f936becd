package ports

import (
	"context"

	"github.com/hlaeja-ltd/account-registry/internal/core/domain"
)

// AccountInput is the DTO passed from the transport layer for create and
// update operations. Password is a pointer so that "absent" (keep the
// existing hash on update) can be told apart from "blank" (invalid).
type AccountInput struct {
	Username string
	Password *string
	Enabled  bool
	Roles    []string
}

// AccountService defines the account business-rule operations.
type AccountService interface {
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	// GetAccountByUsername exists for the authentication flow; it is not
	// exposed over HTTP.
	GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error)
	// ListAccounts returns page (1-indexed) of at most size accounts in
	// store-native order. page and size must both be >= 1.
	ListAccounts(ctx context.Context, page, size int) ([]*domain.Account, error)
	CreateAccount(ctx context.Context, in AccountInput) (*domain.Account, error)
	// UpdateAccount replaces username, enabled, and roles wholesale and the
	// password hash only when a new password is supplied. When the candidate
	// is identical to the stored account it returns
	// domain.ErrNoEffectiveChange without writing.
	UpdateAccount(ctx context.Context, id string, in AccountInput) (*domain.Account, error)
}
