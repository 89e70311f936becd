package ports

import (
	"context"

	"github.com/hlaeja-ltd/account-registry/internal/core/domain"
)

// AccountRepository defines persistence operations for accounts. The store
// is the single arbiter of username uniqueness: Save returns
// domain.ErrUsernameTaken on a violated unique constraint.
type AccountRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	// Save inserts the account when it has no id and replaces the stored
	// record otherwise. The persisted account, id included, is returned.
	Save(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// List returns the sub-range [offset, offset+limit) of all accounts in
	// store-native order, possibly shorter when the set is exhausted.
	List(ctx context.Context, offset, limit int64) ([]*domain.Account, error)
}
