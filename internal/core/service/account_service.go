package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hlaeja-ltd/account-registry/internal/core/domain"
	"github.com/hlaeja-ltd/account-registry/internal/core/ports"
)

// AccountService implements the account business rules: lookups, paginated
// listing, create with password hashing, and update with no-op detection.
type AccountService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	log    zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, hasher ports.PasswordHasher, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, hasher: hasher, log: log}
}

func (s *AccountService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("account_id", account.ID).Msg("account retrieved")
	return account, nil
}

func (s *AccountService) GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Str("account_id", account.ID).Str("username", username).Msg("account retrieved by username")
	return account, nil
}

// ListAccounts returns one page of accounts in store-native order. Both page
// and size are 1-indexed bounds checked before the store is touched.
func (s *AccountService) ListAccounts(ctx context.Context, page, size int) ([]*domain.Account, error) {
	if page < 1 || size < 1 {
		return nil, fmt.Errorf("%w: page and size must be >= 1", domain.ErrInvalidAccount)
	}

	offset := int64(page-1) * int64(size)
	accounts, err := s.repo.List(ctx, offset, int64(size))
	if err != nil {
		return nil, err
	}

	s.log.Debug().Int("page", page).Int("size", size).Int("returned", len(accounts)).Msg("accounts listed")
	return accounts, nil
}

func (s *AccountService) CreateAccount(ctx context.Context, in ports.AccountInput) (*domain.Account, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.Password == nil {
		return nil, fmt.Errorf("%w: password is required", domain.ErrInvalidAccount)
	}

	hash, err := s.hasher.Hash(*in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	account := &domain.Account{
		CreatedAt:    now,
		UpdatedAt:    now,
		Enabled:      in.Enabled,
		Username:     in.Username,
		PasswordHash: hash,
		Roles:        domain.JoinRoles(in.Roles),
	}

	created, err := s.repo.Save(ctx, account)
	if err != nil {
		return nil, mapSaveError(err)
	}

	s.log.Debug().Str("account_id", created.ID).Msg("account created")
	return created, nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, id string, in ports.AccountInput) (*domain.Account, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	candidate := *current
	candidate.UpdatedAt = time.Now().UTC()
	candidate.Enabled = in.Enabled
	candidate.Username = in.Username
	candidate.Roles = domain.JoinRoles(in.Roles)
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		candidate.PasswordHash = hash
	}

	if unchanged(current, &candidate) {
		s.log.Debug().Str("account_id", current.ID).Msg("update without effective change")
		return nil, domain.ErrNoEffectiveChange
	}

	updated, err := s.repo.Save(ctx, &candidate)
	if err != nil {
		return nil, mapSaveError(err)
	}

	s.log.Debug().Str("account_id", updated.ID).Msg("account updated")
	return updated, nil
}

// validateInput applies the request-level rules shared by create and update:
// username non-blank, password non-blank when present, roles non-empty.
func validateInput(in ports.AccountInput) error {
	if strings.TrimSpace(in.Username) == "" {
		return fmt.Errorf("%w: username must not be blank", domain.ErrInvalidAccount)
	}
	if in.Password != nil && strings.TrimSpace(*in.Password) == "" {
		return fmt.Errorf("%w: password must not be blank", domain.ErrInvalidAccount)
	}
	if len(in.Roles) == 0 {
		return fmt.Errorf("%w: roles must not be empty", domain.ErrInvalidAccount)
	}
	return nil
}

// unchanged reports whether the candidate matches the stored account in every
// field an update can touch. Timestamps are deliberately excluded.
func unchanged(current, candidate *domain.Account) bool {
	return current.PasswordHash == candidate.PasswordHash &&
		current.Username == candidate.Username &&
		current.Enabled == candidate.Enabled &&
		current.Roles == candidate.Roles
}

// mapSaveError keeps the store's uniqueness violation distinct and folds every
// other persistence failure into an invalid-request outcome. The store is not
// expected to produce other recoverable conditions.
func mapSaveError(err error) error {
	if errors.Is(err, domain.ErrUsernameTaken) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrInvalidAccount, err)
}
