package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hlaeja-ltd/account-registry/internal/core/domain"
	"github.com/hlaeja-ltd/account-registry/internal/core/ports"
)

// AuthService implements the authentication decision flow: lookup, credential
// check, status check, token issuance. Each step short-circuits, in that
// order: an unknown username fails before any password comparison, and a
// disabled account is only reported once the password is correct.
type AuthService struct {
	accounts ports.AccountService
	hasher   ports.PasswordHasher
	signer   ports.TokenSigner
	log      zerolog.Logger
}

func NewAuthService(accounts ports.AccountService, hasher ports.PasswordHasher, signer ports.TokenSigner, log zerolog.Logger) *AuthService {
	return &AuthService{accounts: accounts, hasher: hasher, signer: signer, log: log}
}

func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	account, err := s.accounts.GetAccountByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if !s.hasher.Check(password, account.PasswordHash) {
		s.log.Debug().Str("username", username).Msg("password mismatch")
		return "", domain.ErrInvalidCredentials
	}

	if !account.Enabled {
		s.log.Debug().Str("account_id", account.ID).Msg("disabled account rejected")
		return "", domain.ErrAccountDisabled
	}

	token, err := s.signer.Sign(
		ports.Claim{Key: "id", Value: account.ID},
		ports.Claim{Key: "username", Value: account.Username},
		ports.Claim{Key: "role", Value: account.Roles},
	)
	if err != nil {
		return "", err
	}

	s.log.Debug().Str("account_id", account.ID).Msg("token issued")
	return token, nil
}
