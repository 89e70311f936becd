package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hlaeja-ltd/account-registry/internal/core/domain"
	"github.com/hlaeja-ltd/account-registry/internal/core/ports"
)

// recordingSigner captures the claims it is asked to sign.
type recordingSigner struct {
	claims []ports.Claim
	err    error
}

func (s *recordingSigner) Sign(claims ...ports.Claim) (string, error) {
	s.claims = claims
	if s.err != nil {
		return "", s.err
	}
	return "signed-token", nil
}

func newAuthFixture(t *testing.T) (*AuthService, *recordingSigner, *AccountService) {
	t.Helper()
	accounts := newAccountService(newStubAccountRepo())
	signer := &recordingSigner{}
	auth := NewAuthService(accounts, plainHasher{}, signer, zerolog.Nop())
	return auth, signer, accounts
}

func seedAccount(t *testing.T, accounts *AccountService, username string, enabled bool) *domain.Account {
	t.Helper()
	created, err := accounts.CreateAccount(context.Background(), ports.AccountInput{
		Username: username,
		Password: strPtr("correct-horse"),
		Enabled:  enabled,
		Roles:    []string{"ROLE_ADMIN", "ROLE_USER"},
	})
	if err != nil {
		t.Fatalf("seed %s: %v", username, err)
	}
	return created
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	auth, signer, accounts := newAuthFixture(t)
	created := seedAccount(t, accounts, "carol", true)

	token, err := auth.Authenticate(context.Background(), "carol", "correct-horse")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if token != "signed-token" {
		t.Fatalf("unexpected token: %q", token)
	}

	want := []ports.Claim{
		{Key: "id", Value: created.ID},
		{Key: "username", Value: "carol"},
		{Key: "role", Value: "ROLE_ADMIN,ROLE_USER"},
	}
	if len(signer.claims) != len(want) {
		t.Fatalf("unexpected claims: %+v", signer.claims)
	}
	for i, c := range want {
		if signer.claims[i] != c {
			t.Fatalf("claim %d: expected %+v, got %+v", i, c, signer.claims[i])
		}
	}
}

func TestAuthService_Authenticate_UnknownUsername(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	if _, err := auth.Authenticate(context.Background(), "ghost", "anything"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	auth, _, accounts := newAuthFixture(t)
	seedAccount(t, accounts, "dave", true)

	if _, err := auth.Authenticate(context.Background(), "dave", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_DisabledAccount(t *testing.T) {
	auth, _, accounts := newAuthFixture(t)
	seedAccount(t, accounts, "erin", false)

	if _, err := auth.Authenticate(context.Background(), "erin", "correct-horse"); !errors.Is(err, domain.ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestAuthService_Authenticate_WrongPasswordOnDisabledAccount(t *testing.T) {
	// The credential check precedes the status check: a disabled account must
	// not be distinguishable without the correct password.
	auth, _, accounts := newAuthFixture(t)
	seedAccount(t, accounts, "frank", false)

	if _, err := auth.Authenticate(context.Background(), "frank", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
