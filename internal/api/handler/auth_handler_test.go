package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hlaeja-ltd/account-registry/internal/api"
	"github.com/hlaeja-ltd/account-registry/internal/api/handler"
	"github.com/hlaeja-ltd/account-registry/internal/core/domain"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, username, password string) (string, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	return s.authenticateFn(ctx, username, password)
}

func newAuthEcho(svc *stubAuthService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	e.POST("/authenticate", handler.NewAuthHandler(svc).Authenticate)
	return e
}

func TestAuthHandler_Authenticate_Success(t *testing.T) {
	svc := &stubAuthService{
		authenticateFn: func(_ context.Context, username, password string) (string, error) {
			if username != "alice" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %s/%s", username, password)
			}
			return "signed-token", nil
		},
	}
	rec := doJSON(newAuthEcho(svc), http.MethodPost, "/authenticate",
		`{"username":"alice","password":"s3cret"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestAuthHandler_Authenticate_UnknownUsername(t *testing.T) {
	svc := &stubAuthService{
		authenticateFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrAccountNotFound
		},
	}
	rec := doJSON(newAuthEcho(svc), http.MethodPost, "/authenticate",
		`{"username":"ghost","password":"x"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_Authenticate_WrongPassword(t *testing.T) {
	svc := &stubAuthService{
		authenticateFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	rec := doJSON(newAuthEcho(svc), http.MethodPost, "/authenticate",
		`{"username":"alice","password":"wrong"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Authenticate_DisabledAccount(t *testing.T) {
	svc := &stubAuthService{
		authenticateFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrAccountDisabled
		},
	}
	rec := doJSON(newAuthEcho(svc), http.MethodPost, "/authenticate",
		`{"username":"alice","password":"s3cret"}`)

	if rec.Code != http.StatusLocked {
		t.Fatalf("expected 423, got %d", rec.Code)
	}
}

func TestAuthHandler_Authenticate_MissingFields(t *testing.T) {
	svc := &stubAuthService{
		authenticateFn: func(context.Context, string, string) (string, error) {
			t.Fatal("service must not be reached")
			return "", nil
		},
	}
	rec := doJSON(newAuthEcho(svc), http.MethodPost, "/authenticate", `{"username":"alice"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
