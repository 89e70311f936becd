package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/hlaeja-ltd/account-registry/docs"
	"github.com/hlaeja-ltd/account-registry/internal/api/handler"
	"github.com/hlaeja-ltd/account-registry/internal/core/service"
	"github.com/hlaeja-ltd/account-registry/internal/infrastructure/config"
	mongodb "github.com/hlaeja-ltd/account-registry/internal/infrastructure/db/mongo"
	"github.com/hlaeja-ltd/account-registry/internal/infrastructure/security"
	"github.com/hlaeja-ltd/account-registry/internal/infrastructure/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("account_registry"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	hasher := security.NewBcryptHasher()
	signer := token.NewJWTSigner(cfg.JWTSecret, cfg.TokenTTL)
	accountService := service.NewAccountService(accountRepo, hasher, log)
	authService := service.NewAuthService(accountService, hasher, signer, log)
	accountHandler := handler.NewAccountHandler(accountService)
	authHandler := handler.NewAuthHandler(authService)

	// --- Account routes ---
	e.POST("/accounts", accountHandler.Create)
	e.GET("/accounts", accountHandler.List)
	e.GET("/accounts/:id", accountHandler.Get)
	e.PUT("/accounts/:id", accountHandler.Update)

	// --- Authentication ---
	e.POST("/authenticate", authHandler.Authenticate)

	// --- Health probes and operability ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
