package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/client-registry/internal/api/http/handlers"
	"github.com/spec-kit/client-registry/internal/config"
	"github.com/spec-kit/client-registry/internal/ratelimit"
	"github.com/spec-kit/client-registry/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Clients   *handlers.ClientsHandler
	Suppliers *handlers.SuppliersHandler
	Auth      *handlers.AuthHandler
	Sessions  *session.Middleware
	Limiter   *ratelimit.Limiter
	Limits    config.RateLimitConfig
	StaticDir string
}

// RegisterRoutes wires HTTP routes. Each rate-limited route gets its own
// (max, window) pair over the shared limiter.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	registerLimit := ratelimit.New(cfg.Limiter, cfg.Limits.Register.Max, cfg.Limits.Register.Window())
	loginLimit := ratelimit.New(cfg.Limiter, cfg.Limits.Login.Max, cfg.Limits.Login.Window())
	listLimit := ratelimit.New(cfg.Limiter, cfg.Limits.List.Max, cfg.Limits.List.Window())

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/register-client", registerLimit, cfg.Clients.Register)
	app.Get("/clients", listLimit, cfg.Clients.List)
	app.Post("/login-client", loginLimit, cfg.Auth.Login)
	app.Post("/logout-client", cfg.Auth.Logout)
	app.Get("/client-session", cfg.Sessions.Handle, cfg.Auth.Session)

	app.Post("/register-supplier", registerLimit, cfg.Suppliers.Register)
	app.Get("/suppliers", listLimit, cfg.Suppliers.List)

	// Front-end bundle, catch-all.
	app.Static("/", cfg.StaticDir)
}
