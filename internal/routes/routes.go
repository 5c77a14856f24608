package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/heizlog/heizlog/internal/config"
	"github.com/heizlog/heizlog/internal/handlers"
	"github.com/heizlog/heizlog/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	customerHandler *handlers.CustomerHandler,
	heaterHandler *handlers.HeaterHandler,
	maintenanceHandler *handlers.MaintenanceHandler,
	dashboardHandler *handlers.DashboardHandler,
	photoHandler *handlers.PhotoHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Public auth endpoints get a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth endpoints
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Customers
	customers := api.Group("/customers", middleware.JWTProtected(cfg))
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.Get)
	customers.Patch("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Heaters
	heaters := api.Group("/heaters", middleware.JWTProtected(cfg))
	heaters.Get("/", heaterHandler.List)
	heaters.Post("/", heaterHandler.Create)
	heaters.Get("/:id", heaterHandler.Get)
	heaters.Patch("/:id", heaterHandler.Update)
	heaters.Delete("/:id", heaterHandler.Delete)

	// Maintenances
	maintenances := api.Group("/maintenances", middleware.JWTProtected(cfg))
	maintenances.Get("/", maintenanceHandler.List)
	maintenances.Post("/", maintenanceHandler.Create)
	maintenances.Get("/:id", maintenanceHandler.Get)
	maintenances.Delete("/:id", maintenanceHandler.Delete)

	// Photos
	api.Post("/photos", middleware.JWTProtected(cfg), photoHandler.Upload)

	// Dashboard
	api.Get("/dashboard/stats", middleware.JWTProtected(cfg), dashboardHandler.Stats)
}
