package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/heroboxai/herobox-api/internal/api/handler"
	"github.com/heroboxai/herobox-api/internal/api/metrics"
	"github.com/heroboxai/herobox-api/internal/api/middleware"
	"github.com/heroboxai/herobox-api/internal/core/service"
	"github.com/heroboxai/herobox-api/internal/infrastructure/db/postgres"
	"github.com/heroboxai/herobox-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(requestDuration)

	// --- Dependencies ---
	userStore := postgres.NewUserStore(pool)
	clanStore := postgres.NewClanStore(pool)
	heroStore := postgres.NewHeroStore(pool)
	itemStore := postgres.NewItemStore(pool)
	tx := postgres.NewTransactor(pool)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, time.Duration(cfg.JWTTTLMinutes)*time.Minute)

	authService := service.NewAuthService(userStore, hasher, tokens, log)
	userService := service.NewUserService(userStore, log)
	clanService := service.NewClanService(clanStore, userStore, tx, log)
	heroService := service.NewHeroService(heroStore, log)
	itemService := service.NewItemService(itemStore, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	clanHandler := handler.NewClanHandler(clanService)
	heroHandler := handler.NewHeroHandler(heroService)
	itemHandler := handler.NewItemHandler(itemService)
	requireAuth := middleware.Auth(tokens)

	// --- Auth routes (no token required) ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/signin", authHandler.SignIn)

	// --- Public clan reads ---
	e.GET("/api/clans", clanHandler.List)
	e.GET("/api/clans/:id", clanHandler.Get)
	e.GET("/api/clans/:id/members", clanHandler.Members)

	// --- Protected API routes ---
	api := e.Group("/api", requireAuth)

	api.GET("/users/me", userHandler.Me)
	api.PUT("/users/me", userHandler.UpdateMe)

	api.POST("/clans", clanHandler.Create)
	api.PUT("/clans/:id", clanHandler.Update)
	api.DELETE("/clans/:id", clanHandler.Delete)

	api.GET("/heroes", heroHandler.List)
	api.POST("/heroes", heroHandler.Create)
	api.GET("/heroes/:id", heroHandler.Get)
	api.PUT("/heroes/:id", heroHandler.Update)
	api.DELETE("/heroes/:id", heroHandler.Delete)

	api.GET("/items", itemHandler.List)
	api.POST("/items", itemHandler.Create)
	api.GET("/items/:id", itemHandler.Get)
	api.PUT("/items/:id", itemHandler.Update)
	api.DELETE("/items/:id", itemHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the database up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}

// requestDuration records per-route latency into the Prometheus histogram.
func requestDuration(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		metrics.RequestDuration.
			WithLabelValues(c.Request().Method, c.Path()).
			Observe(time.Since(start).Seconds())
		return err
	}
}
