package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hbnb/hbnb-api/internal/api/handler"
	"github.com/hbnb/hbnb-api/internal/api/middleware"
	"github.com/hbnb/hbnb-api/internal/core/ports"
	"github.com/hbnb/hbnb-api/internal/infrastructure/db/redis"
)

// RouterConfig carries everything the HTTP layer needs. DB and Redis may be
// nil (memory storage mode, cache disabled); the readiness probe and the
// listing cache degrade gracefully.
type RouterConfig struct {
	Facade    ports.Facade
	JWTSecret string
	DB        *sql.DB
	Redis     *goredis.Client
	Cache     *redis.ListingCache
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hbnb"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Dependencies ---
	userHandler := handler.NewUserHandler(cfg.Facade)
	authHandler := handler.NewAuthHandler(cfg.Facade)
	placeHandler := handler.NewPlaceHandler(cfg.Facade, cfg.Cache)
	amenityHandler := handler.NewAmenityHandler(cfg.Facade)
	reviewHandler := handler.NewReviewHandler(cfg.Facade)

	auth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)
	adminOnly := middleware.AdminOnly()

	// --- Health probes + metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(cfg.DB, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	v1 := e.Group("/api/v1")

	// --- Auth routes ---
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/protected", authHandler.Protected, auth)

	// --- User routes ---
	v1.POST("/users", userHandler.Create, optionalAuth)
	v1.GET("/users", userHandler.List)
	v1.GET("/users/:id", userHandler.Get)
	v1.PUT("/users/:id", userHandler.Update, auth)

	// --- Place routes ---
	v1.POST("/places", placeHandler.Create, auth)
	v1.GET("/places", placeHandler.List)
	v1.GET("/places/:id", placeHandler.Get)
	v1.PUT("/places/:id", placeHandler.Update, auth)
	v1.POST("/places/:id/amenities", placeHandler.AddAmenity, auth)
	v1.GET("/places/:id/reviews", placeHandler.ListReviews)

	// --- Amenity routes (mutations are admin-only) ---
	v1.POST("/amenities", amenityHandler.Create, auth, adminOnly)
	v1.GET("/amenities", amenityHandler.List)
	v1.GET("/amenities/:id", amenityHandler.Get)
	v1.PUT("/amenities/:id", amenityHandler.Update, auth, adminOnly)

	// --- Review routes ---
	v1.POST("/reviews", reviewHandler.Create, auth)
	v1.GET("/reviews", reviewHandler.List)
	v1.GET("/reviews/:id", reviewHandler.Get)
	v1.PUT("/reviews/:id", reviewHandler.Update, auth)
	v1.DELETE("/reviews/:id", reviewHandler.Delete, auth)

	return e
}
