package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/stayhub/hotel-booking-api/docs"
	"github.com/stayhub/hotel-booking-api/internal/api/handler"
	"github.com/stayhub/hotel-booking-api/internal/api/middleware"
	"github.com/stayhub/hotel-booking-api/internal/core/domain"
	"github.com/stayhub/hotel-booking-api/internal/core/service"
	"github.com/stayhub/hotel-booking-api/internal/infrastructure/config"
	mongodb "github.com/stayhub/hotel-booking-api/internal/infrastructure/db/mongo"
	"github.com/stayhub/hotel-booking-api/internal/infrastructure/http/handlers"
	"github.com/stayhub/hotel-booking-api/internal/infrastructure/security"
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
	e.Use(echoprometheus.NewMiddleware("booking"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	hasher := security.NewBcryptHasher()
	authenticator := service.NewCredentialAuthenticator(userRepo, hasher)
	tokens := security.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.TokenTTL)
	userService := service.NewUserService(userRepo, bookingRepo, hasher, authenticator, tokens, log)
	userHandler := handler.NewUserHandler(userService)

	authRequired := middleware.Auth(cfg.JWT.Secret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public auth routes ---
	e.POST("/auth/register", userHandler.Register)
	e.POST("/auth/login", userHandler.Login)

	// --- Account routes ---
	v1 := e.Group("/v1", authRequired)
	v1.GET("/users", userHandler.GetAll, adminOnly)
	v1.GET("/users/me", userHandler.Me)
	v1.GET("/users/:id", userHandler.GetByID, adminOnly)
	v1.GET("/users/:id/bookings", userHandler.BookingHistory)
	v1.DELETE("/users/:id", userHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
