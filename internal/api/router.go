package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/inkwell/content-system/internal/api/handler"
	"github.com/inkwell/content-system/internal/api/middleware"
	"github.com/inkwell/content-system/internal/core/domain"
	"github.com/inkwell/content-system/internal/core/service"
	"github.com/inkwell/content-system/internal/infrastructure/db/postgres"
	redisdb "github.com/inkwell/content-system/internal/infrastructure/db/redis"
	"github.com/inkwell/content-system/internal/pkg/config"
	"github.com/inkwell/content-system/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("content"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	userCache := redisdb.NewUserCache(rdb, cfg.Redis.CacheTTL)

	userService := service.NewUserService(userRepo, userCache, log)
	postService := service.NewPostService(postRepo, userRepo, userCache, log)
	authService := service.NewAuthService(cfg.AdminAPIKeyHash, cfg.JWTSecret, cfg.TokenTTL)

	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	authHandler := handler.NewAuthHandler(authService)

	// Write guards are active only when a JWT secret is configured;
	// without one the API runs open, which is fine for local development.
	var writeGuard, deleteGuard, authorGuard []echo.MiddlewareFunc
	if cfg.JWTSecret != "" {
		authMW := middleware.Auth(cfg.JWTSecret)
		writeGuard = []echo.MiddlewareFunc{authMW, middleware.RBAC(domain.RoleAdmin, domain.RoleSuperuser)}
		deleteGuard = []echo.MiddlewareFunc{authMW, middleware.RBAC(domain.RoleSuperuser)}
		authorGuard = []echo.MiddlewareFunc{authMW, middleware.RBAC(domain.Roles()...)}
	} else {
		log.Warn().Msg("JWT_SECRET not set; write endpoints are unauthenticated")
	}

	// --- Auth routes ---
	e.POST("/auth/token", authHandler.IssueToken)

	// --- v1 API ---
	v1 := e.Group("/v1")

	v1.POST("/users", userHandler.Create, writeGuard...)
	v1.GET("/users", userHandler.List)
	v1.GET("/users/:uuid", userHandler.Get)
	v1.PUT("/users/:uuid", userHandler.Update, writeGuard...)
	v1.DELETE("/users/:uuid", userHandler.Delete, deleteGuard...)

	v1.POST("/posts", postHandler.Create, authorGuard...)
	v1.GET("/posts", postHandler.List)
	v1.GET("/posts/:uuid", postHandler.Get)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
