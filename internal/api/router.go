package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/willsblog/microblog-api/docs"
	"github.com/willsblog/microblog-api/internal/api/handler"
	"github.com/willsblog/microblog-api/internal/api/middleware"
	"github.com/willsblog/microblog-api/internal/core/ports"
	"github.com/willsblog/microblog-api/internal/core/service"
	"github.com/willsblog/microblog-api/internal/infrastructure/config"
	mongodb "github.com/willsblog/microblog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/willsblog/microblog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	mail ports.MailDispatcher,
	gen ports.IDGenerator,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("microblog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	followRepo := mongodb.NewFollowRepository(db)
	resetTokens := redisdb.NewResetTokenStore(rdb)

	authService := service.NewAuthService(userRepo, gen, resetTokens, mail, cfg.JWTSecret, cfg.TokenTTL, cfg.ResetTokenTTL, log)
	userService := service.NewUserService(userRepo, postRepo, followRepo, log)
	postService := service.NewPostService(postRepo, userRepo, gen, log)
	followService := service.NewFollowService(followRepo, userRepo, log)
	feedService := service.NewFeedService(postRepo, followRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)
	followHandler := handler.NewFollowHandler(followService)
	feedHandler := handler.NewFeedHandler(feedService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	lastSeen := middleware.LastSeen(userService, log)

	// --- Auth routes (public) ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/password-reset/request", authHandler.RequestPasswordReset)
	e.POST("/v1/auth/password-reset/confirm", authHandler.ResetPassword)

	// --- Public reads ---
	e.GET("/v1/users/:username", userHandler.Profile)
	e.GET("/v1/users/:username/posts", postHandler.UserPosts)

	// --- Authenticated routes ---
	auth := e.Group("/v1", authMiddleware, lastSeen)
	auth.GET("/feed", feedHandler.Feed)
	auth.POST("/posts", postHandler.Create)
	auth.PUT("/users/me", userHandler.UpdateProfile)
	auth.GET("/users/me/following", followHandler.Following)
	auth.POST("/users/:username/follow", followHandler.Follow)
	auth.DELETE("/users/:username/follow", followHandler.Unfollow)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
