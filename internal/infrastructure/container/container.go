package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/letsmeet/backend/internal/cache"
	"github.com/letsmeet/backend/internal/config"
	httpdelivery "github.com/letsmeet/backend/internal/delivery/http"
	"github.com/letsmeet/backend/internal/delivery/http/handler"
	"github.com/letsmeet/backend/internal/delivery/http/middleware"
	"github.com/letsmeet/backend/internal/infrastructure/database"
	"github.com/letsmeet/backend/internal/infrastructure/logger"
	"github.com/letsmeet/backend/internal/infrastructure/server"
	"github.com/letsmeet/backend/internal/repository/postgres"
	feeduc "github.com/letsmeet/backend/internal/usecase/feed"
	matchuc "github.com/letsmeet/backend/internal/usecase/match"
	profileuc "github.com/letsmeet/backend/internal/usecase/profile"
	"github.com/letsmeet/backend/internal/usecase/quota"
	swipeuc "github.com/letsmeet/backend/internal/usecase/swipe"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis is optional: without it the service runs uncached (fail-open,
	// reads fall through to postgres).
	var redisClient *redis.Client
	cacheStore := cache.NewNoopStore()
	redisClient, err = database.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable, running without cache", zap.Error(err))
		redisClient = nil
	} else {
		cacheStore = cache.NewRedisStore(redisClient, log)
	}
	invalidator := cache.NewInvalidator(cacheStore)

	// Initialize repositories
	profileRepo := postgres.NewProfileRepository(db)
	swipeRepo := postgres.NewSwipeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)

	// Initialize use cases
	tracker := quota.NewTracker(swipeRepo, cfg.Quota.FreeDailyLimit)

	feedUseCase := feeduc.NewUseCase(profileRepo, cacheStore, log)
	swipeUseCase := swipeuc.NewUseCase(profileRepo, swipeRepo, matchRepo, tracker, invalidator, log)
	matchUseCase := matchuc.NewUseCase(matchRepo, cacheStore, invalidator, log)
	profileUseCase := profileuc.NewUseCase(profileRepo, invalidator)

	// Initialize handlers
	feedHandler := handler.NewFeedHandler(feedUseCase)
	swipeHandler := handler.NewSwipeHandler(swipeUseCase, tracker, profileRepo)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret, profileRepo, log)

	// Initialize router
	router := httpdelivery.NewRouter(
		feedHandler,
		swipeHandler,
		matchHandler,
		profileHandler,
		authMiddleware,
		log,
	)

	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	_ = c.Logger.Sync()
	return nil
}
