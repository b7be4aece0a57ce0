package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/letsmeet/backend/internal/delivery/http/handler"
	"github.com/letsmeet/backend/internal/delivery/http/middleware"
)

type Router struct {
	feedHandler    *handler.FeedHandler
	swipeHandler   *handler.SwipeHandler
	matchHandler   *handler.MatchHandler
	profileHandler *handler.ProfileHandler
	authMiddleware *middleware.AuthMiddleware
	log            *zap.Logger
}

func NewRouter(
	feedHandler *handler.FeedHandler,
	swipeHandler *handler.SwipeHandler,
	matchHandler *handler.MatchHandler,
	profileHandler *handler.ProfileHandler,
	authMiddleware *middleware.AuthMiddleware,
	log *zap.Logger,
) *Router {
	return &Router{
		feedHandler:    feedHandler,
		swipeHandler:   swipeHandler,
		matchHandler:   matchHandler,
		profileHandler: profileHandler,
		authMiddleware: authMiddleware,
		log:            log,
	}
}

func (r *Router) Setup() *gin.Engine {
	RegisterValidations()

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(r.log))
	router.Use(gin.Recovery())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Feed routes
			feed := protected.Group("/feed")
			{
				feed.GET("", r.feedHandler.GetFeed)
				feed.GET("/count", r.feedHandler.GetFeedCount)
			}

			// Swipe routes
			swipes := protected.Group("/swipes")
			{
				swipes.POST("", r.swipeHandler.CreateSwipe)
				swipes.GET("/stats", r.swipeHandler.GetStats)
			}

			// Match routes
			matches := protected.Group("/matches")
			{
				matches.GET("", r.matchHandler.ListMatches)
				matches.DELETE("/:match_id", r.matchHandler.Unmatch)
			}

			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
			}
		}
	}

	return router
}
