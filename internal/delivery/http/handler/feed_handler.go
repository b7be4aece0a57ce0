package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/letsmeet/backend/internal/domain"
	"github.com/letsmeet/backend/internal/usecase/feed"
)

const defaultFeedLimit = 20

type FeedHandler struct {
	feedUseCase *feed.UseCase
}

func NewFeedHandler(feedUseCase *feed.UseCase) *FeedHandler {
	return &FeedHandler{feedUseCase: feedUseCase}
}

// GetFeed handles GET /feed?limit=N
func (h *FeedHandler) GetFeed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit := defaultFeedLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, domain.ErrInvalidFeedLimit)
			return
		}
		limit = parsed
	}

	profiles, err := h.feedUseCase.GetFeed(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profiles": profiles,
		"count":    len(profiles),
	})
}

// GetFeedCount handles GET /feed/count
func (h *FeedHandler) GetFeedCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	count, err := h.feedUseCase.GetFeedCount(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": count})
}
