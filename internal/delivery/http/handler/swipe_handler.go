package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/letsmeet/backend/internal/domain"
	"github.com/letsmeet/backend/internal/usecase/quota"
	"github.com/letsmeet/backend/internal/usecase/swipe"
)

type SwipeHandler struct {
	swipeUseCase *swipe.UseCase
	tracker      *quota.Tracker
	profiles     swipe.ProfileStore
}

func NewSwipeHandler(swipeUseCase *swipe.UseCase, tracker *quota.Tracker, profiles swipe.ProfileStore) *SwipeHandler {
	return &SwipeHandler{
		swipeUseCase: swipeUseCase,
		tracker:      tracker,
		profiles:     profiles,
	}
}

// SwipeRequest represents a swipe action
type SwipeRequest struct {
	TargetUserID int    `json:"target_user_id" binding:"required"`
	Action       string `json:"action" binding:"required,swipeaction"`
}

// CreateSwipe handles POST /swipes
func (h *SwipeHandler) CreateSwipe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.swipeUseCase.RecordSwipe(c.Request.Context(), userID, req.TargetUserID, domain.SwipeAction(req.Action))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStats handles GET /swipes/stats
func (h *SwipeHandler) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.tracker.Usage(c.Request.Context(), profile)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
