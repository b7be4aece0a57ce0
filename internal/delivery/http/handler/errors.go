package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/letsmeet/backend/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
	// Limit is set on rate-limit responses so the client can render the
	// daily cap.
	Limit *int `json:"limit,omitempty"`
}

// respondError maps domain errors to HTTP statuses. Anything
// unrecognized is a persistence-layer failure and surfaces as 503
// without internal detail.
func respondError(c *gin.Context, err error) {
	var limitErr *domain.DailyLimitError

	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
	case errors.Is(err, domain.ErrMatchNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "match not found"})
	case errors.Is(err, domain.ErrMatchForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "you are not a participant in this match"})
	case errors.Is(err, domain.ErrSwipeAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "already swiped on this user"})
	case errors.As(err, &limitErr):
		limit := limitErr.Limit
		c.JSON(http.StatusTooManyRequests, ErrorResponse{
			Error: "daily swipe limit reached, upgrade to premium for unlimited swipes",
			Limit: &limit,
		})
	case errors.Is(err, domain.ErrCannotSwipeSelf),
		errors.Is(err, domain.ErrInvalidSwipeAction),
		errors.Is(err, domain.ErrInvalidFeedLimit):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "service temporarily unavailable"})
	}
}

// currentUserID reads the authenticated user id placed in the context
// by the auth middleware.
func currentUserID(c *gin.Context) (int, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	userID, ok := value.(int)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return 0, false
	}
	return userID, true
}
