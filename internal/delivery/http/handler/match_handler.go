package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/letsmeet/backend/internal/domain"
	"github.com/letsmeet/backend/internal/usecase/match"
)

type MatchHandler struct {
	matchUseCase *match.UseCase
}

func NewMatchHandler(matchUseCase *match.UseCase) *MatchHandler {
	return &MatchHandler{matchUseCase: matchUseCase}
}

// ListMatches handles GET /matches
func (h *MatchHandler) ListMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matches, err := h.matchUseCase.ListMatches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if matches == nil {
		matches = []*domain.MatchWithProfile{}
	}

	c.JSON(http.StatusOK, matches)
}

// Unmatch handles DELETE /matches/:match_id
func (h *MatchHandler) Unmatch(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	matchID, err := strconv.Atoi(c.Param("match_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match id"})
		return
	}

	if err := h.matchUseCase.Unmatch(c.Request.Context(), matchID, userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
