package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"safariq-api/internal/services"
)

type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

func NewLeaderboardHandler(leaderboardService *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// GetLeaderboard returns the top users by SED earned
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limit := services.DefaultLeaderboardLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid limit", err)
			return
		}
		limit = n
	}

	leaderboard, err := h.leaderboardService.Top(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, "Error fetching leaderboard", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": leaderboard})
}
