package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"quiz-racer/internal/app"
	"quiz-racer/internal/domain"
)

type LeaderboardHandler struct {
	service *app.GameService
}

func NewLeaderboardHandler(service *app.GameService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

type leaderboardResponse struct {
	Tier    domain.Tier     `json:"tier,omitempty"`
	Results []domain.Result `json:"results"`
}

// List serves GET /api/leaderboard?limit=&tier=.
func (h *LeaderboardHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, errorPayload{Message: "invalid limit"})
			return
		}
		limit = n
	}

	var tier domain.Tier
	if raw := c.Query("tier"); raw != "" {
		t, err := domain.ParseTier(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorPayload{Message: err.Error()})
			return
		}
		tier = t
	}

	results, err := h.service.TopResults(c.Request.Context(), limit, tier)
	if err != nil {
		log.Error().Err(err).Msg("fetch leaderboard")
		c.JSON(http.StatusInternalServerError, errorPayload{Message: "leaderboard unavailable"})
		return
	}
	c.JSON(http.StatusOK, leaderboardResponse{Tier: tier, Results: results})
}
