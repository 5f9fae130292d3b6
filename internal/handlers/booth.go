package handlers

import (
	"net/http"

	"booth-rally-backend/internal/catalog"
	"booth-rally-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type BoothHandler struct {
	participantService *services.ParticipantService
	gameService        *services.GameService
}

func NewBoothHandler(participantService *services.ParticipantService, gameService *services.GameService) *BoothHandler {
	return &BoothHandler{participantService: participantService, gameService: gameService}
}

// ListBooths godoc
// @Summary      Booth catalog
// @Description  Static list of booths, minigames and score ceilings
// @Tags         booths
// @Produce      json
// @Success      200 {array} catalog.Booth
// @Router       /api/v1/booths [get]
func (h *BoothHandler) ListBooths(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Booths())
}

// Leaderboard godoc
// @Summary      Leaderboard
// @Description  Participants ranked by total score
// @Tags         booths
// @Produce      json
// @Success      200 {array} services.LeaderboardEntry
// @Router       /api/v1/leaderboard [get]
func (h *BoothHandler) Leaderboard(c *gin.Context) {
	entries, err := h.participantService.Leaderboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Me godoc
// @Summary      Own profile
// @Description  Scores, booth progress and reward state for the logged-in participant
// @Tags         booths
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.Profile
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/me [get]
func (h *BoothHandler) Me(c *gin.Context) {
	profile, err := h.participantService.Profile(contextHandle(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// State godoc
// @Summary      Game state
// @Description  Current game status and reset marker; polling fallback for the websocket push
// @Tags         game
// @Produce      json
// @Success      200 {object} services.GameStateView
// @Router       /api/v1/state [get]
func (h *BoothHandler) State(c *gin.Context) {
	state, err := h.gameService.State()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}
