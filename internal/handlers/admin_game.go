package handlers

import (
	"net/http"

	"booth-rally-backend/internal/services"
	"booth-rally-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
	hub         *ws.Hub
}

func NewGameHandler(gameService *services.GameService, hub *ws.Hub) *GameHandler {
	return &GameHandler{gameService: gameService, hub: hub}
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required" example:"ended"`
}

// SetStatus godoc
// @Summary      Set the global game status
// @Description  active/ended switch gating scan and allocation operations
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SetStatusRequest true "New status"
// @Success      200 {object} models.GameState
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/admin/game/status [put]
func (h *GameHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.gameService.SetStatus(req.Status, contextStaff(c))
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(ws.TopicGame, ws.WSMessage{
		Type: "game_status",
		Data: state,
	})

	c.JSON(http.StatusOK, state)
}

// Reset godoc
// @Summary      Wipe all event data
// @Description  Stamps the reset marker, deletes all records in batches and reactivates the game
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} services.GameStateView
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/admin/game/reset [post]
func (h *GameHandler) Reset(c *gin.Context) {
	state, err := h.gameService.ResetAll(contextStaff(c))
	if err != nil {
		respondError(c, err)
		return
	}

	// Websocket push; clients that miss it pick the marker up from /state.
	h.hub.Broadcast(ws.TopicGame, ws.WSMessage{
		Type: "reset",
		Data: state,
	})

	c.JSON(http.StatusOK, state)
}
