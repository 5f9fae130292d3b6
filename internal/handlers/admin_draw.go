package handlers

import (
	"net/http"

	"booth-rally-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DrawHandler struct {
	drawService *services.LuckyDrawService
}

func NewDrawHandler(drawService *services.LuckyDrawService) *DrawHandler {
	return &DrawHandler{drawService: drawService}
}

type DrawRequest struct {
	Count int `json:"count" example:"7"`
}

// Draw godoc
// @Summary      Run the lucky-winner selection
// @Description  Shuffles participants who completed the full minigame set, excluding the top five and the blacklist
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body DrawRequest false "Winner count (default 7)"
// @Success      200 {object} models.LuckyDraw
// @Router       /api/v1/admin/lucky-draw [post]
func (h *DrawHandler) Draw(c *gin.Context) {
	var req DrawRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	draw, err := h.drawService.Draw(req.Count, contextStaff(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draw)
}

// Latest godoc
// @Summary      Most recent lucky draw
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.LuckyDraw
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/lucky-draw [get]
func (h *DrawHandler) Latest(c *gin.Context) {
	draw, err := h.drawService.Latest()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, draw)
}
