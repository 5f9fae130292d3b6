package handlers

import (
	"net/http"

	"booth-rally-backend/internal/models"
	"booth-rally-backend/internal/services"
	"booth-rally-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	scanService  *services.ScanService
	tokenService *services.TokenService
	hub          *ws.Hub
}

func NewScanHandler(scanService *services.ScanService, tokenService *services.TokenService, hub *ws.Hub) *ScanHandler {
	return &ScanHandler{scanService: scanService, tokenService: tokenService, hub: hub}
}

type ScanRequest struct {
	Payload string `json:"payload" binding:"required" example:"{\"type\":\"booth\",\"boothId\":\"booth1\",\"version\":1}"`
}

type RedeemCodeRequest struct {
	Code string `json:"code" binding:"required,len=6" example:"123456"`
}

type ScanResponse struct {
	Allocation models.PendingAllocation `json:"allocation"`
	Created    bool                     `json:"created"`
}

// Scan godoc
// @Summary      Scan a booth QR code
// @Description  Decode a static booth payload and queue a pending allocation
// @Tags         scan
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ScanRequest true "Raw QR payload"
// @Success      200 {object} ScanResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/scan [post]
func (h *ScanHandler) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	alloc, created, err := h.scanService.Scan(contextHandle(c), req.Payload)
	if err != nil {
		respondError(c, err)
		return
	}

	h.notify(alloc, created)
	c.JSON(http.StatusOK, ScanResponse{Allocation: *alloc, Created: created})
}

// RedeemToken godoc
// @Summary      Redeem a dynamic QR token
// @Description  Consume a single-use token and queue a pending allocation
// @Tags         scan
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Token ID"
// @Success      200 {object} ScanResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/tokens/{id}/redeem [post]
func (h *ScanHandler) RedeemToken(c *gin.Context) {
	alloc, created, err := h.tokenService.Redeem(c.Param("id"), contextHandle(c))
	if err != nil {
		respondError(c, err)
		return
	}

	h.notify(alloc, created)
	c.JSON(http.StatusOK, ScanResponse{Allocation: *alloc, Created: created})
}

// RedeemCode godoc
// @Summary      Redeem a 6-digit simple code
// @Description  Resolve a manually typed code to its token and redeem it
// @Tags         scan
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RedeemCodeRequest true "Simple code"
// @Success      200 {object} ScanResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/codes/redeem [post]
func (h *ScanHandler) RedeemCode(c *gin.Context) {
	var req RedeemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	alloc, created, err := h.tokenService.RedeemCode(req.Code, contextHandle(c))
	if err != nil {
		respondError(c, err)
		return
	}

	h.notify(alloc, created)
	c.JSON(http.StatusOK, ScanResponse{Allocation: *alloc, Created: created})
}

func (h *ScanHandler) notify(alloc *models.PendingAllocation, created bool) {
	if !created {
		return
	}
	h.hub.Broadcast(ws.BoothTopic(alloc.BoothID), ws.WSMessage{
		Type: "allocation_created",
		Data: alloc,
	})
}
