package handlers

import (
	"net/http"

	"booth-rally-backend/internal/services"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 512

type TokenHandler struct {
	tokenService *services.TokenService
}

func NewTokenHandler(tokenService *services.TokenService) *TokenHandler {
	return &TokenHandler{tokenService: tokenService}
}

type MintTokenRequest struct {
	BoothID string `json:"booth_id" binding:"required" example:"booth1"`
}

type MintTokenResponse struct {
	ID         string `json:"id"`
	BoothID    string `json:"booth_id"`
	SimpleCode string `json:"simple_code"`
	Link       string `json:"link"`
	ExpiresAt  string `json:"expires_at"`
}

// Mint godoc
// @Summary      Mint a dynamic QR token for a booth
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body MintTokenRequest true "Booth"
// @Success      200 {object} MintTokenResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/tokens [post]
func (h *TokenHandler) Mint(c *gin.Context) {
	var req MintTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.tokenService.Mint(req.BoothID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MintTokenResponse{
		ID:         token.ID,
		BoothID:    token.BoothID,
		SimpleCode: token.SimpleCode,
		Link:       h.tokenService.Link(token),
		ExpiresAt:  token.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// QRImage godoc
// @Summary      PNG QR code for a minted token
// @Tags         admin
// @Produce      png
// @Security     BearerAuth
// @Param        id path string true "Token ID"
// @Success      200 {string} binary "PNG image"
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/admin/tokens/{id}/qr.png [get]
func (h *TokenHandler) QRImage(c *gin.Context) {
	link := h.tokenService.LinkForID(c.Param("id"))
	png, err := qrcode.Encode(link, qrcode.Medium, qrSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to generate qr code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
