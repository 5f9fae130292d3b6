package handlers

import (
	"net/http"

	"booth-rally-backend/internal/models"
	"booth-rally-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Handle    string `json:"handle" binding:"required" example:"@alice"`
	AccountID string `json:"account_id" binding:"required" example:"12345678"`
}

type LoginResponse struct {
	Token       string             `json:"token"`
	Participant models.Participant `json:"participant"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
	Staff    string `json:"staff" binding:"required,min=1,max=100" example:"booth1-staff"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

// Login godoc
// @Summary      Participant login
// @Description  Create the participant record if absent and issue a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, participant, err := h.authService.Login(req.Handle, req.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, Participant: *participant})
}

// AdminLogin godoc
// @Summary      Staff login
// @Description  Exchange the shared admin password for an 8-hour staff token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body AdminLoginRequest true "Admin credentials"
// @Success      200 {object} AdminLoginResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/auth/admin [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.authService.AdminLogin(req.Password, req.Staff)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, AdminLoginResponse{Token: token})
}
