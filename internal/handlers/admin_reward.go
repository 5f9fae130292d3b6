package handlers

import (
	"net/http"
	"strconv"

	"booth-rally-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type RewardHandler struct {
	rewardService *services.RewardService
}

func NewRewardHandler(rewardService *services.RewardService) *RewardHandler {
	return &RewardHandler{rewardService: rewardService}
}

type ClaimRewardRequest struct {
	TierID int `json:"tier_id" binding:"required,min=1" example:"2"`
}

// Status godoc
// @Summary      Reward eligibility for a participant
// @Description  Completed-minigame count plus per-tier eligible/claimed flags
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        handle path string true "Participant handle"
// @Success      200 {object} services.RewardStatus
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/participants/{handle}/rewards [get]
func (h *RewardHandler) Status(c *gin.Context) {
	status, err := h.rewardService.Status(c.Param("handle"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Claim godoc
// @Summary      Claim a reward tier
// @Description  Claiming replaces any previously claimed tier
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        handle path string true "Participant handle"
// @Param        request body ClaimRewardRequest true "Tier"
// @Success      200 {object} services.RewardStatus
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/admin/participants/{handle}/rewards [post]
func (h *RewardHandler) Claim(c *gin.Context) {
	var req ClaimRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	status, err := h.rewardService.Claim(c.Param("handle"), req.TierID, contextStaff(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Unclaim godoc
// @Summary      Revert a claimed reward tier
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        handle path string true "Participant handle"
// @Param        tier_id path int true "Tier ID"
// @Success      200 {object} services.RewardStatus
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/participants/{handle}/rewards/{tier_id} [delete]
func (h *RewardHandler) Unclaim(c *gin.Context) {
	tierID, err := strconv.Atoi(c.Param("tier_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tier id"})
		return
	}

	status, err := h.rewardService.Unclaim(c.Param("handle"), tierID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
