package handlers

import (
	"net/http"
	"strconv"

	"booth-rally-backend/internal/services"
	"booth-rally-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type AllocationHandler struct {
	allocationService  *services.AllocationService
	participantService *services.ParticipantService
	hub                *ws.Hub
}

func NewAllocationHandler(allocationService *services.AllocationService, participantService *services.ParticipantService, hub *ws.Hub) *AllocationHandler {
	return &AllocationHandler{
		allocationService:  allocationService,
		participantService: participantService,
		hub:                hub,
	}
}

type CompleteAllocationRequest struct {
	Points int `json:"points" binding:"required" example:"30"`
}

type SetScoreRequest struct {
	BoothID    string `json:"booth_id" binding:"required" example:"booth1"`
	MinigameID string `json:"minigame_id" binding:"required" example:"ring-toss"`
	Points     int    `json:"points" binding:"required" example:"30"`
}

// ListWaiting godoc
// @Summary      Waiting allocations for a booth
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Booth ID"
// @Success      200 {array} models.PendingAllocation
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/booths/{id}/allocations [get]
func (h *AllocationHandler) ListWaiting(c *gin.Context) {
	allocs, err := h.allocationService.ListWaiting(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, allocs)
}

// Complete godoc
// @Summary      Award points for a waiting allocation
// @Description  Writes the minigame score, recomputes the total and marks the allocation completed
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Allocation ID"
// @Param        request body CompleteAllocationRequest true "Points"
// @Success      200 {object} models.PendingAllocation
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/admin/allocations/{id}/complete [post]
func (h *AllocationHandler) Complete(c *gin.Context) {
	allocationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid allocation id"})
		return
	}

	var req CompleteAllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	alloc, participant, err := h.allocationService.Complete(uint(allocationID), req.Points, contextStaff(c))
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(ws.BoothTopic(alloc.BoothID), ws.WSMessage{
		Type: "allocation_completed",
		Data: alloc,
	})
	h.hub.Broadcast(ws.TopicLeaderboard, ws.WSMessage{
		Type: "score_changed",
		Data: gin.H{"handle": participant.Handle, "total_score": participant.TotalScore},
	})

	c.JSON(http.StatusOK, alloc)
}

// Cancel godoc
// @Summary      Cancel a waiting allocation
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Allocation ID"
// @Success      200 {object} models.PendingAllocation
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/admin/allocations/{id}/cancel [post]
func (h *AllocationHandler) Cancel(c *gin.Context) {
	allocationID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid allocation id"})
		return
	}

	alloc, err := h.allocationService.Cancel(uint(allocationID), contextStaff(c))
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(ws.BoothTopic(alloc.BoothID), ws.WSMessage{
		Type: "allocation_cancelled",
		Data: alloc,
	})

	c.JSON(http.StatusOK, alloc)
}

// SetScore godoc
// @Summary      Directly edit a participant's minigame score
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        handle path string true "Participant handle"
// @Param        request body SetScoreRequest true "Score"
// @Success      200 {object} models.Participant
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/participants/{handle}/scores [put]
func (h *AllocationHandler) SetScore(c *gin.Context) {
	var req SetScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	participant, err := h.allocationService.SetScore(
		c.Param("handle"), req.BoothID, req.MinigameID, req.Points, contextStaff(c))
	if err != nil {
		respondError(c, err)
		return
	}

	h.hub.Broadcast(ws.TopicLeaderboard, ws.WSMessage{
		Type: "score_changed",
		Data: gin.H{"handle": participant.Handle, "total_score": participant.TotalScore},
	})

	c.JSON(http.StatusOK, participant)
}

// Roster godoc
// @Summary      All participants with scores and claims
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} models.Participant
// @Router       /api/v1/admin/participants [get]
func (h *AllocationHandler) Roster(c *gin.Context) {
	participants, err := h.participantService.Roster()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}
