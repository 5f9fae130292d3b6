package handlers

import (
	"log"
	"net/http"

	"booth-rally-backend/internal/catalog"
	"booth-rally-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleGame godoc
// @Summary      WebSocket for game status and reset broadcasts
// @Tags         websocket
// @Router       /ws/game [get]
func (h *WSHandler) HandleGame(c *gin.Context) {
	h.serve(c, ws.TopicGame)
}

// HandleLeaderboard godoc
// @Summary      WebSocket for score changes
// @Tags         websocket
// @Router       /ws/leaderboard [get]
func (h *WSHandler) HandleLeaderboard(c *gin.Context) {
	h.serve(c, ws.TopicLeaderboard)
}

// HandleBooth godoc
// @Summary      WebSocket for one booth's pending-allocation queue
// @Tags         websocket
// @Param        id path string true "Booth ID"
// @Router       /ws/booth/{id} [get]
func (h *WSHandler) HandleBooth(c *gin.Context) {
	boothID := c.Param("id")
	if _, ok := catalog.BoothByID(boothID); !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown booth"})
		return
	}
	h.serve(c, ws.BoothTopic(boothID))
}

func (h *WSHandler) serve(c *gin.Context, topic string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(topic, conn)
	defer h.hub.RemoveConnection(topic, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
