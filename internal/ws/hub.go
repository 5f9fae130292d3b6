package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Well-known topics. Booth queues get their own topic per booth.
const (
	TopicGame        = "game"
	TopicLeaderboard = "leaderboard"
)

func BoothTopic(boothID string) string {
	return "booth:" + boothID
}

// Hub fans WSMessages out to every connection subscribed to a topic.
type Hub struct {
	mu     sync.RWMutex
	topics map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		topics: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.topics[topic] == nil {
		h.topics[topic] = make(map[*websocket.Conn]bool)
	}
	h.topics[topic][conn] = true
	log.Printf("ws: client subscribed to %s (total: %d)", topic, len(h.topics[topic]))
}

func (h *Hub) RemoveConnection(topic string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.topics[topic]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.topics, topic)
		}
		log.Printf("ws: client left %s", topic)
	}
}

// Broadcast holds the write lock for the whole fan-out: gorilla connections
// do not support concurrent writers, and pruning failed conns mutates the
// topic map.
func (h *Hub) Broadcast(topic string, message WSMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.topics[topic]
	if !ok {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
	if len(conns) == 0 {
		delete(h.topics, topic)
	}
}
