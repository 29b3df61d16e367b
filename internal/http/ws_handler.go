package http

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"lendingapi/internal/push"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades GET /ws?username= connections and subscribes them to
// that borrower's lending events.
type WSHandler struct {
	hub *push.Hub
}

func NewWSHandler(hub *push.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

func (h *WSHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "username query parameter is required", nil)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: username=%s error=%v", username, err)
		return
	}

	client := &push.Client{Username: username, Conn: conn, Send: make(chan []byte, 16)}
	h.hub.Register(client)

	go h.writeLoop(client)
	go h.readLoop(client)
}

func (h *WSHandler) writeLoop(c *push.Client) {
	for payload := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			break
		}
	}
	_ = c.Conn.Close()
}

// readLoop drains the connection; the first read error unregisters the
// client.
func (h *WSHandler) readLoop(c *push.Client) {
	defer h.hub.Unregister(c)
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
