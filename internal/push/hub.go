// Package push relays lending events to connected borrowers over
// websockets, so clients refresh on demand instead of polling.
package push

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is one open websocket subscription for a username.
type Client struct {
	Username string
	Conn     *websocket.Conn
	Send     chan []byte
}

// Hub fans lending events out to the sockets subscribed per username.
// The core never touches the hub; handlers publish after a successful
// borrow or return.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	events     chan event
}

type event struct {
	username string
	payload  []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		events:     make(chan event, 64),
	}
}

// Run pumps registrations and events until the channels close. Start it
// once, in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			set, ok := h.clients[client.Username]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.Username] = set
			}
			set[client] = struct{}{}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if set, ok := h.clients[client.Username]; ok {
				if _, present := set[client]; present {
					delete(set, client)
					close(client.Send)
					if len(set) == 0 {
						delete(h.clients, client.Username)
					}
				}
			}
			h.mu.Unlock()

		case ev := <-h.events:
			h.mu.Lock()
			for client := range h.clients[ev.username] {
				select {
				case client.Send <- ev.payload:
				default:
					// Slow consumer: drop the socket rather than block the hub.
					delete(h.clients[ev.username], client)
					close(client.Send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Register announces a new subscription to the hub.
func (h *Hub) Register(c *Client) { h.register <- c }

// Unregister removes a subscription and closes its send channel.
func (h *Hub) Unregister(c *Client) { h.unregister <- c }

// Notify queues payload for every socket subscribed as username.
// Safe to call on a nil hub; the event is simply dropped.
func (h *Hub) Notify(username string, payload []byte) {
	if h == nil {
		return
	}
	h.events <- event{username: username, payload: payload}
}
