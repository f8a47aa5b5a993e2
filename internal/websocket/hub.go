package websocket

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/websocket/v2"
)

// Client is one connected WebSocket subscriber.
type Client struct {
	Conn *websocket.Conn
	Mu   sync.Mutex
}

// Event is the payload broadcast on every task mutation.
type Event struct {
	Action string      `json:"action"`
	Task   interface{} `json:"task"`
}

// Hub fans task events out to connected clients.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte, 16),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Publish queues a task event for broadcast. Best-effort: a nil hub or
// a full queue drops the event.
func (h *Hub) Publish(action string, task interface{}) {
	if h == nil {
		return
	}
	msg, err := json.Marshal(Event{Action: action, Task: task})
	if err != nil {
		return
	}
	select {
	case h.Broadcast <- msg:
	default:
	}
}

// Run manages register, unregister and broadcast. Intended to run in
// its own goroutine for the lifetime of the process.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				client.Conn.Close()
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				client.Mu.Lock()
				err := client.Conn.WriteMessage(websocket.TextMessage, message)
				client.Mu.Unlock()
				if err != nil {
					delete(h.Clients, client)
					client.Conn.Close()
				}
			}
		}
	}
}
