package ws

import (
	"encoding/json"
	"log"
	"sync"

	"emojitrivia/internal/game"
)

// Game is the hub's view of the session core: connection lifecycle plus
// decoded inbound events.
type Game interface {
	Connect(connID string)
	Disconnect(connID string)
	Handle(connID string, ev game.Inbound)
}

// Hub manages WebSocket connections for the single shared session and
// implements game.Sender.
type Hub struct {
	conns map[string]*Connection
	mu    sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	outbound   chan *outMessage

	game Game
}

// Connection represents one WebSocket client.
type Connection struct {
	ID   string
	Send chan []byte
	Hub  *Hub
}

// outMessage is a queued send: to one connection, to all, or to all except
// one.
type outMessage struct {
	to     string // non-empty: unicast target
	except string // non-empty: broadcast excluding this id
	data   []byte
}

// NewHub creates the hub and starts its coordination loop.
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]*Connection),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		outbound:   make(chan *outMessage, 256),
	}
	go h.run()
	return h
}

// SetGame injects the session core. Must be called before any connection is
// accepted.
func (h *Hub) SetGame(g Game) {
	h.game = g
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn.ID] = conn
			h.mu.Unlock()
			log.Printf("Client connected: %s", conn.ID)
			h.game.Connect(conn.ID)

		case conn := <-h.unregister:
			h.mu.Lock()
			existing, ok := h.conns[conn.ID]
			if ok && existing == conn {
				delete(h.conns, conn.ID)
				close(conn.Send)
			}
			h.mu.Unlock()
			if ok {
				log.Printf("Client disconnected: %s", conn.ID)
				h.game.Disconnect(conn.ID)
			}

		case msg := <-h.outbound:
			h.mu.RLock()
			if msg.to != "" {
				if conn, ok := h.conns[msg.to]; ok {
					h.deliver(conn, msg.data)
				}
			} else {
				for id, conn := range h.conns {
					if id == msg.except {
						continue
					}
					h.deliver(conn, msg.data)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// deliver queues data for one connection. A full buffer drops the message
// for that recipient only; the rest of the fan-out proceeds.
func (h *Hub) deliver(conn *Connection, data []byte) {
	select {
	case conn.Send <- data:
	default:
		log.Printf("Send buffer full, dropping message for %s", conn.ID)
	}
}

// Register adds a connection.
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection.
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// SendTo sends a message to one connection (implements game.Sender).
func (h *Hub) SendTo(connID string, msgType string, payload interface{}) {
	h.outbound <- &outMessage{to: connID, data: encode(msgType, payload)}
}

// Broadcast sends a message to every connection (implements game.Sender).
func (h *Hub) Broadcast(msgType string, payload interface{}) {
	h.outbound <- &outMessage{data: encode(msgType, payload)}
}

// BroadcastExcept sends a message to every connection but one (implements
// game.Sender).
func (h *Hub) BroadcastExcept(connID string, msgType string, payload interface{}) {
	h.outbound <- &outMessage{except: connID, data: encode(msgType, payload)}
}

func encode(msgType string, payload interface{}) []byte {
	body, _ := json.Marshal(payload)
	data, _ := json.Marshal(&Message{Type: MessageType(msgType), Payload: body})
	return data
}
