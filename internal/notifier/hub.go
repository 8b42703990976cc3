package notifier

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"CozyFishing/internal/model"

	"github.com/gorilla/websocket"
)

const (
	writeWait    = 5 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	clientQueue  = 64
)

// Op is a client request received over the websocket.
type Op struct {
	Op      string   `json:"op"`
	Depth   *float64 `json:"depth,omitempty"`
	Zone    string   `json:"zone,omitempty"`
	Dir     string   `json:"dir,omitempty"`
	Bait    string   `json:"bait,omitempty"`
	Upgrade string   `json:"upgrade,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// Dispatcher applies client ops to the game. Dispatch returns a reply line
// for the requesting client, or "" when the op only produces events.
type Dispatcher interface {
	Dispatch(op Op) string
	State() any
}

type eventMessage struct {
	model.Event
	Text string `json:"text"`
}

type textMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type stateMessage struct {
	Type  string `json:"type"`
	State any    `json:"state"`
}

type client struct {
	out chan []byte
}

// Hub fans engine events out to every connected websocket client.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 16 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // local UI
		},
	}
}

// Publish implements model.Sink.
func (h *Hub) Publish(ev model.Event) {
	h.broadcast(eventMessage{Event: ev, Text: FormatEvent(ev)})
}

// Notice sends a free-form line to every client.
func (h *Hub) Notice(text string) {
	h.broadcast(textMessage{Type: "notice", Text: text})
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) broadcast(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[ERROR] encode broadcast: %v", err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.out <- b:
		default:
			log.Println("[WARN] websocket client too slow, dropping message")
		}
	}
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// Handler upgrades requests to websockets and routes ops to d.
func (h *Hub) Handler(d Dispatcher) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			log.Printf("[WARN] websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		c := &client{out: make(chan []byte, clientQueue)}
		h.add(c)
		defer h.remove(c)
		log.Printf("[INFO] websocket client connected: %s", r.RemoteAddr)

		send := func(v any) {
			b, err := json.Marshal(v)
			if err != nil {
				log.Printf("[ERROR] encode reply: %v", err)
				return
			}
			select {
			case c.out <- b:
			default:
				log.Println("[WARN] websocket client too slow, dropping reply")
			}
		}
		send(stateMessage{Type: "state", State: d.State()})

		done := make(chan struct{})
		defer close(done)

		// Writer goroutine with ping keepalive.
		go func() {
			ticker := time.NewTicker(pingInterval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case b := <-c.out:
					_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						conn.Close()
						return
					}
				case <-ticker.C:
					_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
					if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
						conn.Close()
						return
					}
				}
			}
		}()

		// Reader loop.
		conn.SetReadLimit(64 * 1024)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			var op Op
			if err := json.Unmarshal(msg, &op); err != nil || op.Op == "" {
				send(textMessage{Type: "error", Text: "malformed op"})
				continue
			}
			if op.Op == "state" {
				send(stateMessage{Type: "state", State: d.State()})
				continue
			}
			if reply := d.Dispatch(op); reply != "" {
				send(textMessage{Type: "reply", Text: reply})
			}
		}
		log.Printf("[INFO] websocket client left: %s", r.RemoteAddr)
	}
}
