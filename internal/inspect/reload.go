package inspect

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeReload ReloadMessageType = "reload"
	ReloadTypeError  ReloadMessageType = "error"
)

// ReloadMessage is sent to connected clients when the route table changes.
type ReloadMessage struct {
	Type        ReloadMessageType `json:"type"`
	Fingerprint string            `json:"fingerprint,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// ReloadServer manages WebSocket connections for table-change
// notifications.
type ReloadServer struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewReloadServer creates a new reload server.
func NewReloadServer() *ReloadServer {
	return &ReloadServer{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // local debug tool
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (r *ReloadServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	r.mu.Lock()
	r.clients[conn] = true
	r.mu.Unlock()

	// Keep the connection alive until the client disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	r.mu.Lock()
	delete(r.clients, conn)
	r.mu.Unlock()
	_ = conn.Close()
}

// BroadcastReload notifies all clients that a new table was published.
func (r *ReloadServer) BroadcastReload(fingerprint uint64) {
	r.broadcast(ReloadMessage{
		Type:        ReloadTypeReload,
		Fingerprint: fmt.Sprintf("%016x", fingerprint),
	})
}

// BroadcastError notifies all clients that a rebuild failed.
func (r *ReloadServer) BroadcastError(msg string) {
	r.broadcast(ReloadMessage{Type: ReloadTypeError, Error: msg})
}

func (r *ReloadServer) broadcast(msg ReloadMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for conn := range r.clients {
		_ = conn.WriteMessage(websocket.TextMessage, payload)
	}
}
