// Package watch pushes reload notifications to preview clients whenever the
// generated assets change on disk.
package watch

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Possible event types sent to clients.
const (
	EventReload = "reload"
)

// Event is a notification pushed to connected clients.
type Event struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
}

// Client is a websocket connected preview client.
type Client struct {
	mutex *sync.Mutex
	conn  *websocket.Conn
}

// Hub tracks connected preview clients.
type Hub struct {
	clientsMutex *sync.Mutex
	clients      []*Client
}

// NewHub returns a new Hub.
func NewHub() *Hub {
	return &Hub{
		clientsMutex: new(sync.Mutex),
	}
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(evt Event) {
	h.clientsMutex.Lock()
	clientCopy := make([]*Client, len(h.clients))
	copy(clientCopy, h.clients)
	h.clientsMutex.Unlock()

	for _, client := range clientCopy {
		client.mutex.Lock()
		client.conn.WriteJSON(evt)
		client.mutex.Unlock()
	}
}

// HandleConn registers a client connection and blocks until it disconnects.
func (h *Hub) HandleConn(conn *websocket.Conn) {
	h.clientsMutex.Lock()
	client := &Client{
		mutex: new(sync.Mutex),
		conn:  conn,
	}
	h.clients = append(h.clients, client)
	h.clientsMutex.Unlock()

	defer func() {
		h.clientsMutex.Lock()
		defer h.clientsMutex.Unlock()

		for i, c := range h.clients {
			if c == client {
				h.clients = append(h.clients[:i], h.clients[i+1:]...)
				return
			}
		}
	}()

	for {
		// Clients only listen; drain until the connection drops.
		if _, _, err := client.conn.ReadMessage(); err != nil {
			log.Println("client disconnected:", err)
			return
		}
	}
}

// Watcher polls a file's modification time and reports changes.
type Watcher struct {
	Path     string
	Interval time.Duration
}

// Run polls until the context is canceled, calling onChange whenever the
// watched file appears or its modification time moves. The file not existing
// yet is not an error; generation may simply not have run.
func (w *Watcher) Run(ctx context.Context, onChange func()) {
	interval := w.Interval
	if interval <= 0 {
		interval = time.Second
	}

	var lastMod time.Time
	if info, err := os.Stat(w.Path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(w.Path)
			if err != nil {
				continue
			}
			if info.ModTime().After(lastMod) {
				lastMod = info.ModTime()
				onChange()
			}
		}
	}
}
