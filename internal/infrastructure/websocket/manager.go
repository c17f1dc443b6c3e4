package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"greengarden/pkg/logger"
)

// Client is one connected catalog-stream consumer.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// Manager fans full catalog snapshots out to every connected client. Each
// delivery carries the complete current result set, mirroring the repository
// subscription contract.
type Manager struct {
	clients      map[string]*Client
	Register     chan *Client
	Unregister   chan *Client
	Broadcast    chan []byte
	lastSnapshot []byte
	mutex        sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan []byte),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				last := m.lastSnapshot
				m.mutex.Unlock()
				logger.Debug("Catalog stream client registered: %s", client.ID)

				// New clients get the current catalog immediately.
				if last != nil {
					select {
					case client.Send <- last:
					default:
					}
				}

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Debug("Catalog stream client unregistered: %s", client.ID)

			case snapshot := <-m.Broadcast:
				m.mutex.Lock()
				m.lastSnapshot = snapshot
				for _, client := range m.clients {
					select {
					case client.Send <- snapshot:
					default:
						close(client.Send)
						delete(m.clients, client.ID)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// ReadPump drains (and discards) client messages until the connection closes;
// the stream is one-way.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Catalog stream read error: %v", err)
			}
			break
		}
	}
}

// WritePump sends snapshots to the client connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		snapshot, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, snapshot); err != nil {
			logger.Warn("Catalog stream write error: %v", err)
			return
		}
	}
}
