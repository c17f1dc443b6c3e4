package handler

import (
	"net/http"

	gorilla "github.com/gorilla/websocket"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"greengarden/internal/infrastructure/websocket"
	"greengarden/pkg/logger"
)

type WebSocketHandler struct {
	catalogManager  *websocket.Manager
	categoryManager *websocket.Manager
	upgrader        gorilla.Upgrader
}

func NewWebSocketHandler(catalogManager, categoryManager *websocket.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		catalogManager:  catalogManager,
		categoryManager: categoryManager,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// StreamCatalog upgrades the connection and attaches it to the catalog
// stream. Every catalog change delivers the full current plant list.
func (h *WebSocketHandler) StreamCatalog(c echo.Context) error {
	return h.stream(c, h.catalogManager)
}

// StreamCategories delivers the full category list on every change.
func (h *WebSocketHandler) StreamCategories(c echo.Context) error {
	return h.stream(c, h.categoryManager)
}

func (h *WebSocketHandler) stream(c echo.Context, manager *websocket.Manager) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Error("WebSocket upgrade failed: %v", err)
		return err
	}

	client := &websocket.Client{
		ID:   uuid.New().String(),
		Conn: conn,
		Send: make(chan []byte, 8),
	}

	manager.Register <- client

	go client.WritePump()
	go client.ReadPump(manager)

	return nil
}
