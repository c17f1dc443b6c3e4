package router

import (
	"github.com/labstack/echo/v4"

	"greengarden/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	e.GET("/v1/ws/catalog", wsHandler.StreamCatalog)
	e.GET("/v1/ws/categories", wsHandler.StreamCategories)
}
