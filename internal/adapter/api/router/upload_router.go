package router

import (
	"github.com/labstack/echo/v4"

	"greengarden/internal/adapter/api/handler"
	"greengarden/internal/adapter/api/middleware"
)

func SetupUploadRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	uploadHandler := handler.GetUploadHandler()

	uploads := e.Group("/v1/uploads")
	uploads.Use(authMiddleware.Authenticate)
	uploads.POST("/plant-images", uploadHandler.UploadPlantImage)
}
