package router

import (
	"github.com/labstack/echo/v4"

	"greengarden/internal/adapter/api/handler"
	"greengarden/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/v1/users")
	users.Use(authMiddleware.Authenticate)
	users.GET("/me", userHandler.GetProfile)
	users.PATCH("/me", userHandler.UpdateProfile)
	users.DELETE("/me/avatar", userHandler.RemoveAvatar)

	admin := e.Group("/v1/admin/users")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.GET("", userHandler.ListUsers)
	admin.PUT("/:id/status", userHandler.SetUserStatus)
	admin.DELETE("/:id", userHandler.DeleteUser)
}
