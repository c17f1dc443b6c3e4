package router

import (
	"github.com/labstack/echo/v4"

	"greengarden/internal/adapter/api/handler"
	"greengarden/internal/adapter/api/middleware"
)

func SetupPlantRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	plantHandler := handler.GetPlantHandler()

	// Public catalog (shared partition)
	e.GET("/v1/plants", plantHandler.ListCatalog)
	e.GET("/v1/plants/:id", plantHandler.GetCatalogPlant)

	catalog := e.Group("/v1/plants")
	catalog.Use(authMiddleware.Authenticate)
	catalog.POST("/:id/favorite", plantHandler.FavoriteCatalogPlant)

	// The caller's own partition
	myPlants := e.Group("/v1/my-plants")
	myPlants.Use(authMiddleware.Authenticate)
	myPlants.GET("", plantHandler.ListMyPlants)
	myPlants.POST("", plantHandler.CreatePlant)
	myPlants.PUT("/:id", plantHandler.UpdateMyPlant)
	myPlants.DELETE("/:id", plantHandler.DeleteMyPlant)
	myPlants.POST("/:id/favorite", plantHandler.FavoriteMyPlant)

	// Shared-partition authoring
	admin := e.Group("/v1/admin/plants")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)
	admin.POST("", plantHandler.CreatePlant)
	admin.PUT("/:id", plantHandler.UpdateSharedPlant)
	admin.DELETE("/:id", plantHandler.DeleteSharedPlant)
}
