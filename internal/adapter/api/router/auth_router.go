package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"greengarden/internal/adapter/api/handler"
	"greengarden/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Credential endpoints get a per-IP rate limit.
	limiter := middleware.NewRateLimiter(10, time.Minute)

	public := e.Group("/v1/auth")
	public.Use(limiter.RateLimitMiddleware())
	public.POST("/register", authHandler.Register)
	public.POST("/login", authHandler.Login)

	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)
	protected.POST("/logout", authHandler.Logout)
}
