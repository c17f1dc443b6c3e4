package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"

	"greengarden/internal/domain/repository"
)

type AuthMiddleware struct {
	authClient *auth.Client
	userRepo   repository.UserRepository
}

func NewAuthMiddleware(authClient *auth.Client, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authClient: authClient,
		userRepo:   userRepo,
	}
}

// Authenticate verifies the Bearer ID token and loads the caller's profile.
// Disabled accounts are rejected here, which is what forces a disabled user
// out on their next request.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		token, err := m.authClient.VerifyIDToken(c.Request().Context(), parts[1])
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), token.UID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load user profile")
		}
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "No profile for this account")
		}
		if user.IsDisabled {
			return echo.NewHTTPError(http.StatusUnauthorized, "Account is disabled")
		}

		c.Set("uid", token.UID)
		c.Set("user", user)

		return next(c)
	}
}
