package handler

import (
	"io"

	"github.com/labstack/echo/v4"

	"greengarden/internal/usecase"
	"greengarden/pkg/errors"
	"greengarden/pkg/logger"
	"greengarden/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type setUserStatusRequest struct {
	IsDisabled bool `json:"is_disabled"`
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

// UpdateProfile takes a multipart form: optional username and phone fields
// plus an optional "avatar" file part (JPEG).
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	input := usecase.UpdateProfileInput{}
	if username := c.FormValue("username"); username != "" {
		input.Username = &username
	}
	if phone := c.FormValue("phone"); phone != "" {
		input.Phone = &phone
	}

	var avatar io.Reader
	if file, err := c.FormFile("avatar"); err == nil {
		src, err := file.Open()
		if err != nil {
			return response.Error(c, errors.BadRequest("Unable to read avatar file", err))
		}
		defer src.Close()
		avatar = src
		logger.Debug("Avatar upload for user %s: %s (%d bytes)", uid, file.Filename, file.Size)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, input, avatar)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) RemoveAvatar(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.RemoveAvatar(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUseCase.ListUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, users)
}

func (h *UserHandler) SetUserStatus(c echo.Context) error {
	var req setUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.SetDisabled(c.Request().Context(), c.Param("id"), req.IsDisabled)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userUseCase.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
