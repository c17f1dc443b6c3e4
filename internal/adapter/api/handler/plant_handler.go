package handler

import (
	"github.com/labstack/echo/v4"

	"greengarden/internal/domain/entity"
	"greengarden/internal/usecase"
	"greengarden/pkg/response"
	"greengarden/pkg/utils"
)

type PlantHandler struct {
	plantUseCase *usecase.PlantUseCase
}

func NewPlantHandler(plantUseCase *usecase.PlantUseCase) *PlantHandler {
	return &PlantHandler{
		plantUseCase: plantUseCase,
	}
}

type createPlantRequest struct {
	PlantName   string   `json:"plant_name" validate:"required"`
	Description string   `json:"description"`
	CategoryIDs []string `json:"category_ids"`
	Images      []string `json:"images" validate:"required,min=1,dive,url"`
	Price       float64  `json:"price" validate:"omitempty,gte=0"`
	Stock       int      `json:"stock" validate:"omitempty,gte=0"`
}

type updatePlantRequest struct {
	PlantName   *string  `json:"plant_name"`
	Description *string  `json:"description"`
	CategoryIDs []string `json:"category_ids"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Visibility  *string  `json:"visibility" validate:"omitempty,oneof=public private pending"`
	Approved    *bool    `json:"approved"`
}

type favoriteRequest struct {
	IsFavorite bool `json:"is_favorite"`
}

func (r updatePlantRequest) toPatch() entity.PlantPatch {
	patch := entity.PlantPatch{
		PlantName:   r.PlantName,
		Description: r.Description,
		CategoryIDs: r.CategoryIDs,
		Images:      r.Images,
		Price:       r.Price,
		Stock:       r.Stock,
		Approved:    r.Approved,
	}
	if r.Visibility != nil {
		v := entity.Visibility(*r.Visibility)
		patch.Visibility = &v
	}
	return patch
}

// CreatePlant routes the new document by the caller's own role: admins author
// into the shared catalog, users into their private partition.
func (h *PlantHandler) CreatePlant(c echo.Context) error {
	var req createPlantRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actor := c.Get("user").(*entity.User)

	plant, err := h.plantUseCase.CreatePlant(c.Request().Context(), actor.ID, actor.Role, usecase.CreatePlantInput{
		PlantName:   req.PlantName,
		Description: req.Description,
		CategoryIDs: req.CategoryIDs,
		Images:      req.Images,
		Price:       req.Price,
		Stock:       req.Stock,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, plant)
}

func (h *PlantHandler) ListCatalog(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	plants, total, err := h.plantUseCase.ListCatalog(c.Request().Context(), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, plants, total, pagination.Page, pagination.PageSize)
}

func (h *PlantHandler) GetCatalogPlant(c echo.Context) error {
	plant, err := h.plantUseCase.GetPlant(c.Request().Context(), entity.RoleAdmin, "", c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, plant)
}

func (h *PlantHandler) ListMyPlants(c echo.Context) error {
	uid := c.Get("uid").(string)

	plants, err := h.plantUseCase.ListMyPlants(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, plants)
}

func (h *PlantHandler) UpdateMyPlant(c echo.Context) error {
	return h.update(c, entity.RoleUser, c.Get("uid").(string))
}

func (h *PlantHandler) DeleteMyPlant(c echo.Context) error {
	return h.delete(c, entity.RoleUser, c.Get("uid").(string))
}

func (h *PlantHandler) UpdateSharedPlant(c echo.Context) error {
	return h.update(c, entity.RoleAdmin, "")
}

func (h *PlantHandler) DeleteSharedPlant(c echo.Context) error {
	return h.delete(c, entity.RoleAdmin, "")
}

func (h *PlantHandler) update(c echo.Context, role entity.Role, ownerID string) error {
	var req updatePlantRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	actor := c.Get("user").(*entity.User)

	plant, err := h.plantUseCase.UpdatePlant(c.Request().Context(), actor, role, ownerID, c.Param("id"), req.toPatch())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, plant)
}

func (h *PlantHandler) delete(c echo.Context, role entity.Role, ownerID string) error {
	actor := c.Get("user").(*entity.User)

	if err := h.plantUseCase.DeletePlant(c.Request().Context(), actor, role, ownerID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

// FavoriteCatalogPlant toggles the caller's favorite state on a shared plant.
func (h *PlantHandler) FavoriteCatalogPlant(c echo.Context) error {
	return h.favorite(c, entity.RoleAdmin, "")
}

// FavoriteMyPlant toggles the favorite state on one of the caller's plants.
func (h *PlantHandler) FavoriteMyPlant(c echo.Context) error {
	return h.favorite(c, entity.RoleUser, c.Get("uid").(string))
}

func (h *PlantHandler) favorite(c echo.Context, role entity.Role, ownerID string) error {
	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	plant, err := h.plantUseCase.ToggleFavorite(c.Request().Context(), uid, role, ownerID, c.Param("id"), req.IsFavorite)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, plant)
}
