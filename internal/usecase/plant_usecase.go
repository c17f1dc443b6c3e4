package usecase

import (
	"context"
	"strings"

	"greengarden/internal/domain/entity"
	"greengarden/internal/domain/repository"
	"greengarden/pkg/errors"
	"greengarden/pkg/logger"
)

type PlantUseCase struct {
	plantRepo repository.PlantRepository
}

func NewPlantUseCase(plantRepo repository.PlantRepository) *PlantUseCase {
	return &PlantUseCase{
		plantRepo: plantRepo,
	}
}

type CreatePlantInput struct {
	PlantName   string
	Description string
	CategoryIDs []string
	Images      []string
	Price       float64
	Stock       int
}

// CreatePlant validates before any I/O, then routes the document by the
// creator's role: admin plants go public and approved into the shared
// partition, user plants go private and unapproved into the owner's own.
func (uc *PlantUseCase) CreatePlant(ctx context.Context, creatorID string, role entity.Role, input CreatePlantInput) (*entity.Plant, error) {
	if creatorID == "" {
		return nil, errors.Validation("createdBy is required")
	}
	if strings.TrimSpace(input.PlantName) == "" {
		return nil, errors.Validation("plant name is required")
	}
	if len(input.Images) == 0 {
		return nil, errors.Validation("at least one image is required")
	}

	isAdmin := role == entity.RoleAdmin

	plant := &entity.Plant{
		PlantName:      input.PlantName,
		CategoryIDs:    input.CategoryIDs,
		Images:         input.Images,
		Price:          input.Price,
		Stock:          input.Stock,
		CreatedBy:      creatorID,
		CreatedByRole:  role,
		FavoritesCount: 0,
	}

	if isAdmin {
		plant.Description = input.Description
		plant.Visibility = entity.VisibilityPublic
		plant.Approved = true
	} else {
		plant.Visibility = entity.VisibilityPrivate
		plant.Approved = false
	}

	if err := uc.plantRepo.Create(ctx, plant); err != nil {
		return nil, err
	}

	return plant, nil
}

func (uc *PlantUseCase) GetPlant(ctx context.Context, role entity.Role, ownerID, id string) (*entity.Plant, error) {
	return uc.plantRepo.GetByID(ctx, role, ownerID, id)
}

func (uc *PlantUseCase) ListCatalog(ctx context.Context, limit, offset int) ([]*entity.Plant, int64, error) {
	return uc.plantRepo.ListShared(ctx, limit, offset)
}

func (uc *PlantUseCase) ListMyPlants(ctx context.Context, ownerID string) ([]*entity.Plant, error) {
	return uc.plantRepo.ListByOwner(ctx, ownerID)
}

// UpdatePlant re-validates required fields only when present in the patch.
// The actor must own the plant or hold the admin role.
func (uc *PlantUseCase) UpdatePlant(ctx context.Context, actor *entity.User, role entity.Role, ownerID, id string, patch entity.PlantPatch) (*entity.Plant, error) {
	if id == "" {
		return nil, errors.Validation("plant id is required")
	}
	if patch.PlantName != nil && strings.TrimSpace(*patch.PlantName) == "" {
		return nil, errors.Validation("plant name must not be empty")
	}
	if patch.Images != nil && len(patch.Images) == 0 {
		return nil, errors.Validation("at least one image is required")
	}

	plant, err := uc.plantRepo.GetByID(ctx, role, ownerID, id)
	if err != nil {
		return nil, err
	}

	if plant.CreatedBy != actor.ID && !actor.IsAdmin() {
		return nil, errors.Forbidden("You don't have permission to update this plant", nil)
	}

	if err := uc.plantRepo.Update(ctx, plant, patch); err != nil {
		return nil, err
	}

	return uc.plantRepo.GetByID(ctx, role, ownerID, id)
}

func (uc *PlantUseCase) DeletePlant(ctx context.Context, actor *entity.User, role entity.Role, ownerID, id string) error {
	plant, err := uc.plantRepo.GetByID(ctx, role, ownerID, id)
	if err != nil {
		return err
	}

	if plant.CreatedBy != actor.ID && !actor.IsAdmin() {
		return errors.Forbidden("You don't have permission to delete this plant", nil)
	}

	return uc.plantRepo.Delete(ctx, plant)
}

// ToggleFavorite sets the viewer-facing favorite state. Setting the same
// state twice is a no-op in effect: the count is 0 or 1, never higher.
func (uc *PlantUseCase) ToggleFavorite(ctx context.Context, viewerID string, role entity.Role, ownerID, id string, isFavorite bool) (*entity.Plant, error) {
	plant, err := uc.plantRepo.GetByID(ctx, role, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := uc.plantRepo.SetFavorite(ctx, plant, isFavorite); err != nil {
		return nil, err
	}
	logger.Debug("Favorite toggled: viewer=%s plant=%s favorite=%v", viewerID, id, isFavorite)

	return uc.plantRepo.GetByID(ctx, role, ownerID, id)
}

func (uc *PlantUseCase) SubscribeCatalog(ctx context.Context, onData func([]*entity.Plant), onError func(error)) repository.Unsubscribe {
	return uc.plantRepo.SubscribeAll(ctx, onData, onError)
}
