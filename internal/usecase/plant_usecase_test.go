package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"greengarden/internal/domain/entity"
	"greengarden/internal/domain/repository"
	"greengarden/pkg/errors"
)

// fakePlantRepository keeps plants in memory, keyed the same way the real
// store partitions them: one shared map for admin plants, one map per owner.
type fakePlantRepository struct {
	shared  map[string]*entity.Plant
	byOwner map[string]map[string]*entity.Plant
	writes  int
	nextID  int
}

func newFakePlantRepository() *fakePlantRepository {
	return &fakePlantRepository{
		shared:  make(map[string]*entity.Plant),
		byOwner: make(map[string]map[string]*entity.Plant),
	}
}

func (f *fakePlantRepository) partition(role entity.Role, ownerID string) map[string]*entity.Plant {
	if role == entity.RoleAdmin {
		return f.shared
	}
	if f.byOwner[ownerID] == nil {
		f.byOwner[ownerID] = make(map[string]*entity.Plant)
	}
	return f.byOwner[ownerID]
}

func (f *fakePlantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	f.writes++
	f.nextID++
	plant.ID = fmt.Sprintf("plant-%d", f.nextID)
	stored := *plant
	f.partition(plant.CreatedByRole, plant.CreatedBy)[plant.ID] = &stored
	return nil
}

func (f *fakePlantRepository) GetByID(ctx context.Context, role entity.Role, ownerID, id string) (*entity.Plant, error) {
	plant, ok := f.partition(role, ownerID)[id]
	if !ok {
		return nil, errors.NotFound("Plant", nil)
	}
	copied := *plant
	return &copied, nil
}

func (f *fakePlantRepository) ListShared(ctx context.Context, limit, offset int) ([]*entity.Plant, int64, error) {
	plants := make([]*entity.Plant, 0, len(f.shared))
	for _, plant := range f.shared {
		copied := *plant
		plants = append(plants, &copied)
	}
	return plants, int64(len(f.shared)), nil
}

func (f *fakePlantRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Plant, error) {
	plants := make([]*entity.Plant, 0, len(f.byOwner[ownerID]))
	for _, plant := range f.byOwner[ownerID] {
		copied := *plant
		plants = append(plants, &copied)
	}
	return plants, nil
}

func (f *fakePlantRepository) Update(ctx context.Context, plant *entity.Plant, patch entity.PlantPatch) error {
	f.writes++
	stored := f.partition(plant.CreatedByRole, plant.CreatedBy)[plant.ID]
	if patch.PlantName != nil {
		stored.PlantName = *patch.PlantName
	}
	if patch.Description != nil {
		stored.Description = *patch.Description
	}
	if patch.CategoryIDs != nil {
		stored.CategoryIDs = patch.CategoryIDs
	}
	if patch.Images != nil {
		stored.Images = patch.Images
	}
	if patch.Price != nil {
		stored.Price = *patch.Price
	}
	if patch.Stock != nil {
		stored.Stock = *patch.Stock
	}
	return nil
}

func (f *fakePlantRepository) Delete(ctx context.Context, plant *entity.Plant) error {
	f.writes++
	delete(f.partition(plant.CreatedByRole, plant.CreatedBy), plant.ID)
	return nil
}

func (f *fakePlantRepository) SetFavorite(ctx context.Context, plant *entity.Plant, isFavorite bool) error {
	f.writes++
	stored := f.partition(plant.CreatedByRole, plant.CreatedBy)[plant.ID]
	stored.IsFavorite = isFavorite
	if isFavorite {
		stored.FavoritesCount = 1
	} else {
		stored.FavoritesCount = 0
	}
	return nil
}

func (f *fakePlantRepository) SubscribeAll(ctx context.Context, onData func([]*entity.Plant), onError func(error)) repository.Unsubscribe {
	plants, _, _ := f.ListShared(ctx, 0, 0)
	onData(plants)
	return func() {}
}

func (f *fakePlantRepository) SubscribeByOwner(ctx context.Context, ownerID string, onData func([]*entity.Plant), onError func(error)) repository.Unsubscribe {
	plants, _ := f.ListByOwner(ctx, ownerID)
	onData(plants)
	return func() {}
}

func validInput() CreatePlantInput {
	return CreatePlantInput{
		PlantName: "Monstera Deliciosa",
		Images:    []string{"https://storage.googleapis.com/greengarden/monstera.jpg"},
		Price:     25.0,
		Stock:     3,
	}
}

func TestCreatePlantValidatesBeforeWriting(t *testing.T) {
	repo := newFakePlantRepository()
	uc := NewPlantUseCase(repo)
	ctx := context.Background()

	cases := []struct {
		name      string
		creatorID string
		input     CreatePlantInput
	}{
		{"missing creator", "", validInput()},
		{"empty name", "user-1", CreatePlantInput{PlantName: "", Images: []string{"https://example.com/a.jpg"}}},
		{"whitespace name", "user-1", CreatePlantInput{PlantName: "   ", Images: []string{"https://example.com/a.jpg"}}},
		{"no images", "user-1", CreatePlantInput{PlantName: "Fern"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plant, err := uc.CreatePlant(ctx, tc.creatorID, entity.RoleUser, tc.input)
			assert.Nil(t, plant)
			assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
			assert.Equal(t, 0, repo.writes, "no write should reach the store")
		})
	}
}

func TestCreatePlantAdminDefaults(t *testing.T) {
	repo := newFakePlantRepository()
	uc := NewPlantUseCase(repo)

	input := validInput()
	input.Description = "Large tropical plant"

	plant, err := uc.CreatePlant(context.Background(), "admin-1", entity.RoleAdmin, input)
	assert.NoError(t, err)
	assert.Equal(t, entity.VisibilityPublic, plant.Visibility)
	assert.True(t, plant.Approved)
	assert.Equal(t, "Large tropical plant", plant.Description)
	assert.Equal(t, 0, plant.FavoritesCount)
	assert.Contains(t, repo.shared, plant.ID)
	assert.Empty(t, repo.byOwner)
}

func TestCreatePlantUserDefaults(t *testing.T) {
	repo := newFakePlantRepository()
	uc := NewPlantUseCase(repo)

	plant, err := uc.CreatePlant(context.Background(), "user-1", entity.RoleUser, validInput())
	assert.NoError(t, err)
	assert.Equal(t, entity.VisibilityPrivate, plant.Visibility)
	assert.False(t, plant.Approved)
	assert.Equal(t, 0, plant.FavoritesCount)
	assert.Contains(t, repo.byOwner["user-1"], plant.ID)
	assert.Empty(t, repo.shared)
}

func TestUpdatePlantRejectsEmptyNameWithoutWriting(t *testing.T) {
	repo := newFakePlantRepository()
	uc := NewPlantUseCase(repo)
	ctx := context.Background()

	owner := &entity.User{ID: "user-1", Role: entity.RoleUser}
	plant, err := uc.CreatePlant(ctx, owner.ID, owner.Role, validInput())
	assert.NoError(t, err)

	writesBefore := repo.writes
	empty := "  "
	updated, err := uc.UpdatePlant(ctx, owner, owner.Role, owner.ID, plant.ID, entity.PlantPatch{PlantName: &empty})
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	assert.Equal(t, writesBefore, repo.writes)

	kept, err := uc.GetPlant(ctx, owner.Role, owner.ID, plant.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Monstera Deliciosa", kept.PlantName)
}

func TestUpdatePlantPartialPatch(t *testing.T) {
	repo := newFakePlantRepository()
	uc := NewPlantUseCase(repo)
	ctx := context.Background()

	owner := &entity.User{ID: "user-1", Role: entity.RoleUser}
	plant, err := uc.CreatePlant(ctx, owner.ID, owner.Role, validInput())
	assert.NoError(t, err)

	price := 30.0
	updated, err := uc.UpdatePlant(ctx, owner, owner.Role, owner.ID, plant.ID, entity.PlantPatch{Price: &price})
	assert.NoError(t, err)
	assert.Equal(t, 30.0, updated.Price)
	assert.Equal(t, "Monstera Deliciosa", updated.PlantName, "untouched fields survive the merge")
	assert.Equal(t, plant.Images, updated.Images)
}

func TestUpdatePlantForbiddenForOtherUser(t *testing.T) {
	repo := newFakePlantRepository()
	uc := NewPlantUseCase(repo)
	ctx := context.Background()

	plant, err := uc.CreatePlant(ctx, "user-1", entity.RoleUser, validInput())
	assert.NoError(t, err)

	intruder := &entity.User{ID: "user-2", Role: entity.RoleUser}
	name := "Stolen Monstera"
	_, err = uc.UpdatePlant(ctx, intruder, entity.RoleUser, "user-1", plant.ID, entity.PlantPatch{PlantName: &name})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = uc.DeletePlant(ctx, intruder, entity.RoleUser, "user-1", plant.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestAdminCanUpdateAnyPlant(t *testing.T) {
	repo := newFakePlantRepository()
	uc := NewPlantUseCase(repo)
	ctx := context.Background()

	plant, err := uc.CreatePlant(ctx, "user-1", entity.RoleUser, validInput())
	assert.NoError(t, err)

	admin := &entity.User{ID: "admin-1", Role: entity.RoleAdmin}
	name := "Monstera (curated)"
	updated, err := uc.UpdatePlant(ctx, admin, entity.RoleUser, "user-1", plant.ID, entity.PlantPatch{PlantName: &name})
	assert.NoError(t, err)
	assert.Equal(t, "Monstera (curated)", updated.PlantName)
}

func TestToggleFavoriteCountNeverExceedsOne(t *testing.T) {
	repo := newFakePlantRepository()
	uc := NewPlantUseCase(repo)
	ctx := context.Background()

	plant, err := uc.CreatePlant(ctx, "admin-1", entity.RoleAdmin, validInput())
	assert.NoError(t, err)

	favorited, err := uc.ToggleFavorite(ctx, "viewer-1", entity.RoleAdmin, "", plant.ID, true)
	assert.NoError(t, err)
	assert.True(t, favorited.IsFavorite)
	assert.Equal(t, 1, favorited.FavoritesCount)

	// Favoriting again does not increment; the count is written, not added.
	again, err := uc.ToggleFavorite(ctx, "viewer-1", entity.RoleAdmin, "", plant.ID, true)
	assert.NoError(t, err)
	assert.Equal(t, 1, again.FavoritesCount)

	cleared, err := uc.ToggleFavorite(ctx, "viewer-1", entity.RoleAdmin, "", plant.ID, false)
	assert.NoError(t, err)
	assert.False(t, cleared.IsFavorite)
	assert.Equal(t, 0, cleared.FavoritesCount)
}

func TestGetPlantNotFound(t *testing.T) {
	uc := NewPlantUseCase(newFakePlantRepository())

	_, err := uc.GetPlant(context.Background(), entity.RoleAdmin, "", "missing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
