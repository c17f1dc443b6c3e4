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

type fakeCategoryRepository struct {
	categories map[string]*entity.Category
	nextID     int
}

func newFakeCategoryRepository() *fakeCategoryRepository {
	return &fakeCategoryRepository{categories: make(map[string]*entity.Category)}
}

func (f *fakeCategoryRepository) Add(ctx context.Context, category *entity.Category) error {
	f.nextID++
	category.ID = fmt.Sprintf("category-%d", f.nextID)
	stored := *category
	f.categories[category.ID] = &stored
	return nil
}

func (f *fakeCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	copied := *category
	return &copied, nil
}

func (f *fakeCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	categories := make([]*entity.Category, 0, len(f.categories))
	for _, category := range f.categories {
		copied := *category
		categories = append(categories, &copied)
	}
	return categories, nil
}

func (f *fakeCategoryRepository) Update(ctx context.Context, id string, patch entity.CategoryPatch) error {
	stored, ok := f.categories[id]
	if !ok {
		return errors.NotFound("Category", nil)
	}
	if patch.Name != nil {
		stored.Name = *patch.Name
	}
	if patch.Slug != nil {
		stored.Slug = *patch.Slug
	}
	if patch.Description != nil {
		stored.Description = *patch.Description
	}
	return nil
}

func (f *fakeCategoryRepository) Delete(ctx context.Context, id string) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepository) Subscribe(ctx context.Context, onData func([]*entity.Category), onError func(error)) repository.Unsubscribe {
	categories, _ := f.List(ctx)
	onData(categories)
	return func() {}
}

func TestCreateCategoryRequiresName(t *testing.T) {
	repo := newFakeCategoryRepository()
	uc := NewCategoryUseCase(repo)

	for _, name := range []string{"", "   "} {
		category, err := uc.CreateCategory(context.Background(), "admin-1", CreateCategoryInput{Name: name})
		assert.Nil(t, category)
		assert.True(t, errors.Is(err, "VALIDATION_ERROR"))
	}
	assert.Empty(t, repo.categories)
}

func TestCreateAndGetCategory(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepository())
	ctx := context.Background()

	created, err := uc.CreateCategory(ctx, "admin-1", CreateCategoryInput{
		Name: "Succulents",
		Slug: "succulents",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "admin-1", created.CreatedBy)

	got, err := uc.GetCategory(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Succulents", got.Name)
}

func TestUpdateCategoryRejectsEmptyName(t *testing.T) {
	repo := newFakeCategoryRepository()
	uc := NewCategoryUseCase(repo)
	ctx := context.Background()

	created, err := uc.CreateCategory(ctx, "admin-1", CreateCategoryInput{Name: "Ferns"})
	assert.NoError(t, err)

	empty := " "
	_, err = uc.UpdateCategory(ctx, created.ID, entity.CategoryPatch{Name: &empty})
	assert.True(t, errors.Is(err, "VALIDATION_ERROR"))

	kept, err := uc.GetCategory(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ferns", kept.Name)
}

func TestUpdateCategoryPartialPatch(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepository())
	ctx := context.Background()

	created, err := uc.CreateCategory(ctx, "admin-1", CreateCategoryInput{Name: "Ferns", Slug: "ferns"})
	assert.NoError(t, err)

	description := "Shade-loving plants"
	updated, err := uc.UpdateCategory(ctx, created.ID, entity.CategoryPatch{Description: &description})
	assert.NoError(t, err)
	assert.Equal(t, "Ferns", updated.Name)
	assert.Equal(t, "ferns", updated.Slug)
	assert.Equal(t, "Shade-loving plants", updated.Description)
}

func TestSubscribeCategoriesDeliversCurrentSet(t *testing.T) {
	uc := NewCategoryUseCase(newFakeCategoryRepository())
	ctx := context.Background()

	created, err := uc.CreateCategory(ctx, "admin-1", CreateCategoryInput{Name: "Herbs"})
	assert.NoError(t, err)

	var received []*entity.Category
	unsubscribe := uc.SubscribeCategories(ctx,
		func(categories []*entity.Category) { received = categories },
		func(err error) { t.Errorf("unexpected subscription error: %v", err) },
	)
	defer unsubscribe()

	assert.Len(t, received, 1)
	assert.Equal(t, created.ID, received[0].ID)
}

// Deleting a category leaves plants that reference it untouched; the dangling
// ID stays on the plant document.
func TestDeleteCategoryDoesNotCascade(t *testing.T) {
	categoryRepo := newFakeCategoryRepository()
	categoryUC := NewCategoryUseCase(categoryRepo)
	plantRepo := newFakePlantRepository()
	plantUC := NewPlantUseCase(plantRepo)
	ctx := context.Background()

	category, err := categoryUC.CreateCategory(ctx, "admin-1", CreateCategoryInput{Name: "Cacti"})
	assert.NoError(t, err)

	input := validInput()
	input.CategoryIDs = []string{category.ID}
	plant, err := plantUC.CreatePlant(ctx, "admin-1", entity.RoleAdmin, input)
	assert.NoError(t, err)

	assert.NoError(t, categoryUC.DeleteCategory(ctx, category.ID))

	_, err = categoryUC.GetCategory(ctx, category.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	kept, err := plantUC.GetPlant(ctx, entity.RoleAdmin, "", plant.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{category.ID}, kept.CategoryIDs)
}
