package usecase

import (
	"context"
	"strings"

	"greengarden/internal/domain/entity"
	"greengarden/internal/domain/repository"
	"greengarden/pkg/errors"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

type CreateCategoryInput struct {
	Name        string
	Slug        string
	Description string
}

func (uc *CategoryUseCase) CreateCategory(ctx context.Context, creatorID string, input CreateCategoryInput) (*entity.Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.Validation("category name is required")
	}

	category := &entity.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		CreatedBy:   creatorID,
	}

	if err := uc.categoryRepo.Add(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (uc *CategoryUseCase) GetCategory(ctx context.Context, id string) (*entity.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.List(ctx)
}

func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, id string, patch entity.CategoryPatch) (*entity.Category, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, errors.Validation("category name must not be empty")
	}

	if err := uc.categoryRepo.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	return uc.categoryRepo.GetByID(ctx, id)
}

// DeleteCategory removes the category only; plants referencing it keep the
// dangling ID.
func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	return uc.categoryRepo.Delete(ctx, id)
}

func (uc *CategoryUseCase) SubscribeCategories(ctx context.Context, onData func([]*entity.Category), onError func(error)) repository.Unsubscribe {
	return uc.categoryRepo.Subscribe(ctx, onData, onError)
}
