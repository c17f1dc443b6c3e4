package repository

import (
	"context"

	"greengarden/internal/domain/entity"
)

type CategoryRepository interface {
	Add(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)

	// List returns all categories ordered by creation time descending.
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, id string, patch entity.CategoryPatch) error

	// Delete does not cascade to plants referencing the category.
	Delete(ctx context.Context, id string) error

	Subscribe(ctx context.Context, onData func([]*entity.Category), onError func(error)) Unsubscribe
}
