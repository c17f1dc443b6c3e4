package repository

import (
	"context"

	"greengarden/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error

	// GetByID returns (nil, nil) when no profile document exists.
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, id string, patch entity.UserPatch) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.User, error)
}
