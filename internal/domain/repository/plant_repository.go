package repository

import (
	"context"

	"greengarden/internal/domain/entity"
)

// Unsubscribe cancels a live subscription. Calling it more than once is safe;
// no callbacks fire after it returns.
type Unsubscribe func()

type PlantRepository interface {
	Create(ctx context.Context, plant *entity.Plant) error
	GetByID(ctx context.Context, role entity.Role, ownerID, id string) (*entity.Plant, error)

	// ListShared returns the shared (admin) partition ordered by creation
	// time descending.
	ListShared(ctx context.Context, limit, offset int) ([]*entity.Plant, int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Plant, error)

	// Update merge-writes the patch; unspecified fields are untouched. The
	// storage location is re-derived from the plant's own role and owner.
	Update(ctx context.Context, plant *entity.Plant, patch entity.PlantPatch) error
	Delete(ctx context.Context, plant *entity.Plant) error

	// SetFavorite merge-writes {isFavorite, favoritesCount: 0|1}. The count
	// is set, not incremented: the app tracks a single viewer's state.
	SetFavorite(ctx context.Context, plant *entity.Plant, isFavorite bool) error

	// SubscribeAll and SubscribeByOwner deliver the full current result set
	// on every remote change until unsubscribed.
	SubscribeAll(ctx context.Context, onData func([]*entity.Plant), onError func(error)) Unsubscribe
	SubscribeByOwner(ctx context.Context, ownerID string, onData func([]*entity.Plant), onError func(error)) Unsubscribe
}
