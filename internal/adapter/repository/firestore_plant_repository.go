package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"greengarden/internal/domain/entity"
	"greengarden/internal/domain/repository"
	"greengarden/pkg/errors"
)

type firestorePlantRepository struct {
	client *firestore.Client
}

func NewFirestorePlantRepository(client *firestore.Client) repository.PlantRepository {
	return &firestorePlantRepository{
		client: client,
	}
}

func (r *firestorePlantRepository) collectionFor(plant *entity.Plant) *firestore.CollectionRef {
	return r.client.Collection(PlantCollectionPath(plant.CreatedByRole, plant.CreatedBy))
}

func (r *firestorePlantRepository) Create(ctx context.Context, plant *entity.Plant) error {
	coll := r.collectionFor(plant)

	// Generate ID if not provided
	if plant.ID == "" {
		plant.ID = coll.NewDoc().ID
	}

	now := time.Now()
	if plant.CreatedAt.IsZero() {
		plant.CreatedAt = now
	}
	plant.UpdatedAt = now

	_, err := coll.Doc(plant.ID).Set(ctx, plant)
	if err != nil {
		return errors.Internal("Failed to create plant", err)
	}

	return nil
}

func (r *firestorePlantRepository) GetByID(ctx context.Context, role entity.Role, ownerID, id string) (*entity.Plant, error) {
	doc, err := r.client.Collection(PlantCollectionPath(role, ownerID)).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Plant", err)
		}
		return nil, errors.Internal("Failed to get plant", err)
	}

	var plant entity.Plant
	if err := doc.DataTo(&plant); err != nil {
		return nil, errors.Internal("Failed to parse plant data", err)
	}
	plant.ID = doc.Ref.ID

	return &plant, nil
}

func (r *firestorePlantRepository) ListShared(ctx context.Context, limit, offset int) ([]*entity.Plant, int64, error) {
	query := r.client.Collection(sharedPlantsCollection).Query.OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count plants", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	plants, err := r.drain(query.Documents(ctx))
	if err != nil {
		return nil, 0, err
	}

	return plants, total, nil
}

func (r *firestorePlantRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.Plant, error) {
	query := r.client.Collection(PlantCollectionPath(entity.RoleUser, ownerID)).
		Query.OrderBy("createdAt", firestore.Desc)

	return r.drain(query.Documents(ctx))
}

func (r *firestorePlantRepository) drain(iter *firestore.DocumentIterator) ([]*entity.Plant, error) {
	var plants []*entity.Plant

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate plants", err)
		}

		var plant entity.Plant
		if err := doc.DataTo(&plant); err != nil {
			return nil, errors.Internal("Failed to parse plant data", err)
		}
		plant.ID = doc.Ref.ID
		plants = append(plants, &plant)
	}

	return plants, nil
}

func (r *firestorePlantRepository) Update(ctx context.Context, plant *entity.Plant, patch entity.PlantPatch) error {
	updateData := map[string]interface{}{
		"updatedAt": time.Now(),
	}

	if patch.PlantName != nil {
		updateData["plantName"] = *patch.PlantName
	}
	if patch.Description != nil {
		updateData["description"] = *patch.Description
	}
	if patch.CategoryIDs != nil {
		updateData["categoryIds"] = patch.CategoryIDs
	}
	if patch.Images != nil {
		updateData["images"] = patch.Images
	}
	if patch.Price != nil {
		updateData["price"] = *patch.Price
	}
	if patch.Stock != nil {
		updateData["stock"] = *patch.Stock
	}
	if patch.Visibility != nil {
		updateData["visibility"] = string(*patch.Visibility)
	}
	if patch.Approved != nil {
		updateData["approved"] = *patch.Approved
	}

	// Merge-write: unspecified fields stay untouched, and the document is
	// created if absent (store semantics, kept as observed).
	_, err := r.collectionFor(plant).Doc(plant.ID).Set(ctx, updateData, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update plant", err)
	}

	return nil
}

func (r *firestorePlantRepository) Delete(ctx context.Context, plant *entity.Plant) error {
	_, err := r.collectionFor(plant).Doc(plant.ID).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete plant", err)
	}

	return nil
}

func (r *firestorePlantRepository) SetFavorite(ctx context.Context, plant *entity.Plant, isFavorite bool) error {
	count := 0
	if isFavorite {
		count = 1
	}

	// The count is set, not incremented: the app models one viewer's state,
	// not an aggregate across viewers.
	_, err := r.collectionFor(plant).Doc(plant.ID).Set(ctx, map[string]interface{}{
		"isFavorite":     isFavorite,
		"favoritesCount": count,
		"updatedAt":      time.Now(),
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update favorite state", err)
	}

	return nil
}

func (r *firestorePlantRepository) SubscribeAll(ctx context.Context, onData func([]*entity.Plant), onError func(error)) repository.Unsubscribe {
	query := r.client.Collection(sharedPlantsCollection).Query.OrderBy("createdAt", firestore.Desc)
	return r.watch(ctx, query, onData, onError)
}

func (r *firestorePlantRepository) SubscribeByOwner(ctx context.Context, ownerID string, onData func([]*entity.Plant), onError func(error)) repository.Unsubscribe {
	query := r.client.Collection(PlantCollectionPath(entity.RoleUser, ownerID)).
		Query.OrderBy("createdAt", firestore.Desc)
	return r.watch(ctx, query, onData, onError)
}

// watch drains a snapshot listener, delivering the full current result set on
// every change until the subscription is cancelled. Callbacks go through the
// subscription guard, so none can start after unsubscribe returns.
func (r *firestorePlantRepository) watch(ctx context.Context, query firestore.Query, onData func([]*entity.Plant), onError func(error)) repository.Unsubscribe {
	subCtx, cancel := context.WithCancel(ctx)
	snapshots := query.Snapshots(subCtx)
	sub := newSubscription(cancel)

	go func() {
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) == codes.Canceled || subCtx.Err() != nil {
					return
				}
				if onError != nil {
					sub.deliver(func() {
						onError(errors.Internal("Plant subscription failed", err))
					})
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				if onError != nil {
					sub.deliver(func() {
						onError(errors.Internal("Failed to read plant snapshot", err))
					})
				}
				return
			}

			plants := make([]*entity.Plant, 0, len(docs))
			for _, doc := range docs {
				var plant entity.Plant
				if err := doc.DataTo(&plant); err != nil {
					continue
				}
				plant.ID = doc.Ref.ID
				plants = append(plants, &plant)
			}

			sub.deliver(func() {
				onData(plants)
			})
		}
	}()

	return sub.unsubscribe
}
