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

type firestoreCategoryRepository struct {
	client *firestore.Client
}

func NewFirestoreCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &firestoreCategoryRepository{
		client: client,
	}
}

func (r *firestoreCategoryRepository) Add(ctx context.Context, category *entity.Category) error {
	coll := r.client.Collection(categoriesCollection)

	if category.ID == "" {
		category.ID = coll.NewDoc().ID
	}

	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := coll.Doc(category.ID).Set(ctx, category)
	if err != nil {
		return errors.Internal("Failed to create category", err)
	}

	return nil
}

func (r *firestoreCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	doc, err := r.client.Collection(categoriesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Category", err)
		}
		return nil, errors.Internal("Failed to get category", err)
	}

	var category entity.Category
	if err := doc.DataTo(&category); err != nil {
		return nil, errors.Internal("Failed to parse category data", err)
	}
	category.ID = doc.Ref.ID

	return &category, nil
}

func (r *firestoreCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	iter := r.client.Collection(categoriesCollection).
		Query.OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var categories []*entity.Category
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate categories", err)
		}

		var category entity.Category
		if err := doc.DataTo(&category); err != nil {
			return nil, errors.Internal("Failed to parse category data", err)
		}
		category.ID = doc.Ref.ID
		categories = append(categories, &category)
	}

	return categories, nil
}

func (r *firestoreCategoryRepository) Update(ctx context.Context, id string, patch entity.CategoryPatch) error {
	updateData := map[string]interface{}{
		"updatedAt": time.Now(),
	}

	if patch.Name != nil {
		updateData["name"] = *patch.Name
	}
	if patch.Slug != nil {
		updateData["slug"] = *patch.Slug
	}
	if patch.Description != nil {
		updateData["description"] = *patch.Description
	}

	_, err := r.client.Collection(categoriesCollection).Doc(id).Set(ctx, updateData, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update category", err)
	}

	return nil
}

func (r *firestoreCategoryRepository) Delete(ctx context.Context, id string) error {
	// No cascade: plants referencing this category keep the dangling ID.
	_, err := r.client.Collection(categoriesCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete category", err)
	}

	return nil
}

func (r *firestoreCategoryRepository) Subscribe(ctx context.Context, onData func([]*entity.Category), onError func(error)) repository.Unsubscribe {
	subCtx, cancel := context.WithCancel(ctx)
	snapshots := r.client.Collection(categoriesCollection).
		Query.OrderBy("createdAt", firestore.Desc).
		Snapshots(subCtx)
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
						onError(errors.Internal("Category subscription failed", err))
					})
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				if onError != nil {
					sub.deliver(func() {
						onError(errors.Internal("Failed to read category snapshot", err))
					})
				}
				return
			}

			categories := make([]*entity.Category, 0, len(docs))
			for _, doc := range docs {
				var category entity.Category
				if err := doc.DataTo(&category); err != nil {
					continue
				}
				category.ID = doc.Ref.ID
				categories = append(categories, &category)
			}

			sub.deliver(func() {
				onData(categories)
			})
		}
	}()

	return sub.unsubscribe
}
