package entity

import (
	"time"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
	VisibilityPending Visibility = "pending"
)

// Plant is a catalog item. Admin-authored plants live in the shared "plants"
// collection; user-authored plants live under "users/{uid}/plants". The
// storage location is always re-derived from CreatedByRole and CreatedBy,
// never cached alongside the document.
type Plant struct {
	ID          string   `json:"id" firestore:"id"`
	PlantName   string   `json:"plant_name" firestore:"plantName"`
	Description string   `json:"description,omitempty" firestore:"description,omitempty"`
	CategoryIDs []string `json:"category_ids" firestore:"categoryIds"`
	Images      []string `json:"images" firestore:"images"`
	Price       float64  `json:"price,omitempty" firestore:"price,omitempty"`
	Stock       int      `json:"stock,omitempty" firestore:"stock,omitempty"`

	CreatedBy     string     `json:"created_by" firestore:"createdBy"`
	CreatedByRole Role       `json:"created_by_role" firestore:"createdByRole"`
	Visibility    Visibility `json:"visibility" firestore:"visibility"`
	Approved      bool       `json:"approved" firestore:"approved"`

	FavoritesCount int  `json:"favorites_count" firestore:"favoritesCount"`
	IsFavorite     bool `json:"is_favorite" firestore:"isFavorite"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// PlantPatch is a partial update. Nil fields are left untouched by the
// merge-write; non-nil required fields are re-validated before any I/O.
type PlantPatch struct {
	PlantName   *string
	Description *string
	CategoryIDs []string
	Images      []string
	Price       *float64
	Stock       *int
	Visibility  *Visibility
	Approved    *bool
}
