package entity

import (
	"time"
)

// Category is a flat classification tag. Plants reference categories by ID
// with no referential-integrity check; deleting a category leaves dangling
// IDs on plants that referenced it.
type Category struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Slug        string    `json:"slug,omitempty" firestore:"slug,omitempty"`
	Description string    `json:"description,omitempty" firestore:"description,omitempty"`
	CreatedBy   string    `json:"created_by" firestore:"createdBy"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

type CategoryPatch struct {
	Name        *string
	Slug        *string
	Description *string
}
