package entity

import (
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is a profile document keyed by the auth provider's UID.
type User struct {
	ID         string  `json:"id" firestore:"id"`
	Username   string  `json:"username" firestore:"username"`
	Email      string  `json:"email" firestore:"email"`
	Phone      string  `json:"phone,omitempty" firestore:"phone,omitempty"`
	PhotoURL   *string `json:"photo_url" firestore:"photoURL"`
	Role       Role    `json:"role" firestore:"role"`
	IsDisabled bool    `json:"is_disabled" firestore:"isDisabled"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserPatch is a partial profile update. ClearPhoto nulls photoURL and wins
// over PhotoURL when both are set.
type UserPatch struct {
	Username   *string
	Phone      *string
	PhotoURL   *string
	ClearPhoto bool
	IsDisabled *bool
}
