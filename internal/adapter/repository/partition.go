package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"greengarden/internal/domain/entity"
)

const (
	sharedPlantsCollection = "plants"
	usersCollection        = "users"
	userPlantsCollection   = "plants"
	categoriesCollection   = "categories"
)

// PlantCollectionPath resolves the partition a plant document lives in as a
// pure function of its owner role and owner ID. Admin-authored plants share
// one global collection; user-authored plants live under the owner's profile
// document. Every read and mutation routes through this; the location is
// never cached on the document.
func PlantCollectionPath(role entity.Role, ownerID string) string {
	if role == entity.RoleAdmin {
		return sharedPlantsCollection
	}
	return usersCollection + "/" + ownerID + "/" + userPlantsCollection
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
