package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"greengarden/internal/domain/entity"
)

func TestPlantCollectionPathAdminIgnoresOwner(t *testing.T) {
	assert.Equal(t, "plants", PlantCollectionPath(entity.RoleAdmin, ""))
	assert.Equal(t, "plants", PlantCollectionPath(entity.RoleAdmin, "admin-1"))
}

func TestPlantCollectionPathUserIsScopedToOwner(t *testing.T) {
	assert.Equal(t, "users/uid-1/plants", PlantCollectionPath(entity.RoleUser, "uid-1"))
	assert.Equal(t, "users/uid-2/plants", PlantCollectionPath(entity.RoleUser, "uid-2"))
}

// The path is a pure function of its inputs: same arguments, same partition,
// no matter how often it is asked.
func TestPlantCollectionPathIsDeterministic(t *testing.T) {
	first := PlantCollectionPath(entity.RoleUser, "uid-1")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, PlantCollectionPath(entity.RoleUser, "uid-1"))
	}
}

func TestPlantCollectionPathsDoNotCollide(t *testing.T) {
	assert.NotEqual(t,
		PlantCollectionPath(entity.RoleAdmin, "uid-1"),
		PlantCollectionPath(entity.RoleUser, "uid-1"))
}
