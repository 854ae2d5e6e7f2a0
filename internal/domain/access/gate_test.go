package access

import (
	"testing"

	"roster/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsAuthenticated(t *testing.T) {
	assert.False(t, IsAuthenticated(nil))
	assert.True(t, IsAuthenticated(&entity.Identity{ID: uuid.New()}))
}

func TestIsSelf(t *testing.T) {
	id := uuid.New()

	assert.False(t, IsSelf(nil, id))
	assert.False(t, IsSelf(&entity.Identity{ID: uuid.New()}, id))
	assert.True(t, IsSelf(&entity.Identity{ID: id}, id))
}

func TestIsAdmin(t *testing.T) {
	assert.False(t, IsAdmin(nil))
	assert.False(t, IsAdmin(&entity.Identity{ID: uuid.New()}))
	assert.True(t, IsAdmin(&entity.Identity{ID: uuid.New(), Admin: true}))
}

func TestCanUpdateAccount(t *testing.T) {
	ownID := uuid.New()
	otherID := uuid.New()

	owner := &entity.Identity{ID: ownID}
	admin := &entity.Identity{ID: uuid.New(), Admin: true}

	assert.False(t, CanUpdateAccount(nil, ownID))
	assert.True(t, CanUpdateAccount(owner, ownID))
	assert.False(t, CanUpdateAccount(owner, otherID))

	// Admin rights do not extend to editing other accounts.
	assert.False(t, CanUpdateAccount(admin, ownID))
	assert.True(t, CanUpdateAccount(admin, admin.ID))
}

func TestCanDeleteAccount(t *testing.T) {
	assert.False(t, CanDeleteAccount(nil))
	assert.False(t, CanDeleteAccount(&entity.Identity{ID: uuid.New()}))
	assert.True(t, CanDeleteAccount(&entity.Identity{ID: uuid.New(), Admin: true}))
}
