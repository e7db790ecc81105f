package repository

import (
	"context"
	"testing"

	"shareit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestItemRepository_Search(t *testing.T) {
	users, items, _, _ := setupDB(t)
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com")

	drill := &domain.Item{OwnerID: owner.ID, Name: "Cordless DRILL", Description: "18V", Available: true}
	tent := &domain.Item{OwnerID: owner.ID, Name: "Tent", Description: "for drilling enthusiasts", Available: true}
	hidden := &domain.Item{OwnerID: owner.ID, Name: "Broken drill", Description: "do not rent", Available: false}
	for _, i := range []*domain.Item{drill, tent, hidden} {
		require.NoError(t, items.Create(ctx, i))
	}

	// case-insensitive, matches name or description, skips unavailable
	got, err := items.Search(ctx, "dRiLl", 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, drill.ID, got[0].ID)
	assert.Equal(t, tent.ID, got[1].ID)

	got, err = items.Search(ctx, "nothing-like-this", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestItemRepository_IsAvailable(t *testing.T) {
	users, items, _, _ := setupDB(t)
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com")
	up := seedItem(t, items, owner.ID, "Drill")
	down := &domain.Item{OwnerID: owner.ID, Name: "Bike", Available: false}
	require.NoError(t, items.Create(ctx, down))

	ok, err := items.IsAvailable(ctx, up.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = items.IsAvailable(ctx, down.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = items.IsAvailable(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestItemRepository_OwnerHasAnyItem(t *testing.T) {
	users, items, _, _ := setupDB(t)
	ctx := context.Background()

	alice := seedUser(t, users, "Alice", "alice@example.com")
	bob := seedUser(t, users, "Bob", "bob@example.com")
	seedItem(t, items, alice.ID, "Drill")

	ok, err := items.OwnerHasAnyItem(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = items.OwnerHasAnyItem(ctx, bob.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestItemRepository_GetByID_Missing(t *testing.T) {
	_, items, _, _ := setupDB(t)

	_, err := items.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_GetAllByOwner_Paginates(t *testing.T) {
	users, items, _, _ := setupDB(t)
	ctx := context.Background()

	owner := seedUser(t, users, "Alice", "alice@example.com")
	for _, n := range []string{"a", "b", "c", "d"} {
		seedItem(t, items, owner.ID, n)
	}

	page, err := items.GetAllByOwner(ctx, owner.ID, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "c", page[0].Name)
	assert.Equal(t, "d", page[1].Name)
}
