package user

import (
	"context"
	"testing"
	"time"

	"studyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPendingStore_SaveGetDelete(t *testing.T) {
	store := NewMemoryPendingStore()
	ctx := context.Background()

	got, err := store.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	reg := models.PendingRegistration{
		ID:    "reg-1",
		Email: "ana@example.com",
		Stage: models.StageAwaitingRole,
	}
	require.NoError(t, store.Save(ctx, reg.Email, reg, time.Minute))

	got, err = store.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "reg-1", got.ID)

	// Get returns a copy; mutating it does not touch the stored record.
	got.Stage = models.StageAwaitingProfile
	again, err := store.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.StageAwaitingRole, again.Stage)

	require.NoError(t, store.Delete(ctx, "ana@example.com"))
	got, err = store.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryPendingStore_Expiry(t *testing.T) {
	store := NewMemoryPendingStore()
	ctx := context.Background()

	reg := models.PendingRegistration{ID: "reg-1", Email: "ana@example.com"}
	require.NoError(t, store.Save(ctx, reg.Email, reg, -time.Second))

	got, err := store.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestMemoryPendingStore_All(t *testing.T) {
	store := NewMemoryPendingStore()
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		reg := models.PendingRegistration{ID: email, Email: email}
		require.NoError(t, store.Save(ctx, email, reg, time.Minute))
	}
	require.NoError(t, store.Save(ctx, "expired@example.com",
		models.PendingRegistration{Email: "expired@example.com"}, -time.Second))

	all, err := store.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryPendingStore_SaveOverwrites(t *testing.T) {
	store := NewMemoryPendingStore()
	ctx := context.Background()

	first := models.PendingRegistration{ID: "reg-1", Email: "ana@example.com", ResendCount: 0}
	require.NoError(t, store.Save(ctx, first.Email, first, time.Minute))

	second := first
	second.ResendCount = 2
	require.NoError(t, store.Save(ctx, second.Email, second, time.Minute))

	got, err := store.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, got.ResendCount)
}
