package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/target/leave-ui/internal/domain/auth"
	"github.com/target/leave-ui/internal/ports"
)

func TestSessionStore_Lifecycle(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := NewSessionStore().WithClock(func() time.Time { return now })
	ctx := context.Background()

	require.Error(t, store.Save(ctx, domainauth.Session{}))

	sess := domainauth.Session{ID: "s1", Token: "t", Role: domainauth.RoleAdmin, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "s1"))
	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
	require.NoError(t, store.Delete(ctx, "s1"), "deleting twice is fine")
}

func TestSessionStore_ExpiredIsEvicted(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	store := NewSessionStore().WithClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domainauth.Session{ID: "old", ExpiresAt: now.Add(-time.Second)}))
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
	assert.Equal(t, 0, store.Len())
}
