package sessions

import (
	"context"
	"testing"

	"github.com/linkpay/webclient/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateAssignsID(t *testing.T) {
	store := NewMemoryStore()

	sess := &model.Session{Identity: model.IdentitySession{UID: "uid-1"}}
	require.NoError(t, store.Create(context.Background(), sess))

	assert.NotEmpty(t, sess.ID)
	assert.False(t, sess.CreatedAt.IsZero())
}

func TestMemoryStore_GetRoundTrip(t *testing.T) {
	store := NewMemoryStore()

	sess := &model.Session{Identity: model.IdentitySession{UID: "uid-1", Email: "a@b.com"}}
	require.NoError(t, store.Create(context.Background(), sess))

	got, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)

	assert.Equal(t, "uid-1", got.Identity.UID)
	assert.Equal(t, "a@b.com", got.Identity.Email)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()

	sess := &model.Session{Identity: model.IdentitySession{UID: "uid-1"}}
	require.NoError(t, store.Create(context.Background(), sess))

	got, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)

	got.Identity.UID = "changed"

	again, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", again.Identity.UID)
}

func TestMemoryStore_GetUnknown(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestMemoryStore_SaveUnknown(t *testing.T) {
	store := NewMemoryStore()

	err := store.Save(context.Background(), &model.Session{ID: "missing"})
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()

	sess := &model.Session{}
	require.NoError(t, store.Create(context.Background(), sess))
	require.NoError(t, store.Delete(context.Background(), sess.ID))

	_, err := store.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}
