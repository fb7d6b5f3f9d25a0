package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	store := NewStore()
	assert.Equal(t, 0, store.Len())

	first := newTestSession(t)
	second := newTestSession(t)

	firstID := store.Add(first)
	secondID := store.Add(second)
	assert.NotEqual(t, firstID, secondID)
	assert.Equal(t, 2, store.Len())

	got, err := store.Get(firstID)
	require.NoError(t, err)
	assert.Same(t, first, got)

	require.NoError(t, store.Delete(firstID))
	assert.Equal(t, 1, store.Len())

	_, err = store.Get(firstID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(firstID), ErrNotFound)

	_, err = store.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
