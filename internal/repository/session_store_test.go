package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avika/internal/model"
)

func TestSessionStore(t *testing.T) {
	store := NewSessionStore()

	sess := model.NewSession("abc")
	require.NoError(t, store.Create(sess))
	assert.Equal(t, 1, store.Count())

	got, err := store.Get("abc")
	require.NoError(t, err)
	assert.Same(t, sess, got)

	assert.Error(t, store.Create(model.NewSession("abc")))

	require.NoError(t, store.Delete("abc"))
	assert.Equal(t, 0, store.Count())

	_, err = store.Get("abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, store.Delete("abc"), ErrSessionNotFound)
}
