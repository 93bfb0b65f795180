package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStorageRoundTrip(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()

	ok, err := s.Exists(ctx, "will_1.pdf")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.Read(ctx, "will_1.pdf")
	require.ErrorIs(t, err, ErrNotExist)

	require.NoError(t, s.Write(ctx, "will_1.pdf", []byte("%PDF-fake")))

	ok, err = s.Exists(ctx, "will_1.pdf")
	require.NoError(t, err)
	require.True(t, ok)

	data, err := s.Read(ctx, "will_1.pdf")
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-fake"), data)

	// overwrite is last-write-wins
	require.NoError(t, s.Write(ctx, "will_1.pdf", []byte("%PDF-new")))
	data, err = s.Read(ctx, "will_1.pdf")
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-new"), data)

	s.Delete("will_1.pdf")
	_, err = s.Read(ctx, "will_1.pdf")
	require.ErrorIs(t, err, ErrNotExist)
}

func TestMemoryStorageReturnsCopies(t *testing.T) {
	s := NewMemoryStorage()
	ctx := context.Background()
	require.NoError(t, s.Write(ctx, "a.pdf", []byte("abc")))

	data, err := s.Read(ctx, "a.pdf")
	require.NoError(t, err)
	data[0] = 'z'

	again, err := s.Read(ctx, "a.pdf")
	require.NoError(t, err)
	require.Equal(t, []byte("abc"), again)
}
