package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AbsentCollectionReturnsNilNil(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	data, err := s.ReadCollection(ctx, CollectionNotifications)
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestMemoryStore_WriteThenRead(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.WriteCollection(ctx, CollectionShips, []byte(`[1]`)))

	data, err := s.ReadCollection(ctx, CollectionShips)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1]`), data)
}

func TestMemoryStore_ReadReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.WriteCollection(ctx, CollectionShips, []byte(`abc`)))

	data, err := s.ReadCollection(ctx, CollectionShips)
	require.NoError(t, err)
	data[0] = 'x'

	again, err := s.ReadCollection(ctx, CollectionShips)
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), again)
}

func TestMemoryStore_Session_Lifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	data, err := s.ReadSession(ctx)
	require.NoError(t, err)
	require.Nil(t, data)

	require.NoError(t, s.WriteSession(ctx, []byte(`{"id":"1"}`)))

	data, err = s.ReadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"1"}`), data)

	require.NoError(t, s.ClearSession(ctx))

	data, err = s.ReadSession(ctx)
	require.NoError(t, err)
	require.Nil(t, data)
}
