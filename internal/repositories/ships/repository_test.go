package ships

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelkovs/fleetdesk/internal/logging"
	"github.com/avelkovs/fleetdesk/internal/models"
	"github.com/avelkovs/fleetdesk/internal/storage"
)

func newTestRepo(t *testing.T) *StoreRepository {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewStoreRepository(storage.NewMemoryStore(), log)
}

func TestUpsert_EmptyIDGeneratesUniqueID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first, err := r.Upsert(ctx, models.Ship{Name: "Ever Given", Status: models.ShipStatusActive})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := r.Upsert(ctx, models.Ship{Name: "Maersk Alabama", Status: models.ShipStatusActive})
	require.NoError(t, err)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	items, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestUpsert_ExistingIDReplacesInPlace(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	a, err := r.Upsert(ctx, models.Ship{Name: "A", Status: models.ShipStatusActive})
	require.NoError(t, err)
	_, err = r.Upsert(ctx, models.Ship{Name: "B", Status: models.ShipStatusActive})
	require.NoError(t, err)

	a.Status = models.ShipStatusUnderMaintenance
	_, err = r.Upsert(ctx, a)
	require.NoError(t, err)

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	// position preserved, field updated
	assert.Equal(t, a.ID, items[0].ID)
	assert.Equal(t, models.ShipStatusUnderMaintenance, items[0].Status)
}

func TestUpsert_UnknownIDTreatedAsCreate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	ship, err := r.Upsert(ctx, models.Ship{ID: "s42", Name: "Ghost"})
	require.NoError(t, err)
	assert.Equal(t, "s42", ship.ID)

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "s42", items[0].ID)
}

func TestRemove_DeletesMatchingShip(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	a, err := r.Upsert(ctx, models.Ship{Name: "A"})
	require.NoError(t, err)
	b, err := r.Upsert(ctx, models.Ship{Name: "B"})
	require.NoError(t, err)

	require.NoError(t, r.Remove(ctx, a.ID))

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)
}

func TestRemove_AbsentIDLeavesCollectionUnchanged(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	_, err := r.Upsert(ctx, models.Ship{Name: "A"})
	require.NoError(t, err)

	before, err := r.List(ctx)
	require.NoError(t, err)

	require.NoError(t, r.Remove(ctx, "missing"))

	after, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestList_EmptyStoreReturnsEmpty(t *testing.T) {
	r := newTestRepo(t)

	items, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
