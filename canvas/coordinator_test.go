package canvas

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dress-diary/models"
)

func newBoard(ids ...int) *Coordinator {
	catalog := make([]models.ClothingItem, len(ids))
	for i, id := range ids {
		catalog[i] = item(id)
	}
	return NewCoordinator(Size{Width: 400, Height: 300}, catalog)
}

func TestCoordinator_DropPlacesClampedItem(t *testing.T) {
	c := newBoard(1, 2)
	require.NoError(t, c.BeginDrag(1))
	assert.Equal(t, Dragging, c.Snapshot().DragState)
	assert.False(t, c.Snapshot().PaletteVisible)

	p, err := c.Drop(context.Background(), "1", Point{X: 5, Y: 500})
	require.NoError(t, err)

	assert.Equal(t, Point{X: 70, Y: 230}, p.Position)
	snap := c.Snapshot()
	assert.Equal(t, Idle, snap.DragState)
	assert.True(t, snap.PaletteVisible)
	assert.Len(t, snap.Placements, 1)
}

func TestCoordinator_DropMovesExisting(t *testing.T) {
	c := newBoard(1)

	_, err := c.Drop(context.Background(), "1", Point{X: 100, Y: 100})
	require.NoError(t, err)
	_, err = c.Drop(context.Background(), " 1 ", Point{X: 200, Y: 200})
	require.NoError(t, err)

	snap := c.Snapshot()
	require.Len(t, snap.Placements, 1)
	assert.Equal(t, Point{X: 200, Y: 200}, snap.Placements[0].Position)
}

func TestCoordinator_RejectedDropLeavesBoard(t *testing.T) {
	c := newBoard(1)
	_, err := c.Drop(context.Background(), "1", Point{X: 100, Y: 100})
	require.NoError(t, err)

	for _, payload := range []string{"", "abc", "99", "1.5"} {
		require.NoError(t, c.BeginDrag(1))
		_, err := c.Drop(context.Background(), payload, Point{X: 300, Y: 200})
		assert.ErrorIs(t, err, ErrUnresolvablePayload, "payload %q", payload)

		snap := c.Snapshot()
		assert.Equal(t, Idle, snap.DragState, "drag must end after a rejected drop")
		require.Len(t, snap.Placements, 1)
		assert.Equal(t, Point{X: 100, Y: 100}, snap.Placements[0].Position)
	}
}

func TestCoordinator_ResolverErrorsAreRejections(t *testing.T) {
	boom := errors.New("lookup timed out")
	c := NewCoordinator(Size{Width: 400, Height: 300}, []models.ClothingItem{item(1)},
		WithResolver(func(context.Context, string, []models.ClothingItem) (models.ClothingItem, error) {
			return models.ClothingItem{}, boom
		}))

	require.NoError(t, c.BeginDrag(1))
	_, err := c.Drop(context.Background(), "1", Point{})
	assert.ErrorIs(t, err, ErrUnresolvablePayload)
	assert.Equal(t, Idle, c.Snapshot().DragState)
}

func TestCoordinator_DropAfterCatalogReload(t *testing.T) {
	var c *Coordinator
	c = NewCoordinator(Size{Width: 400, Height: 300}, []models.ClothingItem{item(1)},
		WithResolver(func(ctx context.Context, payload string, available []models.ClothingItem) (models.ClothingItem, error) {
			resolved, err := ResolveByID(ctx, payload, available)
			c.Reload(nil)
			return resolved, err
		}))

	_, err := c.Drop(context.Background(), "1", Point{X: 100, Y: 100})
	assert.ErrorIs(t, err, ErrUnresolvablePayload)
	assert.Empty(t, c.Snapshot().Placements)
}

func TestCoordinator_CancelledContext(t *testing.T) {
	c := newBoard(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Drop(ctx, "1", Point{})
	assert.ErrorIs(t, err, ErrUnresolvablePayload)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCoordinator_BeginDrag(t *testing.T) {
	c := newBoard(1, 2)

	assert.ErrorIs(t, c.BeginDrag(3), ErrUnknownItem)
	assert.Equal(t, Idle, c.Snapshot().DragState)

	require.NoError(t, c.BeginDrag(1))
	require.NoError(t, c.BeginDrag(2))
	assert.Equal(t, 2, c.Snapshot().DraggedItemID)
}

func TestCoordinator_CancelDragReopensPaletteOnEmptyBoard(t *testing.T) {
	c := newBoard(1)
	c.SetPaletteOpen(false)
	require.NoError(t, c.BeginDrag(1))

	c.CancelDrag()

	snap := c.Snapshot()
	assert.Equal(t, Idle, snap.DragState)
	assert.True(t, snap.PaletteVisible)
	assert.Empty(t, snap.Placements)
}

func TestCoordinator_PrepareSave(t *testing.T) {
	c := newBoard(1, 2)

	_, _, err := c.PrepareSave()
	assert.ErrorIs(t, err, ErrEmptyComposition)
	assert.Equal(t, "drag at least one item onto the board before saving", err.Error())

	_, err = c.Drop(context.Background(), "2", Point{X: 200, Y: 150})
	require.NoError(t, err)
	_, err = c.Drop(context.Background(), "1", Point{X: 100, Y: 75})
	require.NoError(t, err)

	ids, layout, err := c.PrepareSave()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, ids)
	assert.Equal(t, []models.LayoutEntry{
		{ItemID: 2, NormalizedX: 0.5, NormalizedY: 0.5},
		{ItemID: 1, NormalizedX: 0.25, NormalizedY: 0.25},
	}, layout)
	assert.False(t, c.Snapshot().PaletteVisible)
}

func TestCoordinator_SaveFreezesBoard(t *testing.T) {
	c := newBoard(1, 2)
	_, err := c.Drop(context.Background(), "1", Point{X: 100, Y: 100})
	require.NoError(t, err)

	_, _, err = c.PrepareSave()
	require.NoError(t, err)

	_, _, err = c.PrepareSave()
	assert.ErrorIs(t, err, ErrSaveInProgress)
	_, err = c.Drop(context.Background(), "2", Point{X: 200, Y: 100})
	assert.ErrorIs(t, err, ErrSaveInProgress)
	_, err = c.Remove(1)
	assert.ErrorIs(t, err, ErrSaveInProgress)
	_, err = c.Reload(nil)
	assert.ErrorIs(t, err, ErrSaveInProgress)
	assert.ErrorIs(t, c.BeginDrag(2), ErrSaveInProgress)
	assert.Equal(t, Idle, c.Snapshot().DragState)
	require.Len(t, c.Snapshot().Placements, 1)

	c.FinishSave(false)
	_, err = c.Drop(context.Background(), "2", Point{X: 200, Y: 100})
	require.NoError(t, err)

	ids, _, err := c.PrepareSave()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids)

	c.FinishSave(true)
	assert.Empty(t, c.Snapshot().Placements)
	_, _, err = c.PrepareSave()
	assert.ErrorIs(t, err, ErrEmptyComposition)
}

func TestCoordinator_ReloadDropsMissingItems(t *testing.T) {
	c := newBoard(1, 2)
	_, _ = c.Drop(context.Background(), "1", Point{X: 100, Y: 100})
	_, _ = c.Drop(context.Background(), "2", Point{X: 150, Y: 100})

	dropped, err := c.Reload([]models.ClothingItem{item(2)})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, dropped)
	snap := c.Snapshot()
	require.Len(t, snap.Placements, 1)
	assert.Equal(t, 2, snap.Placements[0].ItemID)
	assert.ErrorIs(t, c.BeginDrag(1), ErrUnknownItem)
}

func TestCoordinator_ConcurrentDrops(t *testing.T) {
	c := newBoard(1, 2, 3, 4)

	var wg sync.WaitGroup
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			payload := []string{"1", "2", "3", "4"}[i%4]
			_, _ = c.Drop(context.Background(), payload, Point{X: float64(i * 10), Y: 100})
		}(i)
	}
	wg.Wait()

	snap := c.Snapshot()
	assert.Len(t, snap.Placements, 4)
	assert.Equal(t, Idle, snap.DragState)
}

func TestDragState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
}
