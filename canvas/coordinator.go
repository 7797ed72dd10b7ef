package canvas

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"dress-diary/metrics"
	"dress-diary/models"
)

var (
	// ErrUnresolvablePayload is returned when a drop payload does not name an
	// item of the current catalog. The board is left unchanged.
	ErrUnresolvablePayload = errors.New("drop payload does not resolve to a catalog item")

	// ErrEmptyComposition is returned when saving a board with nothing on it
	ErrEmptyComposition = errors.New("drag at least one item onto the board before saving")

	// ErrUnknownItem is returned when dragging an item that is not in the palette
	ErrUnknownItem = errors.New("item is not in the catalog")

	// ErrSaveInProgress is returned when the board is changed or saved again
	// while a save is pending
	ErrSaveInProgress = errors.New("the outfit is being saved")
)

// DragState is the drag lifecycle of the board
type DragState int

const (
	// Idle means no drag is in progress
	Idle DragState = iota
	// Dragging means a palette item is being dragged and the palette is hidden
	Dragging
)

func (d DragState) String() string {
	switch d {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	}
	return "unknown"
}

// Resolver turns a drag payload into a catalog item. It may be slow; it runs
// before the board is locked and must honor ctx.
type Resolver func(ctx context.Context, payload string, available []models.ClothingItem) (models.ClothingItem, error)

// ResolveByID reads the payload as an item id and looks it up in available
func ResolveByID(ctx context.Context, payload string, available []models.ClothingItem) (models.ClothingItem, error) {
	if err := ctx.Err(); err != nil {
		return models.ClothingItem{}, err
	}
	id, err := strconv.Atoi(strings.TrimSpace(payload))
	if err != nil {
		return models.ClothingItem{}, fmt.Errorf("%w: %q is not an item id", ErrUnresolvablePayload, payload)
	}
	if item, ok := findItem(available, id); ok {
		return item, nil
	}
	return models.ClothingItem{}, fmt.Errorf("%w: item %d", ErrUnresolvablePayload, id)
}

func findItem(items []models.ClothingItem, id int) (models.ClothingItem, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.ClothingItem{}, false
}

// Option configures a Coordinator
type Option func(*Coordinator)

// WithPadding overrides DefaultPadding
func WithPadding(padding float64) Option {
	return func(c *Coordinator) {
		c.padding = padding
	}
}

// WithResolver overrides ResolveByID
func WithResolver(r Resolver) Option {
	return func(c *Coordinator) {
		c.resolve = r
	}
}

// Snapshot is a consistent view of the board
type Snapshot struct {
	DragState      DragState
	DraggedItemID  int
	PaletteVisible bool
	Size           Size
	Placements     []Placement
	Available      []models.ClothingItem
}

// Coordinator validates drops and applies them to the board. All board
// mutations go through its mutex so they happen one at a time.
type Coordinator struct {
	mu          sync.Mutex
	state       *State
	available   []models.ClothingItem
	size        Size
	padding     float64
	drag        DragState
	draggedID   int
	paletteOpen bool
	saving      bool
	resolve     Resolver
}

// NewCoordinator creates a board of the given size over a catalog snapshot.
// The palette starts open.
func NewCoordinator(size Size, available []models.ClothingItem, opts ...Option) *Coordinator {
	c := &Coordinator{
		state:       NewState(),
		available:   available,
		size:        size,
		padding:     DefaultPadding,
		paletteOpen: true,
		resolve:     ResolveByID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BeginDrag moves Idle -> Dragging carrying itemID, which must be a palette entry.
// Starting a new drag while dragging replaces the payload.
func (c *Coordinator) BeginDrag(itemID int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.saving {
		return ErrSaveInProgress
	}
	if _, ok := findItem(c.available, itemID); !ok {
		return fmt.Errorf("%w: item %d", ErrUnknownItem, itemID)
	}
	c.drag = Dragging
	c.draggedID = itemID
	return nil
}

// CancelDrag returns to Idle without touching the board. The palette reopens
// when the board is still empty.
func (c *Coordinator) CancelDrag() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.endDragLocked()
	if c.state.IsEmpty() {
		c.paletteOpen = true
	}
}

func (c *Coordinator) endDragLocked() {
	c.drag = Idle
	c.draggedID = 0
}

// Drop resolves payload and places the item at the clamped point. Whatever
// the outcome, the drag ends and the coordinator is Idle afterwards.
// Rejected drops return ErrUnresolvablePayload and leave the board unchanged.
func (c *Coordinator) Drop(ctx context.Context, payload string, at Point) (Placement, error) {
	c.mu.Lock()
	available := c.available
	c.mu.Unlock()

	item, err := c.resolve(ctx, payload, available)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.endDragLocked()

	if c.saving {
		metrics.RecordDrop("rejected")
		return Placement{}, ErrSaveInProgress
	}
	if err != nil {
		metrics.RecordDrop("rejected")
		log.Debugf("🔍 Drop rejected: payload=%q: %v", payload, err)
		if errors.Is(err, ErrUnresolvablePayload) {
			return Placement{}, err
		}
		return Placement{}, fmt.Errorf("%w: %w", ErrUnresolvablePayload, err)
	}

	// the catalog may have been reloaded while the payload was resolving
	current, ok := findItem(c.available, item.ID)
	if !ok {
		metrics.RecordDrop("rejected")
		return Placement{}, fmt.Errorf("%w: item %d left the catalog", ErrUnresolvablePayload, item.ID)
	}

	position := Clamp(at, c.size, c.padding)
	placement, moved := c.state.Place(current, position)
	if moved {
		metrics.RecordDrop("moved")
	} else {
		metrics.RecordDrop("accepted")
	}
	return placement, nil
}

// Remove takes itemID off the board; absent ids are ignored
func (c *Coordinator) Remove(itemID int) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.saving {
		return false, ErrSaveInProgress
	}
	return c.state.Remove(itemID), nil
}

// Reload replaces the catalog snapshot and rebuilds the board against it.
// It returns the ids of placements dropped because their item disappeared.
func (c *Coordinator) Reload(catalog []models.ClothingItem) ([]int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.saving {
		return nil, ErrSaveInProgress
	}
	rebuilt, dropped := c.state.Reconciled(catalog)
	c.state = rebuilt
	c.available = catalog
	return dropped, nil
}

// SetPaletteOpen opens or closes the palette
func (c *Coordinator) SetPaletteOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.paletteOpen = open
}

// Resize changes the board size for future drops; placed items keep their positions
func (c *Coordinator) Resize(size Size) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.size = size
}

// PrepareSave returns the placed ids and their normalized layout, or
// ErrEmptyComposition when the board is empty. The palette closes.
// On success the board is frozen until FinishSave: drops, removals, reloads
// and further saves fail with ErrSaveInProgress.
func (c *Coordinator) PrepareSave() ([]int, []models.LayoutEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.saving {
		return nil, nil, ErrSaveInProgress
	}
	if c.state.IsEmpty() {
		return nil, nil, ErrEmptyComposition
	}
	c.saving = true
	c.paletteOpen = false
	return c.state.ItemIDs(), c.state.Layout(c.size), nil
}

// FinishSave unfreezes the board. A saved board is cleared; otherwise it is
// kept as it was for another attempt.
func (c *Coordinator) FinishSave(saved bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.saving = false
	if saved {
		c.clearLocked()
	}
}

func (c *Coordinator) clearLocked() {
	c.state = NewState()
	c.paletteOpen = false
	c.endDragLocked()
}

// Snapshot returns a consistent copy of the board
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	available := make([]models.ClothingItem, len(c.available))
	copy(available, c.available)

	return Snapshot{
		DragState:      c.drag,
		DraggedItemID:  c.draggedID,
		PaletteVisible: c.paletteOpen && c.drag == Idle,
		Size:           c.size,
		Placements:     c.state.Placements(),
		Available:      available,
	}
}
