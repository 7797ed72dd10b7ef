// Package canvas holds the outfit composition board: which items are placed,
// where, and the drag lifecycle that puts them there.
package canvas

import (
	"math"

	"dress-diary/models"
)

// DefaultPadding keeps item centers this far from the board edges
const DefaultPadding = 70.0

// Point is a position on the board, in board units
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the board size, in board units
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Clamp moves p into [padding, max(padding, dim-padding)] on each axis.
// On a board smaller than twice the padding the range collapses to padding.
func Clamp(p Point, size Size, padding float64) Point {
	return Point{
		X: clampAxis(p.X, padding, math.Max(padding, size.Width-padding)),
		Y: clampAxis(p.Y, padding, math.Max(padding, size.Height-padding)),
	}
}

func clampAxis(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// Placement is one item on the board
type Placement struct {
	ItemID   int
	Item     models.ClothingItem
	Position Point
}

// State is the set of placements of one composition session, at most one per
// item id, in first-drop order. It is not safe for concurrent use; the
// Coordinator serializes access.
type State struct {
	placements []Placement
}

// NewState creates an empty board
func NewState() *State {
	return &State{}
}

func (s *State) indexOf(itemID int) int {
	for i, p := range s.placements {
		if p.ItemID == itemID {
			return i
		}
	}
	return -1
}

// Place inserts item at position, or moves the existing placement of the same
// item keeping its place in the order. moved reports which one happened.
func (s *State) Place(item models.ClothingItem, position Point) (placement Placement, moved bool) {
	if idx := s.indexOf(item.ID); idx >= 0 {
		s.placements[idx].Item = item
		s.placements[idx].Position = position
		return s.placements[idx], true
	}

	placement = Placement{ItemID: item.ID, Item: item, Position: position}
	s.placements = append(s.placements, placement)
	return placement, false
}

// Remove deletes the placement of itemID. Removing an absent id is a no-op.
func (s *State) Remove(itemID int) bool {
	idx := s.indexOf(itemID)
	if idx < 0 {
		return false
	}
	s.placements = append(s.placements[:idx], s.placements[idx+1:]...)
	return true
}

// Get returns the placement of itemID
func (s *State) Get(itemID int) (Placement, bool) {
	if idx := s.indexOf(itemID); idx >= 0 {
		return s.placements[idx], true
	}
	return Placement{}, false
}

// Placements returns a copy of the placements in order
func (s *State) Placements() []Placement {
	out := make([]Placement, len(s.placements))
	copy(out, s.placements)
	return out
}

// Len returns the number of placed items
func (s *State) Len() int {
	return len(s.placements)
}

// IsEmpty reports whether nothing is placed
func (s *State) IsEmpty() bool {
	return len(s.placements) == 0
}

// ItemIDs returns the placed item ids in order
func (s *State) ItemIDs() []int {
	ids := make([]int, len(s.placements))
	for i, p := range s.placements {
		ids[i] = p.ItemID
	}
	return ids
}

// Layout returns the placements normalized to size
func (s *State) Layout(size Size) []models.LayoutEntry {
	layout := make([]models.LayoutEntry, len(s.placements))
	for i, p := range s.placements {
		layout[i] = models.LayoutEntry{
			ItemID:      p.ItemID,
			NormalizedX: normalize(p.Position.X, size.Width),
			NormalizedY: normalize(p.Position.Y, size.Height),
		}
	}
	return layout
}

func normalize(v, dim float64) float64 {
	if dim <= 0 {
		return 0
	}
	return v / dim
}

// Reconciled rebuilds the board against a refreshed catalog: placements whose
// item still exists keep their position and pick up the new item data, the
// rest are dropped. The receiver is left untouched.
func (s *State) Reconciled(catalog []models.ClothingItem) (*State, []int) {
	lookup := make(map[int]models.ClothingItem, len(catalog))
	for _, item := range catalog {
		lookup[item.ID] = item
	}

	rebuilt := &State{placements: make([]Placement, 0, len(s.placements))}
	var dropped []int
	for _, p := range s.placements {
		item, ok := lookup[p.ItemID]
		if !ok {
			dropped = append(dropped, p.ItemID)
			continue
		}
		rebuilt.placements = append(rebuilt.placements, Placement{ItemID: p.ItemID, Item: item, Position: p.Position})
	}
	return rebuilt, dropped
}
