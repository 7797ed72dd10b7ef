// Package collage lays out outfit preview thumbnails as an overlapping fan
// and renders the resulting preview image.
package collage

import "math"

// MaxTiles is the number of images a preview uses; extra items are ignored
const MaxTiles = 4

const (
	shiftRatio = 0.28
	tileRatio  = 0.72
	minTile    = 64.0
)

// Offset is the displacement of a tile center from the preview center
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// template positions, in units of shift
var templates = [MaxTiles + 1][]Offset{
	0: {},
	1: {{0, 0}},
	2: {{-0.6, 0}, {0.6, 0}},
	3: {{-0.6, 0.2}, {0, -0.45}, {0.6, 0.2}},
	4: {{-0.7, -0.35}, {0.7, -0.35}, {-0.35, 0.6}, {0.35, 0.6}},
}

// Layout returns one offset per tile for count images on a square preview of
// side span. 1 image centers, 2 split left/right, 3 form a triangle with the
// apex on top, 4 or more form a four-corner fan.
func Layout(count int, span float64) []Offset {
	if count < 0 {
		count = 0
	}
	if count > MaxTiles {
		count = MaxTiles
	}

	shift := span * shiftRatio
	offsets := make([]Offset, count)
	for i, t := range templates[count] {
		offsets[i] = Offset{X: t.X * shift, Y: t.Y * shift}
	}
	return offsets
}

// TileSize returns the side of one thumbnail on a preview of side span
func TileSize(span float64) float64 {
	return math.Max(span*tileRatio, minTile)
}
