package collage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"dress-diary/models"
)

// ErrInvalidSpan is returned for a non-positive preview size
var ErrInvalidSpan = errors.New("preview span must be positive")

// DefaultSpan is the preview side used when the caller does not pick one
const DefaultSpan = 240

var background = color.NRGBA{R: 0xF7, G: 0xF3, B: 0xEE, A: 0xFF}

// Render draws the first MaxTiles images onto a span x span square following
// Layout. Empty images keep their slot but draw nothing. Later tiles are drawn
// on top of earlier ones.
func Render(images []models.Image, span int) (*image.NRGBA, error) {
	if span <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSpan, span)
	}
	if len(images) > MaxTiles {
		images = images[:MaxTiles]
	}

	dst := imaging.New(span, span, background)
	tile := int(math.Round(TileSize(float64(span))))
	center := float64(span) / 2

	for i, off := range Layout(len(images), float64(span)) {
		if images[i].IsEmpty() {
			continue
		}
		thumb := imaging.Fill(images[i].Bitmap, tile, tile, imaging.Center, imaging.Lanczos)
		x := int(math.Round(center + off.X - float64(tile)/2))
		y := int(math.Round(center + off.Y - float64(tile)/2))
		dst = imaging.Overlay(dst, thumb, image.Pt(x, y), 1.0)
	}
	return dst, nil
}

// RenderPNG renders the collage and encodes it as PNG
func RenderPNG(images []models.Image, span int) ([]byte, error) {
	img, err := Render(images, span)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode collage: %w", err)
	}
	return buf.Bytes(), nil
}
