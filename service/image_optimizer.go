package service

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ImageOptions controls how uploaded photos are stored
type ImageOptions struct {
	MaxDimension int
	Quality      int
}

// OptimizeImage converts a photo to JPEG, applying its EXIF orientation and
// shrinking it so neither side exceeds opts.MaxDimension.
// imageData: raw image bytes (PNG, JPEG, WebP, etc.)
func OptimizeImage(imageData []byte, opts ImageOptions) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width > opts.MaxDimension || height > opts.MaxDimension {
		log.Debugf("🔄 Resizing image: %dx%d -> fit %d", width, height, opts.MaxDimension)
		img = imaging.Fit(img, opts.MaxDimension, opts.MaxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(opts.Quality)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	log.Debugf("✓ Image optimized: quality=%d, %d -> %d bytes", opts.Quality, len(imageData), buf.Len())
	return buf.Bytes(), nil
}
