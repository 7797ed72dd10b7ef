package decoder

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"dress-diary/models"
)

// DecodeImage decodes a photo payload.
// An empty or unparseable payload yields models.EmptyImage, never an error.
func DecodeImage(data []byte) models.Image {
	if len(data) == 0 {
		return models.EmptyImage
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return models.EmptyImage
	}

	bitmap, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return models.EmptyImage
	}

	return models.Image{
		Bitmap: bitmap,
		Format: format,
		Data:   data,
	}
}
