package models

import "image"

// Image is a decoded clothing photo.
// The zero value is the empty-image sentinel: it is what an empty or
// unparseable payload decodes to, so callers never deal with a nil photo.
type Image struct {
	Bitmap image.Image
	Format string
	Data   []byte
}

// EmptyImage is the explicit empty-image sentinel
var EmptyImage = Image{}

// IsEmpty reports whether the image holds no decoded bitmap
func (i Image) IsEmpty() bool {
	return i.Bitmap == nil
}
