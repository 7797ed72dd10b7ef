package models

import "fmt"

func itemImagePath(id int) string {
	return fmt.Sprintf("/items/%d/image", id)
}

func outfitPreviewPath(id string) string {
	return fmt.Sprintf("/outfits/%s/preview.png", id)
}
