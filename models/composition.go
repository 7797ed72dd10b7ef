package models

// OpenCompositionRequest represents the request body for starting a composition session
type OpenCompositionRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DragRequest represents the request body for starting a drag
type DragRequest struct {
	ItemID int `json:"itemId"`
}

// DropRequest represents the request body for a drop on the board.
// Payload is the raw drag payload, normally the item id as text.
type DropRequest struct {
	Payload string  `json:"payload"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// PaletteRequest represents the request body for opening or closing the palette
type PaletteRequest struct {
	Open bool `json:"open"`
}

// SaveCompositionRequest represents the outfit details entered before saving
type SaveCompositionRequest struct {
	Name   string `json:"name"`
	Season string `json:"season"`
	Date   string `json:"date"` // dd-MM-yyyy, defaults to today
}

// PlacementView is the API view of one item on the board
type PlacementView struct {
	ItemID int                  `json:"itemId"`
	Item   ClothingItemResponse `json:"item"`
	X      float64              `json:"x"`
	Y      float64              `json:"y"`
}

// CompositionView is the API view of a composition session
type CompositionView struct {
	SessionID      string                 `json:"sessionId"`
	DragState      string                 `json:"dragState"`
	PaletteVisible bool                   `json:"paletteVisible"`
	Width          float64                `json:"width"`
	Height         float64                `json:"height"`
	Placements     []PlacementView        `json:"placements"`
	AvailableItems []ClothingItemResponse `json:"availableItems"`
}

// SaveCompositionResponse represents the response after saving an outfit
type SaveCompositionResponse struct {
	OutfitID string `json:"outfitId"`
}

// DriveImportRequest represents the request body for importing photos from Drive
type DriveImportRequest struct {
	FolderID string `json:"folderId"`
}

// DriveImportResponse summarizes a Drive import
type DriveImportResponse struct {
	Total    int      `json:"total"`
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// FilterOptionsResponse lists the selectable filter values of the closet page
type FilterOptionsResponse struct {
	Colors     []string `json:"colors"`
	Materials  []string `json:"materials"`
	Categories []string `json:"categories"`
}
