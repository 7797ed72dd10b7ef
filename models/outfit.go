package models

// LayoutEntry is the position of one item on the composition board,
// normalized to the board size (0..1 on each axis)
type LayoutEntry struct {
	ItemID      int     `json:"itemId"`
	NormalizedX float64 `json:"normalizedX"`
	NormalizedY float64 `json:"normalizedY"`
}

// SavedOutfit represents a decoded outfit.
// Items is for display; ItemIDs is authoritative and may reference items
// that no longer exist.
type SavedOutfit struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Season    string         `json:"season"`
	DateAdded string         `json:"dateAdded"`
	Items     []ClothingItem `json:"-"`
	ItemIDs   []int          `json:"itemIds"`
	Layout    []LayoutEntry  `json:"layout,omitempty"`
}

// DanglingItemIDs returns the ids that did not resolve to a decoded item
func (o SavedOutfit) DanglingItemIDs() []int {
	present := make(map[int]bool, len(o.Items))
	for _, item := range o.Items {
		present[item.ID] = true
	}
	var dangling []int
	for _, id := range o.ItemIDs {
		if !present[id] {
			dangling = append(dangling, id)
		}
	}
	return dangling
}

// OutfitDraft represents the data sent to the store when saving an outfit
type OutfitDraft struct {
	Name      string
	DateAdded string // dd-MM-yyyy
	Season    string
	ItemIDs   []int
	Layout    []LayoutEntry
}

// OutfitResponse is the API view of a SavedOutfit
type OutfitResponse struct {
	SavedOutfit
	Items           []ClothingItemResponse `json:"items"`
	DanglingItemIDs []int                  `json:"danglingItemIds,omitempty"`
	PreviewURL      string                 `json:"previewUrl"`
}

// NewOutfitResponse builds the API view of an outfit
func NewOutfitResponse(outfit SavedOutfit) OutfitResponse {
	items := make([]ClothingItemResponse, 0, len(outfit.Items))
	for _, item := range outfit.Items {
		items = append(items, NewClothingItemResponse(item))
	}
	resp := OutfitResponse{
		SavedOutfit:     outfit,
		Items:           items,
		DanglingItemIDs: outfit.DanglingItemIDs(),
		PreviewURL:      outfitPreviewPath(outfit.ID),
	}
	if resp.ItemIDs == nil {
		resp.ItemIDs = []int{}
	}
	return resp
}
