package models

// Category values the client knows about. Category is free-form on the wire
// and these are not enforced.
const (
	CategoryPants  = "pants"
	CategoryJacket = "jacket"
	CategoryTop    = "top"
	CategoryShoes  = "shoes"
)

// IDSource tells where an item identity came from
type IDSource int

const (
	// IDFromStore means the store supplied the id
	IDFromStore IDSource = iota
	// IDFromFallback means the decoder used the record position because the store omitted the id.
	// Such ids are only stable for the lifetime of one fetch.
	IDFromFallback
)

// ClothingItem represents a decoded catalog entry.
// Category-specific fields are pointers: nil means the store did not send them,
// which is never the same as zero or false.
type ClothingItem struct {
	ID          int      `json:"id"`
	IDSource    IDSource `json:"-"`
	Category    string   `json:"category"`
	Color       string   `json:"color"`
	Materials   []string `json:"materials"`
	Subcategory string   `json:"subcategory"`
	Image       Image    `json:"-"`

	PantLength       *float64 `json:"pantLength,omitempty"`
	PantWaist        *string  `json:"pantWaist,omitempty"`
	JacketWaterproof *bool    `json:"jacketWaterproof,omitempty"`
	TopSleeveType    *string  `json:"topSleeveType,omitempty"`
	TopNeckline      *string  `json:"topNeckline,omitempty"`
	ShoeSize         *float64 `json:"shoeSize,omitempty"`
}

// HasAuthoritativeID reports whether ID was assigned by the store
func (c ClothingItem) HasAuthoritativeID() bool {
	return c.IDSource == IDFromStore
}

// ClothingItemDraft represents the fields needed to save a new clothing item.
// Only the fields relevant to Category are persisted.
type ClothingItemDraft struct {
	Color            string   `json:"color"`
	Materials        []string `json:"materials"`
	Category         string   `json:"category"`
	Subcategory      string   `json:"subcategory"`
	PantLength       *float64 `json:"pantLength,omitempty"`
	PantWaist        *string  `json:"pantWaist,omitempty"`
	JacketWaterproof *bool    `json:"jacketWaterproof,omitempty"`
	TopSleeveType    *string  `json:"topSleeveType,omitempty"`
	TopNeckline      *string  `json:"topNeckline,omitempty"`
	ShoeSize         *float64 `json:"shoeSize,omitempty"`
	Image            []byte   `json:"image,omitempty"`       // base64 in JSON
	DriveFileID      string   `json:"driveFileId,omitempty"` // alternative image source
}

// ClothingItemResponse is the API view of a ClothingItem
type ClothingItemResponse struct {
	ClothingItem
	ImageURL    string `json:"imageUrl,omitempty"`
	Provisional bool   `json:"provisional,omitempty"`
}

// NewClothingItemResponse builds the API view of an item.
// Items with a fallback id get no image URL since the id cannot address them.
func NewClothingItemResponse(item ClothingItem) ClothingItemResponse {
	resp := ClothingItemResponse{ClothingItem: item, Provisional: !item.HasAuthoritativeID()}
	if resp.Materials == nil {
		resp.Materials = []string{}
	}
	if item.HasAuthoritativeID() && !item.Image.IsEmpty() {
		resp.ImageURL = itemImagePath(item.ID)
	}
	return resp
}

// SaveItemResponse represents the response after saving an item
type SaveItemResponse struct {
	ID int `json:"id"`
}
