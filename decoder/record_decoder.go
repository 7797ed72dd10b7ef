// Package decoder normalizes loosely-typed store records into clothing items
// and outfits.
//
// Every field is read through an ordered list of coercion attempts; the first
// representation that matches wins and anything else falls back to the field
// default. Fallbacks are silent: they absorb schema drift between store
// versions and are not errors. The only failure is a record without identity.
package decoder

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"dress-diary/metrics"
	"dress-diary/models"
)

// ErrMissingIdentity is returned when a record carries no usable id and no
// fallback index was supplied. Callers skip such records.
var ErrMissingIdentity = errors.New("record has no identity")

// Field names of the store contract
const (
	fieldID               = "id"
	fieldCategory         = "category"
	fieldColor            = "color"
	fieldMaterials        = "materials"
	fieldSubcategory      = "subcategory"
	fieldImage            = "image"
	fieldPantLength       = "pantLength"
	fieldPantWaist        = "pantWaist"
	fieldJacketWaterproof = "jacketWaterproof"
	fieldTopSleeveType    = "topSleeveType"
	fieldTopNeckline      = "topNeckline"
	fieldShoeSize         = "shoeSize"

	fieldName      = "name"
	fieldSeason    = "season"
	fieldDateAdded = "dateAdded"
	fieldItems     = "items"
	fieldItemIDs   = "itemIds"
	fieldLayout    = "layout"

	fieldLayoutItemID = "itemId"
	fieldLayoutX      = "normalizedX"
	fieldLayoutY      = "normalizedY"
)

// RecordDecoder decodes store records into domain entities
type RecordDecoder struct {
	decodeImage func([]byte) models.Image
}

// NewRecordDecoder creates a new RecordDecoder
func NewRecordDecoder() *RecordDecoder {
	return &RecordDecoder{decodeImage: DecodeImage}
}

// DecodeItem decodes a clothing item that must carry its own id
func (d *RecordDecoder) DecodeItem(rec models.Record) (models.ClothingItem, error) {
	return d.decodeItem(rec, 0, false)
}

// DecodeItemAt decodes a clothing item, using index as identity when the
// record has no id. Items decoded that way are flagged with IDFromFallback.
func (d *RecordDecoder) DecodeItemAt(rec models.Record, index int) (models.ClothingItem, error) {
	return d.decodeItem(rec, index, true)
}

func (d *RecordDecoder) decodeItem(rec models.Record, fallback int, hasFallback bool) (models.ClothingItem, error) {
	item := models.ClothingItem{IDSource: models.IDFromStore}

	id, ok := d.identity(rec)
	switch {
	case ok:
		item.ID = id
	case hasFallback:
		item.ID = fallback
		item.IDSource = models.IDFromFallback
	default:
		return models.ClothingItem{}, ErrMissingIdentity
	}

	item.Category = requiredString(rec, fieldCategory)
	item.Color = requiredString(rec, fieldColor)
	item.Subcategory = requiredString(rec, fieldSubcategory)
	item.Materials = d.materials(rec)
	item.Image = d.image(rec)

	item.PantLength = optionalFloat(rec, fieldPantLength)
	item.PantWaist = optionalOf[string](rec, fieldPantWaist, nativeString, oneDecimalString)
	item.JacketWaterproof = optionalOf[bool](rec, fieldJacketWaterproof, nativeBool, numericTruthiness)
	item.TopSleeveType = optionalOf[string](rec, fieldTopSleeveType, nativeString)
	item.TopNeckline = optionalOf[string](rec, fieldTopNeckline, nativeString)
	item.ShoeSize = optionalFloat(rec, fieldShoeSize)

	return item, nil
}

// DecodeItems decodes a fetched catalog. Each record's position is its
// fallback identity; records that still fail are logged and skipped.
func (d *RecordDecoder) DecodeItems(recs []models.Record) []models.ClothingItem {
	items := make([]models.ClothingItem, 0, len(recs))
	for idx, rec := range recs {
		item, err := d.DecodeItemAt(rec, idx)
		if err != nil {
			log.Warnf("⚠️  Skipping clothing item record %d: %v", idx, err)
			metrics.RecordDecodeSkip("item")
			continue
		}
		if !item.HasAuthoritativeID() {
			log.Debugf("🔍 Clothing item record %d has no id, using position as provisional id", idx)
		}
		items = append(items, item)
	}
	return items
}

// DecodeOutfit decodes an outfit record. The outfit id must come from the store.
func (d *RecordDecoder) DecodeOutfit(rec models.Record) (models.SavedOutfit, error) {
	id, ok := firstOf[string](valueOf(rec, fieldID), nativeString, bytesString, stringerString)
	if !ok || id == "" {
		return models.SavedOutfit{}, ErrMissingIdentity
	}

	outfit := models.SavedOutfit{
		ID:        id,
		Name:      requiredString(rec, fieldName),
		Season:    requiredString(rec, fieldSeason),
		DateAdded: requiredString(rec, fieldDateAdded),
		Items:     []models.ClothingItem{},
		ItemIDs:   []int{},
	}

	if nested, ok := nestedRecords(valueOf(rec, fieldItems)); ok {
		for idx, itemRec := range nested {
			item, err := d.DecodeItemAt(itemRec, idx)
			if err != nil {
				log.Warnf("⚠️  Skipping item %d of outfit %s: %v", idx, id, err)
				metrics.RecordDecodeSkip("outfit_item")
				continue
			}
			outfit.Items = append(outfit.Items, item)
		}
	}

	if ids, ok := firstOf[[]int](valueOf(rec, fieldItemIDs), intSlice, boxedIntSlice); ok {
		outfit.ItemIDs = ids
	}

	outfit.Layout = decodeLayout(valueOf(rec, fieldLayout))
	return outfit, nil
}

// DecodeOutfits decodes fetched outfits, skipping records without an id
func (d *RecordDecoder) DecodeOutfits(recs []models.Record) []models.SavedOutfit {
	outfits := make([]models.SavedOutfit, 0, len(recs))
	for idx, rec := range recs {
		outfit, err := d.DecodeOutfit(rec)
		if err != nil {
			log.Warnf("⚠️  Skipping outfit record %d: %v", idx, err)
			metrics.RecordDecodeSkip("outfit")
			continue
		}
		outfits = append(outfits, outfit)
	}
	return outfits
}

func (d *RecordDecoder) identity(rec models.Record) (int, bool) {
	return firstOf[int](valueOf(rec, fieldID), nativeInt, boxedInt)
}

func (d *RecordDecoder) materials(rec models.Record) []string {
	materials, ok := firstOf[[]string](valueOf(rec, fieldMaterials), stringSlice, interfaceStringSlice)
	if !ok || materials == nil {
		return []string{}
	}
	return materials
}

func (d *RecordDecoder) image(rec models.Record) models.Image {
	data, ok := bytesValue(valueOf(rec, fieldImage))
	if !ok {
		return models.EmptyImage
	}
	return d.decodeImage(data)
}

func decodeLayout(v interface{}) []models.LayoutEntry {
	entries, ok := nestedRecords(v)
	if !ok {
		return nil
	}
	layout := make([]models.LayoutEntry, 0, len(entries))
	for _, entry := range entries {
		itemID, ok := firstOf[int](valueOf(entry, fieldLayoutItemID), nativeInt, boxedInt)
		if !ok {
			continue
		}
		x, okX := firstOf[float64](valueOf(entry, fieldLayoutX), nativeFloat, boxedFloat, commaDecimalString)
		y, okY := firstOf[float64](valueOf(entry, fieldLayoutY), nativeFloat, boxedFloat, commaDecimalString)
		if !okX || !okY {
			continue
		}
		layout = append(layout, models.LayoutEntry{ItemID: itemID, NormalizedX: x, NormalizedY: y})
	}
	return layout
}

func valueOf(rec map[string]interface{}, key string) interface{} {
	if rec == nil {
		return nil
	}
	return rec[key]
}

// requiredString reads a string field that defaults to "" rather than absent
func requiredString(rec models.Record, key string) string {
	s, _ := firstOf[string](valueOf(rec, key), nativeString)
	return s
}

func optionalFloat(rec models.Record, key string) *float64 {
	return optionalOf[float64](rec, key, nativeFloat, boxedFloat, commaDecimalString)
}

// optionalOf reads a field that stays nil when no attempt matches
func optionalOf[T any](rec models.Record, key string, attempts ...coercion[T]) *T {
	v, ok := firstOf[T](valueOf(rec, key), attempts...)
	if !ok {
		return nil
	}
	return &v
}

func bytesString(v interface{}) (string, bool) {
	b, ok := v.([]byte)
	if !ok {
		return "", false
	}
	return string(b), true
}

func stringerString(v interface{}) (string, bool) {
	s, ok := v.(fmt.Stringer)
	if !ok {
		return "", false
	}
	return s.String(), true
}
