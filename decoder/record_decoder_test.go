package decoder

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dress-diary/models"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecodeItem_MissingIdentity(t *testing.T) {
	d := NewRecordDecoder()

	records := []models.Record{
		{},
		{"category": "top"},
		{"id": "12"},
		{"id": nil, "color": "red"},
		{"id": true},
	}

	for _, rec := range records {
		_, err := d.DecodeItem(rec)
		assert.ErrorIs(t, err, ErrMissingIdentity, "record %v", rec)
	}
}

func TestDecodeItem_IdentityOrder(t *testing.T) {
	d := NewRecordDecoder()

	item, err := d.DecodeItem(models.Record{"id": 7})
	require.NoError(t, err)
	assert.Equal(t, 7, item.ID)
	assert.True(t, item.HasAuthoritativeID())

	item, err = d.DecodeItem(models.Record{"id": int64(42)})
	require.NoError(t, err)
	assert.Equal(t, 42, item.ID)

	item, err = d.DecodeItem(models.Record{"id": json.Number("9")})
	require.NoError(t, err)
	assert.Equal(t, 9, item.ID)

	item, err = d.DecodeItem(models.Record{"id": float64(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, item.ID)

	item, err = d.DecodeItemAt(models.Record{"color": "red"}, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, item.ID)
	assert.False(t, item.HasAuthoritativeID())

	item, err = d.DecodeItemAt(models.Record{"id": int64(11)}, 5)
	require.NoError(t, err)
	assert.Equal(t, 11, item.ID)
	assert.True(t, item.HasAuthoritativeID())
}

func TestDecodeItem_OutOfRangeIdentity(t *testing.T) {
	d := NewRecordDecoder()

	for name, id := range map[string]interface{}{
		"huge float":    1e300,
		"negative huge": -1e300,
		"huge uint64":   uint64(math.MaxUint64),
		"infinity":      math.Inf(1),
		"nan":           math.NaN(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := d.DecodeItem(models.Record{"id": id})
			assert.ErrorIs(t, err, ErrMissingIdentity)

			item, err := d.DecodeItemAt(models.Record{"id": id}, 4)
			require.NoError(t, err)
			assert.Equal(t, 4, item.ID)
			assert.False(t, item.HasAuthoritativeID())
		})
	}
}

func TestDecodeItem_StringDefaults(t *testing.T) {
	d := NewRecordDecoder()

	item, err := d.DecodeItem(models.Record{"id": 1, "color": 12})
	require.NoError(t, err)

	assert.Equal(t, "", item.Category)
	assert.Equal(t, "", item.Color)
	assert.Equal(t, "", item.Subcategory)
	assert.Nil(t, item.TopSleeveType)
	assert.Nil(t, item.TopNeckline)
	assert.NotNil(t, item.Materials)
	assert.Empty(t, item.Materials)
}

func TestDecodeItem_NumericFields(t *testing.T) {
	d := NewRecordDecoder()

	tests := []struct {
		name  string
		value interface{}
		want  *float64
	}{
		{"native float", 42.5, ptr(42.5)},
		{"float32", float32(40), ptr(40)},
		{"int64", int64(38), ptr(38)},
		{"json number", json.Number("41.5"), ptr(41.5)},
		{"dot string", "42.5", ptr(42.5)},
		{"comma string", "42,5", ptr(42.5)},
		{"garbage string", "forty", nil},
		{"bool", true, nil},
		{"missing", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := d.DecodeItem(models.Record{"id": 1, "shoeSize": tt.value, "pantLength": tt.value})
			require.NoError(t, err)
			assert.Equal(t, tt.want, item.ShoeSize)
			assert.Equal(t, tt.want, item.PantLength)
		})
	}
}

func TestDecodeItem_CommaAndDotDecimalAgree(t *testing.T) {
	d := NewRecordDecoder()

	for _, pair := range [][2]string{{"42,5", "42.5"}, {"0,1", "0.1"}, {"7", "7"}, {"-3,25", "-3.25"}} {
		comma, err := d.DecodeItem(models.Record{"id": 1, "pantLength": pair[0]})
		require.NoError(t, err)
		dot, err := d.DecodeItem(models.Record{"id": 1, "pantLength": pair[1]})
		require.NoError(t, err)
		require.NotNil(t, comma.PantLength)
		assert.Equal(t, *dot.PantLength, *comma.PantLength)
	}
}

func TestDecodeItem_PantWaist(t *testing.T) {
	d := NewRecordDecoder()

	item, err := d.DecodeItem(models.Record{"id": 1, "pantWaist": "32/34"})
	require.NoError(t, err)
	require.NotNil(t, item.PantWaist)
	assert.Equal(t, "32/34", *item.PantWaist)

	item, err = d.DecodeItem(models.Record{"id": 1, "pantWaist": int64(80)})
	require.NoError(t, err)
	require.NotNil(t, item.PantWaist)
	assert.Equal(t, "80.0", *item.PantWaist)

	item, err = d.DecodeItem(models.Record{"id": 1, "pantWaist": 81.26})
	require.NoError(t, err)
	require.NotNil(t, item.PantWaist)
	assert.Equal(t, "81.3", *item.PantWaist)

	item, err = d.DecodeItem(models.Record{"id": 1})
	require.NoError(t, err)
	assert.Nil(t, item.PantWaist)
}

func TestDecodeItem_Waterproof(t *testing.T) {
	d := NewRecordDecoder()

	tests := []struct {
		name  string
		value interface{}
		want  *bool
	}{
		{"native true", true, boolPtr(true)},
		{"native false", false, boolPtr(false)},
		{"numeric one", int64(1), boolPtr(true)},
		{"numeric zero", int64(0), boolPtr(false)},
		{"float", 0.5, boolPtr(true)},
		{"string", "yes", nil},
		{"missing", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := d.DecodeItem(models.Record{"id": 1, "jacketWaterproof": tt.value})
			require.NoError(t, err)
			assert.Equal(t, tt.want, item.JacketWaterproof)
		})
	}
}

func TestDecodeItem_Materials(t *testing.T) {
	d := NewRecordDecoder()

	item, err := d.DecodeItem(models.Record{"id": 1, "materials": []string{"cotton", "wool"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"cotton", "wool"}, item.Materials)

	item, err = d.DecodeItem(models.Record{"id": 1, "materials": []interface{}{"denim", "leather"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"denim", "leather"}, item.Materials)

	item, err = d.DecodeItem(models.Record{"id": 1, "materials": []interface{}{"denim", 3}})
	require.NoError(t, err)
	assert.Equal(t, []string{}, item.Materials)

	item, err = d.DecodeItem(models.Record{"id": 1, "materials": "cotton"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, item.Materials)
}

func TestDecodeItem_Image(t *testing.T) {
	d := NewRecordDecoder()

	item, err := d.DecodeItem(models.Record{"id": 1, "image": []byte{}})
	require.NoError(t, err)
	assert.True(t, item.Image.IsEmpty())

	item, err = d.DecodeItem(models.Record{"id": 1, "image": []byte("not an image")})
	require.NoError(t, err)
	assert.True(t, item.Image.IsEmpty())

	item, err = d.DecodeItem(models.Record{"id": 1})
	require.NoError(t, err)
	assert.True(t, item.Image.IsEmpty())

	data := pngBytes(t, 4, 3)
	item, err = d.DecodeItem(models.Record{"id": 1, "image": data})
	require.NoError(t, err)
	require.False(t, item.Image.IsEmpty())
	assert.Equal(t, "png", item.Image.Format)
	assert.Equal(t, 4, item.Image.Bitmap.Bounds().Dx())
	assert.Equal(t, 3, item.Image.Bitmap.Bounds().Dy())
}

func TestDecodeItems_SkipsNothingWithFallback(t *testing.T) {
	d := NewRecordDecoder()

	items := d.DecodeItems([]models.Record{
		{"id": int64(10), "color": "red"},
		{"color": "blue"},
		{"id": int64(12), "color": "green"},
	})

	require.Len(t, items, 3)
	assert.Equal(t, 10, items[0].ID)
	assert.Equal(t, 1, items[1].ID)
	assert.False(t, items[1].HasAuthoritativeID())
	assert.Equal(t, 12, items[2].ID)
}

func TestDecodeOutfit(t *testing.T) {
	d := NewRecordDecoder()

	rec := models.Record{
		"id":        "a1b2",
		"name":      "Sunday",
		"season":    "summer",
		"dateAdded": "05-06-2025",
		"items": []interface{}{
			map[string]interface{}{"id": int64(1), "color": "red"},
			map[string]interface{}{"id": int64(2), "color": "blue"},
		},
		"itemIds": []interface{}{int64(1), int64(2), json.Number("99")},
		"layout": []interface{}{
			map[string]interface{}{"itemId": int64(1), "normalizedX": 0.25, "normalizedY": 0.5},
			map[string]interface{}{"itemId": "bad", "normalizedX": 0.25, "normalizedY": 0.5},
		},
	}

	outfit, err := d.DecodeOutfit(rec)
	require.NoError(t, err)

	assert.Equal(t, "a1b2", outfit.ID)
	assert.Equal(t, "Sunday", outfit.Name)
	assert.Equal(t, "summer", outfit.Season)
	assert.Equal(t, "05-06-2025", outfit.DateAdded)
	require.Len(t, outfit.Items, 2)
	assert.Equal(t, []int{1, 2, 99}, outfit.ItemIDs)
	assert.Equal(t, []int{99}, outfit.DanglingItemIDs())
	assert.Equal(t, []models.LayoutEntry{{ItemID: 1, NormalizedX: 0.25, NormalizedY: 0.5}}, outfit.Layout)
}

func TestDecodeOutfit_Tolerance(t *testing.T) {
	d := NewRecordDecoder()

	_, err := d.DecodeOutfit(models.Record{"id": 12, "name": "x"})
	assert.ErrorIs(t, err, ErrMissingIdentity)

	_, err = d.DecodeOutfit(models.Record{"id": "", "name": "x"})
	assert.ErrorIs(t, err, ErrMissingIdentity)

	outfit, err := d.DecodeOutfit(models.Record{
		"id":      []byte("b-7"),
		"items":   "nope",
		"itemIds": []interface{}{int64(1), "two"},
	})
	require.NoError(t, err)
	assert.Equal(t, "b-7", outfit.ID)
	assert.Empty(t, outfit.Items)
	assert.Empty(t, outfit.ItemIDs)
	assert.NotNil(t, outfit.ItemIDs)

	outfit, err = d.DecodeOutfit(models.Record{"id": "c", "itemIds": []int{4, 5}})
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, outfit.ItemIDs)
}

func TestDecodeOutfits_SkipsMissingIdentity(t *testing.T) {
	d := NewRecordDecoder()

	outfits := d.DecodeOutfits([]models.Record{
		{"id": "first"},
		{"name": "no id"},
		{"id": "third"},
	})

	require.Len(t, outfits, 2)
	assert.Equal(t, "first", outfits[0].ID)
	assert.Equal(t, "third", outfits[1].ID)
}

func ptr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }
