package service

import (
	"bytes"
	"context"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dress-diary/closet"
	"dress-diary/decoder"
	"dress-diary/models"
)

func newClosetFixture(store *fakeStore, drive DriveServiceInterface) *ClosetService {
	return NewClosetService(store, decoder.NewRecordDecoder(), drive, ImageOptions{MaxDimension: 100, Quality: 80})
}

func TestClosetService_FilteredCatalogSkipsBadRecords(t *testing.T) {
	store := &fakeStore{items: []models.Record{
		{"id": int64(1), "color": "Red", "category": "top"},
		{"id": int64(2), "color": "blue", "category": "top"},
		{"id": "not-a-number", "color": "red"},
	}}
	svc := newClosetFixture(store, nil)

	items, err := svc.FilteredCatalog(context.Background(), "ana", closet.FilterParams{Colors: []string{"red"}})
	require.NoError(t, err)

	// the third record falls back to its position as a provisional id
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
	assert.False(t, items[1].HasAuthoritativeID())
}

func TestClosetService_AddItemValidation(t *testing.T) {
	svc := newClosetFixture(&fakeStore{}, nil)
	img := pngBytes(t, 10, 10)

	tests := map[string]models.ClothingItemDraft{
		"no color":     {Category: "top", Materials: []string{"cotton"}, Image: img},
		"no category":  {Color: "red", Materials: []string{"cotton"}, Image: img},
		"no materials": {Color: "red", Category: "top", Image: img},
		"no image":     {Color: "red", Category: "top", Materials: []string{"cotton"}},
		"bad image":    {Color: "red", Category: "top", Materials: []string{"cotton"}, Image: []byte("nope")},
	}
	for name, draft := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.AddItem(context.Background(), "ana", draft)
			assert.ErrorIs(t, err, ErrInvalidItem)
		})
	}
}

func TestClosetService_AddItemOptimizesImage(t *testing.T) {
	store := &fakeStore{}
	svc := newClosetFixture(store, nil)

	id, err := svc.AddItem(context.Background(), "ana", models.ClothingItemDraft{
		Color: " red ", Category: "Tops", Materials: []string{"cotton"}, Image: pngBytes(t, 300, 150),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	saved := store.savedItems[0]
	assert.Equal(t, "red", saved.Color)
	assert.Equal(t, "top", saved.Category)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(saved.Image))
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestClosetService_AddItemFromDrive(t *testing.T) {
	store := &fakeStore{}
	drive := &fakeDrive{data: map[string][]byte{"f1": pngBytes(t, 20, 20)}}
	svc := newClosetFixture(store, drive)

	_, err := svc.AddItem(context.Background(), "ana", models.ClothingItemDraft{
		Color: "red", Category: "top", Materials: []string{"cotton"}, DriveFileID: "f1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, drive.downloads)
	assert.Equal(t, "f1", store.savedItems[0].DriveFileID)

	noDrive := newClosetFixture(store, nil)
	_, err = noDrive.AddItem(context.Background(), "ana", models.ClothingItemDraft{
		Color: "red", Category: "top", Materials: []string{"cotton"}, DriveFileID: "f1",
	})
	assert.ErrorIs(t, err, ErrImportUnavailable)
}
