package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"dress-diary/models"
	"dress-diary/repository"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{G: 180, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

type fakeStore struct {
	items        []models.Record
	outfits      []models.Record
	savedOutfits []models.OutfitDraft
	savedItems   []models.ClothingItemDraft
	driveFiles   map[string]bool
	saveErr      error
	fetchErr     error
	suggestion   models.Record
}

func (f *fakeStore) FetchClothingItems(context.Context, string) ([]models.Record, error) {
	return f.items, f.fetchErr
}

func (f *fakeStore) FetchOutfits(context.Context, string) ([]models.Record, error) {
	return f.outfits, f.fetchErr
}

func (f *fakeStore) FetchAndFilterOutfits(_ context.Context, _ string, season string) ([]models.Record, error) {
	var out []models.Record
	for _, rec := range f.outfits {
		if rec["season"] == season {
			out = append(out, rec)
		}
	}
	return out, f.fetchErr
}

func (f *fakeStore) SaveOutfit(_ context.Context, _ string, draft models.OutfitDraft) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.savedOutfits = append(f.savedOutfits, draft)
	return "outfit-1", nil
}

func (f *fakeStore) SaveClothingItem(_ context.Context, _ string, draft models.ClothingItemDraft) (int, error) {
	if f.saveErr != nil {
		return 0, f.saveErr
	}
	f.savedItems = append(f.savedItems, draft)
	return len(f.savedItems), nil
}

func (f *fakeStore) ClothingItemImage(context.Context, string, int) ([]byte, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeStore) HasDriveFile(_ context.Context, _ string, id string) (bool, error) {
	return f.driveFiles[id], nil
}

func (f *fakeStore) DeleteClothingItem(context.Context, string, int) error { return nil }

func (f *fakeStore) DeleteOutfit(context.Context, string, string) error { return nil }

func (f *fakeStore) TodaySuggestion(context.Context, string) (models.Record, bool, error) {
	return f.suggestion, f.suggestion != nil, nil
}

func (f *fakeStore) ClothingItemCount(context.Context, string) (int, error) { return len(f.items), nil }

func (f *fakeStore) OutfitCount(context.Context, string) (int, error) { return len(f.outfits), nil }

type fakeDrive struct {
	files     []DriveFile
	data      map[string][]byte
	downloads int
}

func (f *fakeDrive) ListImages(context.Context, string) ([]DriveFile, error) {
	return f.files, nil
}

func (f *fakeDrive) DownloadImage(_ context.Context, id string) ([]byte, error) {
	f.downloads++
	data, ok := f.data[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return data, nil
}
