package service

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dress-diary/decoder"
	"dress-diary/models"
	"dress-diary/repository"
	"dress-diary/suggestion"
)

func outfitStore(t *testing.T) *fakeStore {
	return &fakeStore{outfits: []models.Record{
		{
			"id": "o1", "name": "Beach", "season": "summer", "dateAdded": "01-07-2024",
			"items": []interface{}{
				models.Record{"id": int64(3), "category": "top", "image": pngBytes(t, 16, 16)},
			},
			"itemIds": []interface{}{int64(3), int64(9)},
		},
		{"id": "o2", "name": "Office", "season": "autumn", "dateAdded": "02-10-2024"},
		{"name": "no id"},
	}}
}

func TestOutfitService_List(t *testing.T) {
	svc := NewOutfitService(outfitStore(t), decoder.NewRecordDecoder())

	outfits, err := svc.List(context.Background(), "ana", "")
	require.NoError(t, err)
	require.Len(t, outfits, 2)
	assert.Equal(t, []int{9}, outfits[0].DanglingItemIDs())

	summer, err := svc.List(context.Background(), "ana", "summer")
	require.NoError(t, err)
	require.Len(t, summer, 1)
	assert.Equal(t, "o1", summer[0].ID)
}

func TestOutfitService_Preview(t *testing.T) {
	svc := NewOutfitService(outfitStore(t), decoder.NewRecordDecoder())

	data, err := svc.Preview(context.Background(), "ana", "o1", 120)
	require.NoError(t, err)
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)

	_, err = svc.Preview(context.Background(), "ana", "missing", 120)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestOutfitService_TodaySuggestion(t *testing.T) {
	store := outfitStore(t)
	svc := NewOutfitService(store, decoder.NewRecordDecoder())

	_, ok, err := svc.TodaySuggestion(context.Background(), "ana")
	require.NoError(t, err)
	assert.False(t, ok)

	store.suggestion = store.outfits[1]
	outfit, ok, err := svc.TodaySuggestion(context.Background(), "ana")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Office", outfit.Name)
}

func TestLookbookService_RenderHTML(t *testing.T) {
	engine, err := suggestion.NewEngine("")
	require.NoError(t, err)
	outfits := NewOutfitService(outfitStore(t), decoder.NewRecordDecoder())
	svc := NewLookbookService(outfits, engine, "")
	svc.now = func() time.Time { return time.Date(2024, time.October, 17, 0, 0, 0, 0, time.UTC) }

	html, err := svc.RenderHTML(context.Background(), "ana")
	require.NoError(t, err)

	assert.Contains(t, html, "ana&#39;s lookbook")
	assert.Contains(t, html, "Beach")
	assert.Contains(t, html, "Summer · 01-07-2024 · 2 items")
	assert.Contains(t, html, `src="data:image/png;base64,`)
	assert.Equal(t, 1, strings.Count(html, `class="page"`))
}

func TestPaginateOutfits(t *testing.T) {
	entries := make([]lookbookEntry, 13)
	pages := paginateOutfits(entries)
	require.Len(t, pages, 3)
	assert.Len(t, pages[2], 1)
	assert.Empty(t, paginateOutfits(nil))
}
