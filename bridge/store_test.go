package bridge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dress-diary/models"
	"dress-diary/suggestion"
)

func newTestStore(t *testing.T, outfits *fakeOutfits, now time.Time) *StoreBridge {
	t.Helper()
	engine, err := suggestion.NewEngine("")
	require.NoError(t, err)
	b := NewStoreBridge(nil, outfits, engine)
	b.now = func() time.Time { return now }
	return b
}

func TestStoreBridge_TodaySuggestion(t *testing.T) {
	outfits := &fakeOutfits{records: []models.Record{
		{"id": "a", "season": "Summer"},
		{"id": "b", "season": "autumn"},
		{"id": "c", "season": "winter"},
	}}
	b := newTestStore(t, outfits, time.Date(2024, time.October, 17, 9, 0, 0, 0, time.UTC))

	rec, ok, err := b.TodaySuggestion(context.Background(), "ana")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b", rec["id"])
}

func TestStoreBridge_TodaySuggestionNone(t *testing.T) {
	outfits := &fakeOutfits{records: []models.Record{{"id": "a", "season": "summer"}}}
	b := newTestStore(t, outfits, time.Date(2024, time.January, 3, 9, 0, 0, 0, time.UTC))

	_, ok, err := b.TodaySuggestion(context.Background(), "ana")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreBridge_SaveOutfitRequiresItems(t *testing.T) {
	outfits := &fakeOutfits{}
	b := newTestStore(t, outfits, time.Now())

	_, err := b.SaveOutfit(context.Background(), "ana", models.OutfitDraft{Name: "empty"})
	assert.Error(t, err)
	assert.Empty(t, outfits.inserted)

	id, err := b.SaveOutfit(context.Background(), "ana", models.OutfitDraft{Name: "x", ItemIDs: []int{1}})
	require.NoError(t, err)
	assert.Equal(t, "outfit-1", id)
}
