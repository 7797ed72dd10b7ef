package bridge

import (
	"context"
	"fmt"
	"time"

	"dress-diary/models"
	"dress-diary/repository"
	"dress-diary/suggestion"
)

// StoreBridge implements Store over the Postgres repositories
type StoreBridge struct {
	items       repository.ItemRepositoryInterface
	outfits     repository.OutfitRepositoryInterface
	suggestions *suggestion.Engine
	now         func() time.Time
}

// Ensure StoreBridge implements Store
var _ Store = (*StoreBridge)(nil)

// NewStoreBridge creates a new StoreBridge
func NewStoreBridge(items repository.ItemRepositoryInterface, outfits repository.OutfitRepositoryInterface, suggestions *suggestion.Engine) *StoreBridge {
	return &StoreBridge{
		items:       items,
		outfits:     outfits,
		suggestions: suggestions,
		now:         time.Now,
	}
}

// FetchClothingItems returns the catalog of user
func (b *StoreBridge) FetchClothingItems(ctx context.Context, user string) ([]models.Record, error) {
	return b.items.ListByUser(ctx, user)
}

// FetchOutfits returns every outfit of user
func (b *StoreBridge) FetchOutfits(ctx context.Context, user string) ([]models.Record, error) {
	return b.outfits.ListByUser(ctx, user, "")
}

// FetchAndFilterOutfits returns the outfits of user labelled season, case-insensitively
func (b *StoreBridge) FetchAndFilterOutfits(ctx context.Context, user, season string) ([]models.Record, error) {
	return b.outfits.ListByUser(ctx, user, season)
}

// SaveOutfit stores an outfit and returns its id
func (b *StoreBridge) SaveOutfit(ctx context.Context, user string, draft models.OutfitDraft) (string, error) {
	if len(draft.ItemIDs) == 0 {
		return "", fmt.Errorf("outfit %q has no items", draft.Name)
	}
	return b.outfits.Insert(ctx, user, draft)
}

// SaveClothingItem stores a clothing item and returns its id
func (b *StoreBridge) SaveClothingItem(ctx context.Context, user string, draft models.ClothingItemDraft) (int, error) {
	return b.items.Insert(ctx, user, draft)
}

// ClothingItemImage returns the stored photo of one item
func (b *StoreBridge) ClothingItemImage(ctx context.Context, user string, id int) ([]byte, error) {
	return b.items.GetImage(ctx, user, id)
}

// HasDriveFile reports whether a Drive photo was already imported
func (b *StoreBridge) HasDriveFile(ctx context.Context, user, driveFileID string) (bool, error) {
	return b.items.ExistsByDriveFileID(ctx, user, driveFileID)
}

// DeleteClothingItem removes one item
func (b *StoreBridge) DeleteClothingItem(ctx context.Context, user string, id int) error {
	return b.items.Delete(ctx, user, id)
}

// DeleteOutfit removes one outfit
func (b *StoreBridge) DeleteOutfit(ctx context.Context, user, id string) error {
	return b.outfits.Delete(ctx, user, id)
}

// TodaySuggestion returns the outfit suggested for today, picked among the
// outfits of the current season
func (b *StoreBridge) TodaySuggestion(ctx context.Context, user string) (models.Record, bool, error) {
	outfits, err := b.outfits.ListByUser(ctx, user, "")
	if err != nil {
		return nil, false, err
	}

	seasonOf := func(i int) string {
		season, _ := outfits[i]["season"].(string)
		return season
	}
	idx, ok := b.suggestions.Pick(len(outfits), seasonOf, b.now())
	if !ok {
		return nil, false, nil
	}
	return outfits[idx], true, nil
}

// ClothingItemCount returns the number of items of user
func (b *StoreBridge) ClothingItemCount(ctx context.Context, user string) (int, error) {
	return b.items.Count(ctx, user)
}

// OutfitCount returns the number of outfits of user
func (b *StoreBridge) OutfitCount(ctx context.Context, user string) (int, error) {
	return b.outfits.Count(ctx, user)
}
