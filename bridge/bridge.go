// Package bridge is the boundary between the wardrobe core and its store.
// Everything crossing it is a loosely-typed models.Record on the way in and a
// draft on the way out; the decoder package turns records into models.
package bridge

import (
	"context"

	"dress-diary/models"
)

// Bridge is the store contract the core consumes
type Bridge interface {
	FetchClothingItems(ctx context.Context, user string) ([]models.Record, error)
	FetchOutfits(ctx context.Context, user string) ([]models.Record, error)
	SaveOutfit(ctx context.Context, user string, draft models.OutfitDraft) (string, error)
	SaveClothingItem(ctx context.Context, user string, draft models.ClothingItemDraft) (int, error)
}

// Store is the full store surface used by the services
type Store interface {
	Bridge
	FetchAndFilterOutfits(ctx context.Context, user, season string) ([]models.Record, error)
	ClothingItemImage(ctx context.Context, user string, id int) ([]byte, error)
	HasDriveFile(ctx context.Context, user, driveFileID string) (bool, error)
	DeleteClothingItem(ctx context.Context, user string, id int) error
	DeleteOutfit(ctx context.Context, user, id string) error
	TodaySuggestion(ctx context.Context, user string) (models.Record, bool, error)
	ClothingItemCount(ctx context.Context, user string) (int, error)
	OutfitCount(ctx context.Context, user string) (int, error)
}

// Accounts is the user account surface of the store
type Accounts interface {
	CreateUser(ctx context.Context, username, name, password string) error
	LoginUser(ctx context.Context, username, password string) (*models.User, error)
	RecoverUser(ctx context.Context, username string) (*models.User, error)
	CurrentName(ctx context.Context, username string) (string, error)
	CurrentStreak(ctx context.Context, username string) (int, error)
	DarkMode(ctx context.Context, username string) (bool, error)
	SetDarkMode(ctx context.Context, username string, enabled bool) error
}
