package repository

import (
	"context"

	"dress-diary/models"
)

// ItemRepositoryInterface defines the contract for clothing item repository operations
type ItemRepositoryInterface interface {
	ListByUser(ctx context.Context, username string) ([]models.Record, error)
	GetImage(ctx context.Context, username string, id int) ([]byte, error)
	Insert(ctx context.Context, username string, draft models.ClothingItemDraft) (int, error)
	Delete(ctx context.Context, username string, id int) error
	Count(ctx context.Context, username string) (int, error)
	ExistsByDriveFileID(ctx context.Context, username, driveFileID string) (bool, error)
}

// OutfitRepositoryInterface defines the contract for outfit repository operations
type OutfitRepositoryInterface interface {
	ListByUser(ctx context.Context, username, season string) ([]models.Record, error)
	Insert(ctx context.Context, username string, draft models.OutfitDraft) (string, error)
	Delete(ctx context.Context, username, id string) error
	Count(ctx context.Context, username string) (int, error)
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, username, name, password string) error
	Get(ctx context.Context, username string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	UpdateLogin(ctx context.Context, username string, streak int, lastLogin string) error
	SetDarkMode(ctx context.Context, username string, enabled bool) error
}
