package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"dress-diary/bridge"
	"dress-diary/closet"
	"dress-diary/decoder"
	"dress-diary/models"
)

// ClosetService serves the decoded catalog of a user
type ClosetService struct {
	store   bridge.Store
	decoder *decoder.RecordDecoder
	drive   DriveServiceInterface
	images  ImageOptions
}

// NewClosetService creates a new ClosetService. drive may be nil when Drive
// credentials are not configured.
func NewClosetService(store bridge.Store, dec *decoder.RecordDecoder, drive DriveServiceInterface, images ImageOptions) *ClosetService {
	return &ClosetService{
		store:   store,
		decoder: dec,
		drive:   drive,
		images:  images,
	}
}

// Catalog fetches and decodes the items of user. Undecodable records are skipped.
func (s *ClosetService) Catalog(ctx context.Context, user string) ([]models.ClothingItem, error) {
	records, err := s.store.FetchClothingItems(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clothing items: %w", err)
	}
	return s.decoder.DecodeItems(records), nil
}

// FilteredCatalog returns the items of user matching params, in catalog order
func (s *ClosetService) FilteredCatalog(ctx context.Context, user string, params closet.FilterParams) ([]models.ClothingItem, error) {
	items, err := s.Catalog(ctx, user)
	if err != nil {
		return nil, err
	}
	filtered := closet.Filter(items, params)
	log.Debugf("🔍 Closet filter kept %d of %d items", len(filtered), len(items))
	return filtered, nil
}

// ItemImage returns the stored photo of one item
func (s *ClosetService) ItemImage(ctx context.Context, user string, id int) ([]byte, error) {
	return s.store.ClothingItemImage(ctx, user, id)
}

// AddItem validates a draft, optimizes its photo and saves it.
// The photo comes from draft.Image, or from Drive when only DriveFileID is set.
func (s *ClosetService) AddItem(ctx context.Context, user string, draft models.ClothingItemDraft) (int, error) {
	draft.Color = strings.TrimSpace(draft.Color)
	draft.Category = closet.CategoryFromLabel(draft.Category)
	draft.Subcategory = strings.TrimSpace(draft.Subcategory)

	switch {
	case draft.Color == "":
		return 0, fmt.Errorf("%w: color is required", ErrInvalidItem)
	case draft.Category == "":
		return 0, fmt.Errorf("%w: category is required", ErrInvalidItem)
	case len(draft.Materials) == 0:
		return 0, fmt.Errorf("%w: at least one material is required", ErrInvalidItem)
	case len(draft.Image) == 0 && draft.DriveFileID == "":
		return 0, fmt.Errorf("%w: an image is required", ErrInvalidItem)
	}

	if len(draft.Image) == 0 {
		if s.drive == nil {
			return 0, ErrImportUnavailable
		}
		data, err := s.drive.DownloadImage(ctx, draft.DriveFileID)
		if err != nil {
			return 0, err
		}
		draft.Image = data
	}

	optimized, err := OptimizeImage(draft.Image, s.images)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}
	draft.Image = optimized

	return s.store.SaveClothingItem(ctx, user, draft)
}

// DeleteItem removes one item. Outfits keep referencing its id.
func (s *ClosetService) DeleteItem(ctx context.Context, user string, id int) error {
	return s.store.DeleteClothingItem(ctx, user, id)
}

// FilterOptions lists the selectable values of the closet filter
func (s *ClosetService) FilterOptions() models.FilterOptionsResponse {
	return models.FilterOptionsResponse{
		Colors:     closet.Colors,
		Materials:  closet.Materials,
		Categories: closet.Categories,
	}
}
