package service

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"dress-diary/bridge"
	"dress-diary/models"
	"dress-diary/utils"
)

// ImportService imports clothing photos from a Google Drive folder
type ImportService struct {
	drive  DriveServiceInterface
	store  bridge.Store
	images ImageOptions
}

// NewImportService creates a new ImportService. drive may be nil when Drive
// credentials are not configured; every import then fails with ErrImportUnavailable.
func NewImportService(drive DriveServiceInterface, store bridge.Store, images ImageOptions) *ImportService {
	return &ImportService{
		drive:  drive,
		store:  store,
		images: images,
	}
}

// ImportFolder saves every photo of folderID as a clothing item of user.
// Photos already imported are skipped; photos whose name does not follow
// COLOR-CATEGORY-MATERIALS[-SUBCATEGORY] are skipped and reported.
func (s *ImportService) ImportFolder(ctx context.Context, user, folderID string) (*models.DriveImportResponse, error) {
	if s.drive == nil {
		return nil, ErrImportUnavailable
	}

	log.Infof("🔄 Starting Drive import for %s from folder %s", user, folderID)

	files, err := s.drive.ListImages(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images from Drive: %w", err)
	}

	result := &models.DriveImportResponse{Total: len(files), Errors: []string{}}
	log.Infof("📦 Processing %d images from Google Drive", len(files))

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		draft, err := utils.ParseFileName(file.Name)
		if err != nil {
			log.Warnf("⚠️  Skipping %s: %v", file.Name, err)
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.Name, err))
			continue
		}

		exists, err := s.store.HasDriveFile(ctx, user, file.ID)
		if err != nil {
			log.Errorf("❌ Error checking existence for drive_file_id %s: %v", file.ID, err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.Name, err))
			continue
		}
		if exists {
			log.Debugf("⏭️  Skipping %s (already imported)", file.Name)
			result.Skipped++
			continue
		}

		data, err := s.drive.DownloadImage(ctx, file.ID)
		if err != nil {
			msg := fmt.Sprintf("Failed to download image %s (%s): %v", file.Name, file.ID, err)
			log.Errorf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}

		optimized, err := OptimizeImage(data, s.images)
		if err != nil {
			msg := fmt.Sprintf("Failed to optimize image %s (%s): %v", file.Name, file.ID, err)
			log.Errorf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}

		draft.Image = optimized
		draft.DriveFileID = file.ID
		id, err := s.store.SaveClothingItem(ctx, user, *draft)
		if err != nil {
			msg := fmt.Sprintf("Failed to save %s: %v", file.Name, err)
			log.Errorf("❌ %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}

		log.Debugf("✓ Imported %s as item %d", file.Name, id)
		result.Imported++
	}

	log.Infof("🎉 Drive import completed: %d imported, %d skipped, %d failed out of %d total images",
		result.Imported, result.Skipped, result.Total-result.Imported-result.Skipped, result.Total)
	return result, nil
}
