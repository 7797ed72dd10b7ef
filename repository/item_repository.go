package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"dress-diary/models"
	"dress-diary/utils"
)

// itemColumns selects a clothing item under the field names of the store contract
const itemColumns = `
		ci.id AS id,
		ci.category AS category,
		ci.color AS color,
		ci.materials::text AS materials,
		ci.subcategory AS subcategory,
		ci.image AS image,
		ci.pant_length AS "pantLength",
		ci.pant_waist AS "pantWaist",
		ci.jacket_waterproof AS "jacketWaterproof",
		ci.top_sleeve_type AS "topSleeveType",
		ci.top_neckline AS "topNeckline",
		ci.shoe_size AS "shoeSize"`

// ItemRepository handles database operations for clothing items
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(conn *sql.DB) *ItemRepository {
	return &ItemRepository{db: conn}
}

// Ensure ItemRepository implements ItemRepositoryInterface
var _ ItemRepositoryInterface = (*ItemRepository)(nil)

// ListByUser returns every clothing item of username as store records, oldest first
func (r *ItemRepository) ListByUser(ctx context.Context, username string) ([]models.Record, error) {
	log.Debugf("🔍 Listing clothing items of %s", username)

	query := `SELECT` + itemColumns + `
		FROM clothing_items ci
		WHERE ci.username = $1
		ORDER BY ci.id`

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		log.Errorf("❌ Error listing clothing items: %v", err)
		return nil, fmt.Errorf("failed to list clothing items: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		log.Errorf("❌ Error reading clothing items: %v", err)
		return nil, err
	}

	log.Debugf("✓ Found %d clothing items", len(records))
	return records, nil
}

// GetImage returns the stored photo of one item
func (r *ItemRepository) GetImage(ctx context.Context, username string, id int) ([]byte, error) {
	var image []byte
	query := `SELECT image FROM clothing_items WHERE username = $1 AND id = $2`
	err := r.db.QueryRowContext(ctx, query, username, id).Scan(&image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item image: %w", err)
	}
	if len(image) == 0 {
		return nil, ErrNotFound
	}
	return image, nil
}

// Insert saves a clothing item and returns its id.
// Only the fields relevant to the draft's category are stored.
func (r *ItemRepository) Insert(ctx context.Context, username string, draft models.ClothingItemDraft) (int, error) {
	materials := draft.Materials
	if materials == nil {
		materials = []string{}
	}
	materialsJSON, err := json.Marshal(materials)
	if err != nil {
		return 0, fmt.Errorf("failed to encode materials: %w", err)
	}

	var (
		pantLength       *float64
		pantWaist        *string
		jacketWaterproof *bool
		topSleeveType    *string
		topNeckline      *string
		shoeSize         *float64
	)
	switch draft.Category {
	case models.CategoryPants:
		pantLength = utils.RoundPtrToOneDecimal(draft.PantLength)
		pantWaist = draft.PantWaist
	case models.CategoryJacket:
		jacketWaterproof = draft.JacketWaterproof
	case models.CategoryTop:
		topSleeveType = draft.TopSleeveType
		topNeckline = draft.TopNeckline
	case models.CategoryShoes:
		shoeSize = utils.RoundPtrToOneDecimal(draft.ShoeSize)
	}

	var driveFileID *string
	if draft.DriveFileID != "" {
		driveFileID = &draft.DriveFileID
	}

	query := `
		INSERT INTO clothing_items (username, category, color, materials, subcategory, image,
			pant_length, pant_waist, jacket_waterproof, top_sleeve_type, top_neckline, shoe_size, drive_file_id)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`

	var id int
	err = r.db.QueryRowContext(ctx, query,
		username, draft.Category, draft.Color, string(materialsJSON), draft.Subcategory, draft.Image,
		pantLength, pantWaist, jacketWaterproof, topSleeveType, topNeckline, shoeSize, driveFileID,
	).Scan(&id)
	if err != nil {
		log.Errorf("❌ Error inserting clothing item: %v", err)
		return 0, fmt.Errorf("failed to insert clothing item: %w", err)
	}

	log.Infof("💾 Saved clothing item %d (%s) for %s", id, draft.Category, username)
	return id, nil
}

// Delete removes one item. Outfits that reference it keep the dangling id.
func (r *ItemRepository) Delete(ctx context.Context, username string, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clothing_items WHERE username = $1 AND id = $2`, username, id)
	if err != nil {
		return fmt.Errorf("failed to delete clothing item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete clothing item: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of items of username
func (r *ItemRepository) Count(ctx context.Context, username string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clothing_items WHERE username = $1`, username).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count clothing items: %w", err)
	}
	return count, nil
}

// ExistsByDriveFileID reports whether a Drive photo was already imported for username
func (r *ItemRepository) ExistsByDriveFileID(ctx context.Context, username, driveFileID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM clothing_items WHERE username = $1 AND drive_file_id = $2)`
	err := r.db.QueryRowContext(ctx, query, username, driveFileID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check drive file: %w", err)
	}
	return exists, nil
}
