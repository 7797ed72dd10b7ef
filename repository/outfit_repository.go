package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"dress-diary/models"
	"dress-diary/utils"
)

// keys of an outfit member row that belong to the nested item record
var nestedItemKeys = []string{
	"id", "category", "color", "materials", "subcategory", "image",
	"pantLength", "pantWaist", "jacketWaterproof", "topSleeveType", "topNeckline", "shoeSize",
}

// OutfitRepository handles database operations for outfits
type OutfitRepository struct {
	db *sql.DB
}

// NewOutfitRepository creates a new OutfitRepository
func NewOutfitRepository(conn *sql.DB) *OutfitRepository {
	return &OutfitRepository{db: conn}
}

// Ensure OutfitRepository implements OutfitRepositoryInterface
var _ OutfitRepositoryInterface = (*OutfitRepository)(nil)

// ListByUser returns the outfits of username as store records, newest first.
// Each record carries "itemIds" in saved order, the nested "items" that still
// exist and the saved "layout". An empty season matches every outfit.
func (r *OutfitRepository) ListByUser(ctx context.Context, username, season string) ([]models.Record, error) {
	log.Debugf("🔍 Listing outfits of %s (season=%q)", username, season)

	query := `
		SELECT o.id::text AS id, o.name AS name, o.season AS season,
		       to_char(o.date_added, 'DD-MM-YYYY') AS "dateAdded"
		FROM outfits o
		WHERE o.username = $1`
	args := []interface{}{username}
	if season != "" {
		query += ` AND LOWER(o.season) = LOWER($2)`
		args = append(args, season)
	}
	query += ` ORDER BY o.date_added DESC, o.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Errorf("❌ Error listing outfits: %v", err)
		return nil, fmt.Errorf("failed to list outfits: %w", err)
	}
	outfits, err := scanRecords(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}
	if len(outfits) == 0 {
		return outfits, nil
	}

	members, err := r.listMembers(ctx, username)
	if err != nil {
		return nil, err
	}

	for _, outfit := range outfits {
		id, _ := outfit["id"].(string)
		itemIDs := []interface{}{}
		items := []interface{}{}
		layout := []interface{}{}
		for _, member := range members[id] {
			itemIDs = append(itemIDs, member["itemId"])
			if _, ok := member["id"]; ok {
				items = append(items, nestedItem(member))
			}
			if entry, ok := layoutEntry(member); ok {
				layout = append(layout, entry)
			}
		}
		outfit["itemIds"] = itemIDs
		outfit["items"] = items
		outfit["layout"] = layout
	}

	log.Debugf("✓ Found %d outfits", len(outfits))
	return outfits, nil
}

// listMembers returns the member rows of every outfit of username, grouped by outfit id
func (r *OutfitRepository) listMembers(ctx context.Context, username string) (map[string][]models.Record, error) {
	query := `
		SELECT oi.outfit_id::text AS "outfitId", oi.item_id AS "itemId",
		       oi.normalized_x AS "normalizedX", oi.normalized_y AS "normalizedY",` + itemColumns + `
		FROM outfit_items oi
		INNER JOIN outfits o ON o.id = oi.outfit_id
		LEFT JOIN clothing_items ci ON ci.id = oi.item_id AND ci.username = o.username
		WHERE o.username = $1
		ORDER BY oi.outfit_id, oi.position`

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		log.Errorf("❌ Error listing outfit items: %v", err)
		return nil, fmt.Errorf("failed to list outfit items: %w", err)
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.Record)
	for _, rec := range records {
		outfitID, _ := rec["outfitId"].(string)
		grouped[outfitID] = append(grouped[outfitID], rec)
	}
	return grouped, nil
}

func nestedItem(member models.Record) models.Record {
	item := models.Record{}
	for _, key := range nestedItemKeys {
		if v, ok := member[key]; ok {
			item[key] = v
		}
	}
	return item
}

func layoutEntry(member models.Record) (map[string]interface{}, bool) {
	x, okX := member["normalizedX"]
	y, okY := member["normalizedY"]
	if !okX || !okY {
		return nil, false
	}
	return map[string]interface{}{
		"itemId":      member["itemId"],
		"normalizedX": x,
		"normalizedY": y,
	}, true
}

// Insert saves an outfit with its members in order and returns the new outfit id
func (r *OutfitRepository) Insert(ctx context.Context, username string, draft models.OutfitDraft) (string, error) {
	dateAdded, err := utils.ParseDMY(draft.DateAdded)
	if err != nil {
		return "", err
	}

	positions := make(map[int]models.LayoutEntry, len(draft.Layout))
	for _, entry := range draft.Layout {
		positions[entry.ItemID] = entry
	}

	// Start transaction
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Errorf("❌ Error starting transaction: %v", err)
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	id := uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO outfits (id, username, name, season, date_added) VALUES ($1, $2, $3, $4, $5)`,
		id, username, draft.Name, draft.Season, dateAdded,
	)
	if err != nil {
		log.Errorf("❌ Error inserting outfit: %v", err)
		return "", fmt.Errorf("failed to insert outfit: %w", err)
	}

	for position, itemID := range draft.ItemIDs {
		var x, y *float64
		if entry, ok := positions[itemID]; ok {
			x, y = &entry.NormalizedX, &entry.NormalizedY
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO outfit_items (outfit_id, position, item_id, normalized_x, normalized_y) VALUES ($1, $2, $3, $4, $5)`,
			id, position, itemID, x, y,
		)
		if err != nil {
			log.Errorf("❌ Error inserting outfit item %d: %v", itemID, err)
			return "", fmt.Errorf("failed to insert outfit item: %w", err)
		}
	}

	// Commit transaction
	if err := tx.Commit(); err != nil {
		log.Errorf("❌ Error committing transaction: %v", err)
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Infof("💾 Saved outfit %s (%q, %d items) for %s", id, draft.Name, len(draft.ItemIDs), username)
	return id, nil
}

// Delete removes one outfit and its member rows
func (r *OutfitRepository) Delete(ctx context.Context, username, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM outfits WHERE username = $1 AND id = $2`, username, id)
	if err != nil {
		return fmt.Errorf("failed to delete outfit: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete outfit: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of outfits of username
func (r *OutfitRepository) Count(ctx context.Context, username string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM outfits WHERE username = $1`, username).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count outfits: %w", err)
	}
	return count, nil
}
