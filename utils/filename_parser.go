package utils

import (
	"fmt"
	"regexp"
	"strings"

	"dress-diary/models"
)

var (
	extRegex  = regexp.MustCompile(`(?i)\.(png|jpg|jpeg|webp)$`)
	codeRegex = regexp.MustCompile(`^[A-Za-z]+$`)
)

// ParseFileName parses a photo filename following the pattern:
// COLOR-CATEGORY-MATERIAL1_MATERIAL2[-SUBCATEGORY].JPG
// Example: BL-PNT-DE_CO-skinny.jpg
// The returned draft has no image; the caller attaches it.
func ParseFileName(filename string) (*models.ClothingItemDraft, error) {
	if !extRegex.MatchString(filename) {
		return nil, fmt.Errorf("invalid filename %q: expected a .png, .jpg, .jpeg or .webp extension", filename)
	}
	nameWithoutExt := extRegex.ReplaceAllString(filename, "")

	// Split by hyphen
	parts := strings.Split(nameWithoutExt, "-")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("invalid filename format: expected 3 or 4 parts separated by '-', got %d parts", len(parts))
	}

	// Part 0: COLOR
	if !codeRegex.MatchString(parts[0]) {
		return nil, fmt.Errorf("invalid color code: %q", parts[0])
	}
	color := MapColorCode(parts[0])

	// Part 1: CATEGORY
	category, ok := MapCategoryCode(parts[1])
	if !ok {
		return nil, fmt.Errorf("invalid category code: expected TOP, PNT, JKT, SHO or ACC, got %q", parts[1])
	}

	// Part 2: MATERIAL1_MATERIAL2
	var materials []string
	for _, code := range strings.Split(parts[2], "_") {
		if !codeRegex.MatchString(code) {
			return nil, fmt.Errorf("invalid material code: %q", code)
		}
		materials = append(materials, MapMaterialCode(code))
	}

	// Part 3: optional SUBCATEGORY, free text
	subcategory := ""
	if len(parts) == 4 {
		subcategory = strings.ReplaceAll(strings.TrimSpace(parts[3]), "_", " ")
	}

	return &models.ClothingItemDraft{
		Color:       color,
		Category:    category,
		Materials:   materials,
		Subcategory: subcategory,
	}, nil
}
