// Package closet filters the clothing catalog the way the closet page does.
package closet

import (
	"strings"

	"dress-diary/models"
)

// FilterParams represents the selected values per filter dimension.
// An empty dimension matches every item.
type FilterParams struct {
	Colors     []string
	Materials  []string
	Categories []string
}

// IsEmpty reports whether no dimension has a selection
func (p FilterParams) IsEmpty() bool {
	return len(p.Colors) == 0 && len(p.Materials) == 0 && len(p.Categories) == 0
}

type selection map[string]struct{}

func newSelection(values []string) selection {
	if len(values) == 0 {
		return nil
	}
	s := make(selection, len(values))
	for _, v := range values {
		s[strings.ToLower(v)] = struct{}{}
	}
	return s
}

// matches treats an empty selection as "match all"
func (s selection) matches(value string) bool {
	if len(s) == 0 {
		return true
	}
	_, ok := s[strings.ToLower(value)]
	return ok
}

func (s selection) matchesAny(values []string) bool {
	if len(s) == 0 {
		return true
	}
	for _, v := range values {
		if _, ok := s[strings.ToLower(v)]; ok {
			return true
		}
	}
	return false
}

// Filter returns the items matching every non-empty dimension, in catalog order.
// Color and category compare case-insensitively; an item matches the material
// dimension when at least one of its materials is selected.
func Filter(catalog []models.ClothingItem, params FilterParams) []models.ClothingItem {
	colors := newSelection(params.Colors)
	materials := newSelection(params.Materials)
	categories := newSelection(params.Categories)

	filtered := make([]models.ClothingItem, 0, len(catalog))
	for _, item := range catalog {
		if !colors.matches(item.Color) {
			continue
		}
		if !materials.matchesAny(item.Materials) {
			continue
		}
		if !categories.matches(item.Category) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
