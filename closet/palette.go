package closet

import "strings"

// Colors offered by the closet filter page
var Colors = []string{
	"red", "orange", "yellow", "green", "blue", "purple",
	"pink", "brown", "black", "white", "gray", "other",
}

// Materials offered by the closet filter page
var Materials = []string{
	"cotton", "denim", "leather", "wool", "silk", "linen", "polyester",
}

// Categories offered by the closet filter page, in the form items are stored with
var Categories = []string{
	"top", "pants", "jacket", "shoes", "accessories",
}

// CategoryFromLabel maps a display label (e.g. "Tops", "Jackets") to the stored
// category. Unknown labels are returned trimmed and lowercased.
func CategoryFromLabel(label string) string {
	labelLower := strings.ToLower(strings.TrimSpace(label))

	labelMap := map[string]string{
		"tops":        "top",
		"top":         "top",
		"pants":       "pants",
		"trousers":    "pants",
		"jackets":     "jacket",
		"jacket":      "jacket",
		"coats":       "jacket",
		"shoes":       "shoes",
		"accessories": "accessories",
	}

	if category, exists := labelMap[labelLower]; exists {
		return category
	}

	return labelLower
}

// CategoriesFromLabels maps every label through CategoryFromLabel, dropping blanks
func CategoriesFromLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		if category := CategoryFromLabel(label); category != "" {
			out = append(out, category)
		}
	}
	return out
}
