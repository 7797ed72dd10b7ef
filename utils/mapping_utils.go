package utils

import (
	"strings"
)

// MapColorCode maps the color code of a photo file name to its color name.
// Input is normalized to uppercase before mapping.
// Unknown codes are returned lowercased.
func MapColorCode(code string) string {
	codeUpper := strings.ToUpper(strings.TrimSpace(code))

	colorMap := map[string]string{
		"RD":  "red",
		"OR":  "orange",
		"YL":  "yellow",
		"GR":  "green",
		"BL":  "blue",
		"PU":  "purple",
		"PK":  "pink",
		"BR":  "brown",
		"BK":  "black",
		"WH":  "white",
		"GY":  "gray",
		"OTH": "other",
	}

	if color, exists := colorMap[codeUpper]; exists {
		return color
	}

	return strings.ToLower(codeUpper)
}

// MapCategoryCode maps the category code of a photo file name to the stored category.
// Returns false for unknown codes since the category decides which fields an item carries.
func MapCategoryCode(code string) (string, bool) {
	codeUpper := strings.ToUpper(strings.TrimSpace(code))

	categoryMap := map[string]string{
		"TOP": "top",
		"PNT": "pants",
		"JKT": "jacket",
		"SHO": "shoes",
		"ACC": "accessories",
	}

	category, exists := categoryMap[codeUpper]
	return category, exists
}

// MapMaterialCode maps the material code of a photo file name to its material name.
// Unknown codes are returned lowercased.
func MapMaterialCode(code string) string {
	codeUpper := strings.ToUpper(strings.TrimSpace(code))

	materialMap := map[string]string{
		"CO": "cotton",
		"DE": "denim",
		"LE": "leather",
		"WO": "wool",
		"SI": "silk",
		"LI": "linen",
		"PO": "polyester",
	}

	if material, exists := materialMap[codeUpper]; exists {
		return material
	}

	return strings.ToLower(codeUpper)
}
