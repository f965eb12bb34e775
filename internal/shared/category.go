package shared

import "strings"

// Category classifies an ingredient or pantry item into a store section.
type Category string

const (
	CategoryProduce Category = "produce"
	CategoryDairy   Category = "dairy"
	CategoryProtein Category = "protein"
	CategoryGrains  Category = "grains"
	CategoryPantry  Category = "pantry"
	CategorySpices  Category = "spices"
	CategoryFrozen  Category = "frozen"
	CategoryOther   Category = "other"
)

// ParseCategory maps a free-form string to a known category.
// Ingestion paths (manual entry, receipt import, barcode lookup) send
// arbitrary strings, so anything unrecognized lands in "other".
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryProduce, CategoryDairy, CategoryProtein, CategoryGrains,
		CategoryPantry, CategorySpices, CategoryFrozen:
		return c
	default:
		return CategoryOther
	}
}
