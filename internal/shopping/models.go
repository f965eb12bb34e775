package shopping

import (
	"errors"
	"time"

	"fresh-pantry/internal/shared"
)

// ErrNotFound is returned when no active shopping list exists.
var ErrNotFound = errors.New("shopping list not found")

// ListItem is one line on the shopping list.
type ListItem struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Quantity     string          `json:"quantity"`
	Unit         string          `json:"unit"`
	Category     shared.Category `json:"category"`
	Checked      bool            `json:"checked"`
	RecipeSource string          `json:"recipe_source,omitempty"`
	InPantry     bool            `json:"in_pantry"`
}

// List is the single active shopping list. Generating a new list
// replaces the previous one.
type List struct {
	ID        string     `json:"id"`
	Items     []ListItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
