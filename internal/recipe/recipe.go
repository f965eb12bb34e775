package recipe

import (
	"errors"
	"time"

	"fresh-pantry/internal/quantity"
	"fresh-pantry/internal/shared"
)

// ErrNotFound is returned when a recipe id does not exist.
var ErrNotFound = errors.New("recipe not found")

// Ingredient is a single line of a recipe's ingredient list. Quantity is
// kept textual ("2", "1/2", "1 1/2") because that is how recipes are
// written; unit is an opaque string with no automatic conversion.
type Ingredient struct {
	Name     string          `json:"name"`
	Quantity string          `json:"quantity"`
	Unit     string          `json:"unit"`
	Category shared.Category `json:"category"`
}

// Recipe represents a stored recipe.
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	Servings     int          `json:"servings"`
	PrepTime     string       `json:"prep_time,omitempty"`
	CookTime     string       `json:"cook_time,omitempty"`
	MealType     string       `json:"meal_type,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	SourceURL    string       `json:"source_url,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// MinServings and MaxServings bound the serving counts accepted by the
// scaled-recipe view. The scaler itself has no upper bound; the clamp is
// UI sanity only.
const (
	MinServings = 1
	MaxServings = 20
)

// ScaledTo returns a copy of the recipe with every ingredient quantity
// rescaled to the given serving count. The stored recipe is never mutated.
func (r Recipe) ScaledTo(servings int) Recipe {
	if servings < MinServings {
		servings = MinServings
	}
	if servings > MaxServings {
		servings = MaxServings
	}

	baseline := r.Servings
	if baseline < 1 {
		baseline = 1
	}

	scaled := r
	scaled.Servings = servings
	scaled.Ingredients = make([]Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ing.Quantity = quantity.Scale(ing.Quantity, baseline, servings)
		scaled.Ingredients[i] = ing
	}
	return scaled
}
