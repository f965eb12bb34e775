package match

import (
	"fmt"
	"math"

	"fresh-pantry/internal/pantry"
	"fresh-pantry/internal/recipe"
)

// Result is the outcome of scoring one recipe against the pantry. It is
// derived data and never persisted.
type Result struct {
	RecipeID             string   `json:"recipe_id"`
	RecipeName           string   `json:"recipe_name"`
	MatchPercentage      int      `json:"match_percentage"`
	AvailableIngredients []string `json:"available_ingredients"`
	MissingIngredients   []string `json:"missing_ingredients"`

	// SharedIngredientCount and ExpiringIngredientsUsed are filled in by
	// the suggestion service when the caller asked for them.
	SharedIngredientCount   int `json:"shared_ingredient_count,omitempty"`
	ExpiringIngredientsUsed int `json:"expiring_ingredients_used,omitempty"`
}

// Score computes which of a recipe's ingredients have at least one pantry
// match, regardless of quantity sufficiency. A recipe with no ingredients
// scores 100. Read-only and safe for unlimited concurrent use.
func Score(rec recipe.Recipe, items []pantry.Item) Result {
	result := Result{
		RecipeID:             rec.ID,
		RecipeName:           rec.Name,
		AvailableIngredients: []string{},
		MissingIngredients:   []string{},
	}

	if len(rec.Ingredients) == 0 {
		result.MatchPercentage = 100
		return result
	}

	for _, ing := range rec.Ingredients {
		if len(FindMatches(ing.Name, items)) > 0 {
			result.AvailableIngredients = append(result.AvailableIngredients, ing.Name)
		} else {
			result.MissingIngredients = append(result.MissingIngredients, ing.Name)
		}
	}

	result.MatchPercentage = int(math.Round(
		100 * float64(len(result.AvailableIngredients)) / float64(len(rec.Ingredients)),
	))
	return result
}

// Recommendation turns a match percentage into the banding shown next to
// each suggestion.
func Recommendation(r Result) string {
	missing := len(r.MissingIngredients)
	switch {
	case r.MatchPercentage >= 80:
		return "Ready to cook!"
	case r.MatchPercentage >= 50:
		return fmt.Sprintf("Missing %d ingredients", missing)
	default:
		return fmt.Sprintf("Need %d more items", missing)
	}
}
