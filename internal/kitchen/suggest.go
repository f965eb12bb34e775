package kitchen

import (
	"context"
	"sort"
	"strings"

	"fresh-pantry/internal/match"
	"fresh-pantry/internal/pantry"
	"fresh-pantry/internal/recipe"
)

// Suggestion is one scored recipe in a meal-suggestion listing.
type Suggestion struct {
	match.Result
	Recommendation string `json:"recommendation"`
}

// SuggestFilters narrows the candidate recipe pool before scoring.
type SuggestFilters struct {
	// MealType keeps only recipes tagged with this meal type.
	// Empty or "all" keeps everything.
	MealType string

	// ExpiringSoon keeps only recipes that use at least one pantry item
	// from the expiring bucket.
	ExpiringSoon bool
}

// SuggestMeals scores every recipe against current pantry stock and
// returns suggestions ordered by match percentage, then by how many
// ingredients each recipe shares with the rest of the collection.
func (s *Service) SuggestMeals(ctx context.Context, filters SuggestFilters) ([]Suggestion, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.pantry.List(ctx)
	if err != nil {
		return nil, err
	}

	var expiringNames map[string]bool
	if filters.ExpiringSoon {
		expiringNames = expiringItemNames(items)
	}

	usage := ingredientUsage(recipes)

	suggestions := []Suggestion{}
	for _, rec := range recipes {
		if !matchesMealType(rec, filters.MealType) {
			continue
		}

		result := match.Score(rec, items)
		result.SharedIngredientCount = sharedCount(rec, usage)

		if filters.ExpiringSoon {
			result.ExpiringIngredientsUsed = expiringUsed(rec, items, expiringNames)
			if result.ExpiringIngredientsUsed == 0 {
				continue
			}
		}

		suggestions = append(suggestions, Suggestion{
			Result:         result,
			Recommendation: match.Recommendation(result),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].MatchPercentage != suggestions[j].MatchPercentage {
			return suggestions[i].MatchPercentage > suggestions[j].MatchPercentage
		}
		if suggestions[i].SharedIngredientCount != suggestions[j].SharedIngredientCount {
			return suggestions[i].SharedIngredientCount > suggestions[j].SharedIngredientCount
		}
		return suggestions[i].RecipeName < suggestions[j].RecipeName
	})

	return suggestions, nil
}

// RecipeGroup collects the recipes sharing one pantry-relevant ingredient.
type RecipeGroup struct {
	SharedIngredient string          `json:"shared_ingredient"`
	Recipes          []recipe.Recipe `json:"recipes"`
	Count            int             `json:"count"`
}

// GroupBySharedIngredient groups recipes by normalized ingredient name,
// keeping only ingredients shared by at least two recipes. Groups are
// ordered largest first.
func (s *Service) GroupBySharedIngredient(ctx context.Context) ([]RecipeGroup, error) {
	recipes, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}

	byIngredient := make(map[string][]recipe.Recipe)
	displayName := make(map[string]string)
	for _, rec := range recipes {
		seen := make(map[string]bool)
		for _, ing := range rec.Ingredients {
			key := match.Normalize(ing.Name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			byIngredient[key] = append(byIngredient[key], rec)
			if _, ok := displayName[key]; !ok {
				displayName[key] = strings.ToLower(strings.TrimSpace(ing.Name))
			}
		}
	}

	groups := []RecipeGroup{}
	for key, recs := range byIngredient {
		if len(recs) < 2 {
			continue
		}
		groups = append(groups, RecipeGroup{
			SharedIngredient: displayName[key],
			Recipes:          recs,
			Count:            len(recs),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].SharedIngredient < groups[j].SharedIngredient
	})

	return groups, nil
}

func matchesMealType(rec recipe.Recipe, mealType string) bool {
	if mealType == "" || strings.EqualFold(mealType, "all") {
		return true
	}
	return strings.EqualFold(rec.MealType, mealType)
}

// ingredientUsage counts how many recipes use each normalized ingredient.
func ingredientUsage(recipes []recipe.Recipe) map[string]int {
	usage := make(map[string]int)
	for _, rec := range recipes {
		seen := make(map[string]bool)
		for _, ing := range rec.Ingredients {
			key := match.Normalize(ing.Name)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			usage[key]++
		}
	}
	return usage
}

// sharedCount is the number of a recipe's ingredients that appear in at
// least one other recipe.
func sharedCount(rec recipe.Recipe, usage map[string]int) int {
	count := 0
	seen := make(map[string]bool)
	for _, ing := range rec.Ingredients {
		key := match.Normalize(ing.Name)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		if usage[key] > 1 {
			count++
		}
	}
	return count
}

// expiringItemNames collects the normalized names of items currently in
// the expiring bucket.
func expiringItemNames(items []pantry.Item) map[string]bool {
	names := make(map[string]bool)
	report := pantry.ExpiryBuckets(items, pantry.DefaultExpiryHorizonDays)
	for _, status := range report.Expiring {
		names[match.Normalize(status.Item.Name)] = true
	}
	return names
}

// expiringUsed counts how many of a recipe's ingredients resolve to an
// expiring pantry item.
func expiringUsed(rec recipe.Recipe, items []pantry.Item, expiring map[string]bool) int {
	count := 0
	for _, ing := range rec.Ingredients {
		for _, matched := range match.FindMatches(ing.Name, items) {
			if expiring[match.Normalize(matched.Name)] {
				count++
				break
			}
		}
	}
	return count
}
