package kitchen

import (
	"context"
	"errors"
	"fmt"
	"math"

	"fresh-pantry/internal/match"
	"fresh-pantry/internal/pantry"
	"fresh-pantry/internal/quantity"
)

// Deduction records how much of one ingredient was taken from the pantry.
type Deduction struct {
	Name           string  `json:"name"`
	AmountDeducted float64 `json:"amount_deducted"`
}

// ConsumptionResult reports the outcome of cooking a recipe. Missing
// ingredients are advisory; cooking always completes.
type ConsumptionResult struct {
	Deducted           []Deduction `json:"deducted"`
	MissingIngredients []string    `json:"missing_ingredients"`
}

// Cook deducts a recipe's scaled ingredient amounts from pantry stock.
// Each ingredient resolves to its best expiry-aware match and is deducted
// by min(stock, required), so quantities never go negative. Ingredients
// with no match, or with less stock than required, are reported in
// MissingIngredients. Concurrent writers are handled by retrying each
// deduction against fresh state; a deduction that still conflicts after
// the retry budget fails the whole operation with pantry.ErrConflict.
func (s *Service) Cook(ctx context.Context, recipeID string, servingsMultiplier float64) (*ConsumptionResult, error) {
	if servingsMultiplier <= 0 {
		servingsMultiplier = 1
	}

	rec, err := s.recipes.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := &ConsumptionResult{
		Deducted:           []Deduction{},
		MissingIngredients: []string{},
	}

	for _, ing := range rec.Ingredients {
		required := 0.0
		if base, ok := quantity.Parse(ing.Quantity); ok {
			required = base * servingsMultiplier
		}

		deducted, found, err := s.deductIngredient(ctx, ing.Name, required)
		if err != nil {
			return nil, fmt.Errorf("failed to deduct %s: %w", ing.Name, err)
		}

		if !found {
			result.MissingIngredients = append(result.MissingIngredients, ing.Name)
			continue
		}

		result.Deducted = append(result.Deducted, Deduction{Name: ing.Name, AmountDeducted: deducted})
		if deducted < required {
			result.MissingIngredients = append(result.MissingIngredients, ing.Name)
		}
	}

	return result, nil
}

// deductIngredient performs one read-modify-write cycle against the best
// matching pantry item, retrying on version conflicts.
func (s *Service) deductIngredient(ctx context.Context, name string, required float64) (deducted float64, found bool, err error) {
	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		items, err := s.pantry.List(ctx)
		if err != nil {
			return 0, false, err
		}

		matches := match.FindMatchesByExpiry(name, items)
		if len(matches) == 0 {
			return 0, false, nil
		}

		item := matches[0]
		amount := math.Min(item.Quantity, required)
		item.Quantity -= amount

		err = s.pantry.Update(ctx, &item)
		if errors.Is(err, pantry.ErrConflict) || errors.Is(err, pantry.ErrNotFound) {
			// Someone else touched (or consolidated away) the item; retry
			// against fresh state.
			continue
		}
		if err != nil {
			return 0, false, err
		}
		return amount, true, nil
	}
	return 0, false, pantry.ErrConflict
}
