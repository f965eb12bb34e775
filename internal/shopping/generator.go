package shopping

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"fresh-pantry/internal/match"
	"fresh-pantry/internal/pantry"
	"fresh-pantry/internal/quantity"
	"fresh-pantry/internal/recipe"
)

// Service builds and maintains the active shopping list.
type Service struct {
	lists   Repository
	recipes recipe.Repository
	pantry  pantry.Repository
}

// NewService creates a shopping list service.
func NewService(lists Repository, recipes recipe.Repository, pantryRepo pantry.Repository) *Service {
	return &Service{lists: lists, recipes: recipes, pantry: pantryRepo}
}

// Generate builds a new shopping list from the given recipes, replacing
// the previous list. Ingredients that appear in several recipes with the
// same unit and a parseable quantity are folded into one line with the
// quantities summed; unparseable quantities stay as separate lines.
// Recipe IDs that no longer exist are skipped. Items already covered by
// pantry stock are flagged rather than dropped, so the shopper decides.
func (s *Service) Generate(ctx context.Context, recipeIDs []string) (*List, error) {
	var items []ListItem
	for _, id := range recipeIDs {
		rec, err := s.recipes.Get(ctx, id)
		if errors.Is(err, recipe.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load recipe %s: %w", id, err)
		}

		for _, ing := range rec.Ingredients {
			items = append(items, ListItem{
				ID:           uuid.New().String(),
				Name:         ing.Name,
				Quantity:     ing.Quantity,
				Unit:         ing.Unit,
				Category:     ing.Category,
				RecipeSource: rec.Name,
			})
		}
	}

	items = consolidateItems(items)
	if err := s.flagPantryCoverage(ctx, items); err != nil {
		return nil, err
	}

	list := &List{Items: items}
	if err := s.lists.Replace(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// Current returns the active shopping list.
func (s *Service) Current(ctx context.Context) (*List, error) {
	return s.lists.Current(ctx)
}

// Update replaces the active list's items, keeping the list identity.
func (s *Service) Update(ctx context.Context, items []ListItem) (*List, error) {
	list, err := s.lists.Current(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.New().String()
		}
	}
	list.Items = items

	if err := s.lists.Replace(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// AddItem appends a custom item, creating an empty list first if needed.
func (s *Service) AddItem(ctx context.Context, item ListItem) (*List, error) {
	list, err := s.lists.Current(ctx)
	if errors.Is(err, ErrNotFound) {
		list = &List{}
	} else if err != nil {
		return nil, err
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	list.Items = append(list.Items, item)

	if err := s.lists.Replace(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// RemoveItem deletes one item from the active list by ID.
func (s *Service) RemoveItem(ctx context.Context, itemID string) error {
	list, err := s.lists.Current(ctx)
	if err != nil {
		return err
	}

	kept := list.Items[:0]
	for _, item := range list.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	list.Items = kept

	return s.lists.Replace(ctx, list)
}

// consolidateItems folds duplicate ingredient lines. Lines merge when
// their normalized names and units agree and both quantities parse;
// anything else stays its own line.
func consolidateItems(items []ListItem) []ListItem {
	type groupTotal struct {
		item    ListItem
		total   float64
		sources []string
	}

	var order []string
	groups := make(map[string]*groupTotal)
	var out []ListItem

	for _, item := range items {
		value, ok := quantity.Parse(item.Quantity)
		if !ok {
			out = append(out, item)
			continue
		}

		key := match.Normalize(item.Name) + "|" + strings.ToLower(strings.TrimSpace(item.Unit))
		group, exists := groups[key]
		if !exists {
			groups[key] = &groupTotal{item: item, total: value, sources: []string{item.RecipeSource}}
			order = append(order, key)
			continue
		}
		group.total += value
		if item.RecipeSource != "" && !containsString(group.sources, item.RecipeSource) {
			group.sources = append(group.sources, item.RecipeSource)
		}
	}

	for _, key := range order {
		group := groups[key]
		merged := group.item
		merged.Quantity = quantity.Format(group.total)
		merged.RecipeSource = strings.Join(nonEmpty(group.sources), ", ")
		out = append(out, merged)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// flagPantryCoverage marks items that match in-stock pantry rows.
func (s *Service) flagPantryCoverage(ctx context.Context, items []ListItem) error {
	if len(items) == 0 {
		return nil
	}

	stock, err := s.pantry.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pantry: %w", err)
	}

	for i := range items {
		for _, matched := range match.FindMatches(items[i].Name, stock) {
			if matched.Quantity > 0 {
				items[i].InPantry = true
				break
			}
		}
	}
	return nil
}

func containsString(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

func nonEmpty(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
