package kitchen

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"fresh-pantry/internal/match"
	"fresh-pantry/internal/pantry"
)

// Consolidate merges pantry rows whose names normalize to the same value
// and returns how many rows were removed. Only exact normalized equality
// merges; substring matches stay separate so "chicken" and "chicken stock"
// remain distinct items. Quantities are summed as-is, units are assumed
// consistent per name. Idempotent: a second call with no new duplicates
// returns zero.
func (s *Service) Consolidate(ctx context.Context) (int, error) {
	merged := 0

	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		items, err := s.pantry.List(ctx)
		if err != nil {
			return merged, err
		}

		groups := make(map[string][]pantry.Item)
		for _, item := range items {
			key := match.Normalize(item.Name)
			groups[key] = append(groups[key], item)
		}

		conflicted := false
		for _, group := range groups {
			if len(group) < 2 {
				continue
			}

			survivor, removeIDs := mergeGroup(group)
			err := s.pantry.Merge(ctx, &survivor, removeIDs)
			if errors.Is(err, pantry.ErrConflict) || errors.Is(err, pantry.ErrNotFound) {
				conflicted = true
				continue
			}
			if err != nil {
				return merged, fmt.Errorf("failed to merge %s: %w", survivor.Name, err)
			}
			merged += len(removeIDs)
		}

		if !conflicted {
			return merged, nil
		}
	}

	return merged, pantry.ErrConflict
}

// mergeGroup folds duplicate rows into the oldest one: quantities sum, the
// earliest expiry date wins, the larger alert threshold and typical
// purchase size win.
func mergeGroup(group []pantry.Item) (pantry.Item, []string) {
	sort.Slice(group, func(i, j int) bool {
		return group[i].CreatedAt.Before(group[j].CreatedAt)
	})

	survivor := group[0]
	removeIDs := make([]string, 0, len(group)-1)

	for _, item := range group[1:] {
		survivor.Quantity += item.Quantity
		if item.MinThreshold > survivor.MinThreshold {
			survivor.MinThreshold = item.MinThreshold
		}
		if item.TypicalPurchase > survivor.TypicalPurchase {
			survivor.TypicalPurchase = item.TypicalPurchase
		}
		if item.ExpiryDate != nil && (survivor.ExpiryDate == nil || item.ExpiryDate.Before(*survivor.ExpiryDate)) {
			survivor.ExpiryDate = item.ExpiryDate
		}
		removeIDs = append(removeIDs, item.ID)
	}

	return survivor, removeIDs
}
