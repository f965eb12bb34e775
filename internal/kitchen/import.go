package kitchen

import (
	"context"
	"errors"
	"fmt"

	"fresh-pantry/internal/match"
	"fresh-pantry/internal/pantry"
	"fresh-pantry/internal/shared"
)

// ImportResult reports how an import batch landed in the pantry.
type ImportResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// ImportPantry upserts ingestion records (receipt scan, barcode lookup)
// into the pantry by normalized name: a record matching an existing item
// adds its effective quantity to that item, anything else becomes a new
// row. Updates go through the versioned write with the usual retry
// budget; an expiry date on the record replaces the matched item's, since
// the newer purchase is the better estimate.
func (s *Service) ImportPantry(ctx context.Context, records []pantry.ImportRecord) (*ImportResult, error) {
	result := &ImportResult{}

	for _, record := range records {
		updated, err := s.importRecord(ctx, record)
		if err != nil {
			return nil, fmt.Errorf("failed to import %s: %w", record.Name, err)
		}
		if updated {
			result.Updated++
		} else {
			result.Added++
		}
	}

	return result, nil
}

func (s *Service) importRecord(ctx context.Context, record pantry.ImportRecord) (updated bool, err error) {
	key := match.Normalize(record.Name)

	for attempt := 0; attempt < maxWriteRetries; attempt++ {
		items, err := s.pantry.List(ctx)
		if err != nil {
			return false, err
		}

		var existing *pantry.Item
		for i := range items {
			if match.Normalize(items[i].Name) == key {
				existing = &items[i]
				break
			}
		}

		if existing == nil {
			item := pantry.Item{
				Name:       record.Name,
				Quantity:   record.EffectiveQuantity(),
				Unit:       record.Unit,
				Category:   shared.ParseCategory(record.Category),
				ExpiryDate: record.ExpiryDate,
			}
			return false, s.pantry.Create(ctx, &item)
		}

		existing.Quantity += record.EffectiveQuantity()
		if record.ExpiryDate != nil {
			existing.ExpiryDate = record.ExpiryDate
		}

		err = s.pantry.Update(ctx, existing)
		if errors.Is(err, pantry.ErrConflict) || errors.Is(err, pantry.ErrNotFound) {
			continue
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}

	return false, pantry.ErrConflict
}
