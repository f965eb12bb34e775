package pantry

import "context"

// Repository defines all persistence operations for pantry items.
//
// Update and Merge carry the optimistic-concurrency contract: they compare
// the stored version against the one on the passed item and fail with
// ErrConflict when another writer got there first. Callers retry against
// fresh state rather than overwriting.
type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id string) error

	// Merge atomically writes the consolidated survivor and removes the
	// absorbed duplicate rows in a single transaction.
	Merge(ctx context.Context, survivor *Item, removeIDs []string) error
}
