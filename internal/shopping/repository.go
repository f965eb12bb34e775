package shopping

import "context"

// Repository persists the single active shopping list.
type Repository interface {
	// Current returns the active list, or ErrNotFound when none exists.
	Current(ctx context.Context) (*List, error)

	// Replace makes list the active one, removing any previous list.
	Replace(ctx context.Context, list *List) error
}
