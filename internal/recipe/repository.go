package recipe

import "context"

// Repository defines persistence operations for recipes.
type Repository interface {
	Save(ctx context.Context, rec *Recipe) error
	Get(ctx context.Context, id string) (*Recipe, error)
	List(ctx context.Context) ([]Recipe, error)
	Delete(ctx context.Context, id string) error
}
