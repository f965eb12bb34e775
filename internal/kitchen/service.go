package kitchen

import (
	"fresh-pantry/internal/pantry"
	"fresh-pantry/internal/recipe"
)

// maxWriteRetries bounds how often a pantry mutation is retried after an
// optimistic-concurrency conflict before the conflict is surfaced.
const maxWriteRetries = 3

// Service implements the pantry-aware operations that cut across recipes
// and stock: cooking, consolidation and meal suggestions.
type Service struct {
	recipes recipe.Repository
	pantry  pantry.Repository
}

// NewService creates a new kitchen Service.
func NewService(recipes recipe.Repository, pantryRepo pantry.Repository) *Service {
	return &Service{
		recipes: recipes,
		pantry:  pantryRepo,
	}
}
