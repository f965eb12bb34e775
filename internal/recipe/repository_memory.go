package recipe

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository for tests.
type InMemoryRepository struct {
	mu      sync.Mutex
	recipes map[string]Recipe
}

// NewInMemoryRepository creates an empty in-memory recipe repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{recipes: make(map[string]Recipe)}
}

func (r *InMemoryRepository) Save(ctx context.Context, rec *Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	r.recipes[rec.ID] = *rec
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.recipes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recipes := make([]Recipe, 0, len(r.recipes))
	for _, rec := range r.recipes {
		recipes = append(recipes, rec)
	}
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].Name < recipes[j].Name })
	return recipes, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.recipes[id]; !ok {
		return ErrNotFound
	}
	delete(r.recipes, id)
	return nil
}
