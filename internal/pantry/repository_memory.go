package pantry

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository is a map-backed Repository used in tests and as a
// reference implementation of the concurrency contract.
type InMemoryRepository struct {
	mu    sync.Mutex
	items map[string]Item
}

// NewInMemoryRepository creates an empty in-memory pantry repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{items: make(map[string]Item)}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, id string) (*Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	item.Version = 1
	r.items[item.ID] = *item
	return nil
}

func (r *InMemoryRepository) Update(ctx context.Context, item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[item.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != item.Version {
		return ErrConflict
	}

	item.Version++
	item.UpdatedAt = time.Now().UTC()
	r.items[item.ID] = *item
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *InMemoryRepository) Merge(ctx context.Context, survivor *Item, removeIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.items[survivor.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != survivor.Version {
		return ErrConflict
	}

	survivor.Version++
	survivor.UpdatedAt = time.Now().UTC()
	r.items[survivor.ID] = *survivor
	for _, id := range removeIDs {
		delete(r.items, id)
	}
	return nil
}
