package shopping

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository holds the active shopping list in memory.
type InMemoryRepository struct {
	mu   sync.Mutex
	list *List
}

// NewInMemoryRepository creates an empty in-memory shopping repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Current(ctx context.Context) (*List, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.list == nil {
		return nil, ErrNotFound
	}
	copied := *r.list
	copied.Items = append([]ListItem(nil), r.list.Items...)
	return &copied, nil
}

func (r *InMemoryRepository) Replace(ctx context.Context, list *List) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if list.ID == "" {
		list.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if list.CreatedAt.IsZero() {
		list.CreatedAt = now
	}
	list.UpdatedAt = now

	copied := *list
	copied.Items = append([]ListItem(nil), list.Items...)
	r.list = &copied
	return nil
}
