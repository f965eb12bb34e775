package planner

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository keeps weekly plans in a map keyed by week start.
type InMemoryRepository struct {
	mu    sync.Mutex
	plans map[string]WeeklyPlan
}

// NewInMemoryRepository creates an empty in-memory plan repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{plans: make(map[string]WeeklyPlan)}
}

func (r *InMemoryRepository) Save(ctx context.Context, plan *WeeklyPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	r.plans[plan.WeekStart] = *plan
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, weekStart string) (*WeeklyPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if weekStart != "" {
		plan, ok := r.plans[weekStart]
		if !ok {
			return nil, ErrNotFound
		}
		return &plan, nil
	}

	var latest *WeeklyPlan
	for _, plan := range r.plans {
		p := plan
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = &p
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

func (r *InMemoryRepository) List(ctx context.Context) ([]WeeklyPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plans := make([]WeeklyPlan, 0, len(r.plans))
	for _, plan := range r.plans {
		plans = append(plans, plan)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].CreatedAt.After(plans[j].CreatedAt) })
	return plans, nil
}
