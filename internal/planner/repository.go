package planner

import "context"

// Repository persists weekly meal plans, one per week start date.
type Repository interface {
	// Save upserts a plan keyed by its week start date.
	Save(ctx context.Context, plan *WeeklyPlan) error

	// Get returns the plan for weekStart. An empty weekStart returns the
	// most recently saved plan. Returns ErrNotFound when nothing matches.
	Get(ctx context.Context, weekStart string) (*WeeklyPlan, error)

	// List returns all plans, newest first.
	List(ctx context.Context) ([]WeeklyPlan, error)
}
