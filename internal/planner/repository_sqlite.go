package planner

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SQLiteRepository stores weekly plans with the day assignments as a
// JSON blob.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a weekly plan repository backed by db.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, plan *WeeklyPlan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}

	daysJSON, err := json.Marshal(plan.Days)
	if err != nil {
		return fmt.Errorf("failed to marshal plan days: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO weekly_plans (id, week_start, days, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(week_start) DO UPDATE SET
			id = excluded.id,
			days = excluded.days,
			created_at = excluded.created_at`,
		plan.ID, plan.WeekStart, string(daysJSON), plan.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save weekly plan: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, weekStart string) (*WeeklyPlan, error) {
	var row *sql.Row
	if weekStart == "" {
		row = r.db.QueryRowContext(ctx,
			`SELECT id, week_start, days, created_at FROM weekly_plans ORDER BY created_at DESC LIMIT 1`)
	} else {
		row = r.db.QueryRowContext(ctx,
			`SELECT id, week_start, days, created_at FROM weekly_plans WHERE week_start = ?`, weekStart)
	}

	plan, err := scanPlan(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly plan: %w", err)
	}
	return plan, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]WeeklyPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, week_start, days, created_at FROM weekly_plans ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly plans: %w", err)
	}
	defer rows.Close()

	var plans []WeeklyPlan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weekly plan: %w", err)
		}
		plans = append(plans, *plan)
	}
	return plans, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (*WeeklyPlan, error) {
	var plan WeeklyPlan
	var daysJSON string
	if err := row.Scan(&plan.ID, &plan.WeekStart, &daysJSON, &plan.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(daysJSON), &plan.Days); err != nil {
		return nil, fmt.Errorf("failed to unmarshal plan days: %w", err)
	}
	return &plan, nil
}
