package planner

import (
	"context"
	"errors"
	"testing"
)

func TestSaveUpsertsByWeekStart(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	first := WeeklyPlan{WeekStart: "2026-09-07", Days: []DayPlan{
		{Day: "monday", RecipeIDs: []string{"r1"}},
	}}
	if err := repo.Save(ctx, &first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	second := WeeklyPlan{WeekStart: "2026-09-07", Days: []DayPlan{
		{Day: "monday", RecipeIDs: []string{"r2"}},
		{Day: "tuesday", RecipeIDs: []string{"r3"}},
	}}
	if err := repo.Save(ctx, &second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Get(ctx, "2026-09-07")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got.Days) != 2 || got.Days[0].RecipeIDs[0] != "r2" {
		t.Errorf("expected the replacement plan, got %+v", got.Days)
	}

	plans, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(plans) != 1 {
		t.Errorf("expected a single plan for the week, got %d", len(plans))
	}
}

func TestGetLatestWhenWeekOmitted(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Get(ctx, ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty repo, got %v", err)
	}

	older := WeeklyPlan{WeekStart: "2026-08-31"}
	if err := repo.Save(ctx, &older); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	newer := WeeklyPlan{WeekStart: "2026-09-07"}
	if err := repo.Save(ctx, &newer); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Get(ctx, "")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.WeekStart != "2026-09-07" {
		t.Errorf("expected latest plan, got %s", got.WeekStart)
	}
}

func TestGetUnknownWeek(t *testing.T) {
	repo := NewInMemoryRepository()

	_, err := repo.Get(context.Background(), "2026-01-05")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
