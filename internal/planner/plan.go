package planner

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no weekly plan matches the query.
var ErrNotFound = errors.New("weekly plan not found")

// DayPlan assigns recipes to one day of the week.
type DayPlan struct {
	Day       string   `json:"day"`
	RecipeIDs []string `json:"recipe_ids"`
}

// WeeklyPlan is the meal plan for one week. WeekStart is an ISO date
// string (YYYY-MM-DD) and identifies the plan: saving a plan for the
// same week replaces the earlier one.
type WeeklyPlan struct {
	ID        string    `json:"id"`
	WeekStart string    `json:"week_start"`
	Days      []DayPlan `json:"days"`
	CreatedAt time.Time `json:"created_at"`
}
