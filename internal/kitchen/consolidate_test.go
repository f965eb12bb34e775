package kitchen

import (
	"context"
	"strings"
	"testing"
	"time"

	"fresh-pantry/internal/pantry"
)

func TestConsolidateMergesDuplicates(t *testing.T) {
	items := []pantry.Item{
		{Name: "Milk", Quantity: 1, Unit: "L"},
		{Name: "milk", Quantity: 0.5, Unit: "L"},
		{Name: "Eggs", Quantity: 6},
	}

	svc, repo := newTestService(t, nil, items)

	merged, err := svc.Consolidate(context.Background())
	if err != nil {
		t.Fatalf("Consolidate failed: %v", err)
	}
	if merged != 1 {
		t.Errorf("expected 1 row merged, got %d", merged)
	}

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("failed to list pantry: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 items after merge, got %d", len(all))
	}

	var milk *pantry.Item
	for i := range all {
		if strings.EqualFold(all[i].Name, "milk") {
			milk = &all[i]
		}
	}
	if milk == nil {
		t.Fatal("merged milk row not found")
	}
	if milk.Quantity != 1.5 {
		t.Errorf("expected merged milk quantity 1.5, got %v", milk.Quantity)
	}
}

func TestConsolidateIdempotent(t *testing.T) {
	items := []pantry.Item{
		{Name: "Milk", Quantity: 1},
		{Name: "milk", Quantity: 0.5},
	}

	svc, _ := newTestService(t, nil, items)

	if _, err := svc.Consolidate(context.Background()); err != nil {
		t.Fatalf("first Consolidate failed: %v", err)
	}
	merged, err := svc.Consolidate(context.Background())
	if err != nil {
		t.Fatalf("second Consolidate failed: %v", err)
	}
	if merged != 0 {
		t.Errorf("expected second call to merge nothing, got %d", merged)
	}
}

func TestConsolidateKeepsSubstringMatchesSeparate(t *testing.T) {
	items := []pantry.Item{
		{Name: "chicken", Quantity: 2},
		{Name: "chicken stock", Quantity: 1},
	}

	svc, repo := newTestService(t, nil, items)

	merged, err := svc.Consolidate(context.Background())
	if err != nil {
		t.Fatalf("Consolidate failed: %v", err)
	}
	if merged != 0 {
		t.Errorf("expected no merge for substring names, got %d", merged)
	}
	all, _ := repo.List(context.Background())
	if len(all) != 2 {
		t.Errorf("expected 2 items, got %d", len(all))
	}
}

func TestConsolidateSurvivorFields(t *testing.T) {
	early := time.Now().AddDate(0, 0, 2)
	late := time.Now().AddDate(0, 0, 9)

	items := []pantry.Item{
		{Name: "yogurt", Quantity: 1, MinThreshold: 1, ExpiryDate: &late},
		{Name: "Yogurt", Quantity: 2, MinThreshold: 3, TypicalPurchase: 4, ExpiryDate: &early},
	}

	svc, repo := newTestService(t, nil, items)

	if _, err := svc.Consolidate(context.Background()); err != nil {
		t.Fatalf("Consolidate failed: %v", err)
	}

	all, _ := repo.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("expected 1 item after merge, got %d", len(all))
	}

	got := all[0]
	if got.Quantity != 3 {
		t.Errorf("expected quantity 3, got %v", got.Quantity)
	}
	if got.MinThreshold != 3 {
		t.Errorf("expected larger threshold 3, got %v", got.MinThreshold)
	}
	if got.TypicalPurchase != 4 {
		t.Errorf("expected typical purchase 4, got %v", got.TypicalPurchase)
	}
	if got.ExpiryDate == nil || !got.ExpiryDate.Equal(early) {
		t.Errorf("expected earliest expiry to win, got %v", got.ExpiryDate)
	}
}
