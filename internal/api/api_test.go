package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fresh-pantry/internal/clipper"
	"fresh-pantry/internal/config"
	"fresh-pantry/internal/kitchen"
	"fresh-pantry/internal/pantry"
	"fresh-pantry/internal/planner"
	"fresh-pantry/internal/recipe"
	"fresh-pantry/internal/shopping"
)

type testEnv struct {
	router  *gin.Engine
	pantry  *pantry.InMemoryRepository
	recipes *recipe.InMemoryRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pantryRepo := pantry.NewInMemoryRepository()
	recipeRepo := recipe.NewInMemoryRepository()
	planRepo := planner.NewInMemoryRepository()
	listRepo := shopping.NewInMemoryRepository()

	h := NewHandler(HandlerConfig{
		Logger:   zap.NewNop(),
		Pantry:   pantryRepo,
		Recipes:  recipeRepo,
		Kitchen:  kitchen.NewService(recipeRepo, pantryRepo),
		Shopping: shopping.NewService(listRepo, recipeRepo, pantryRepo),
		Plans:    planRepo,
		Clipper:  clipper.NewClipper(),
	})

	cfg := &config.Config{AllowOrigins: []string{"*"}}
	return &testEnv{
		router:  NewRouter(cfg, h),
		pantry:  pantryRepo,
		recipes: recipeRepo,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func TestPantryItemLifecycle(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/pantry/items", gin.H{
		"name":        "Milk",
		"quantity":    2,
		"unit":        "L",
		"category":    "dairy",
		"expiry_date": time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create returned %d: %s", w.Code, w.Body.String())
	}

	var created pantry.Item
	decode(t, w, &created)
	if created.ID == "" || created.Category != "dairy" {
		t.Errorf("unexpected created item: %+v", created)
	}

	w = env.do(t, http.MethodPut, "/api/pantry/items/"+created.ID, gin.H{
		"name":     "Milk",
		"quantity": 1.5,
		"unit":     "L",
		"category": "dairy",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", w.Code, w.Body.String())
	}

	var items []pantry.Item
	w = env.do(t, http.MethodGet, "/api/pantry", nil)
	decode(t, w, &items)
	if len(items) != 1 || items[0].Quantity != 1.5 {
		t.Errorf("unexpected pantry after update: %+v", items)
	}

	w = env.do(t, http.MethodDelete, "/api/pantry/items/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete returned %d", w.Code)
	}
	w = env.do(t, http.MethodDelete, "/api/pantry/items/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for deleted item, got %d", w.Code)
	}
}

func TestImportPantryUpsertsByName(t *testing.T) {
	env := newTestEnv(t)

	payload := gin.H{"items": []gin.H{
		{"name": "Eggs", "quantity": 6, "unit": "pieces", "category": "dairy"},
	}}

	w := env.do(t, http.MethodPost, "/api/pantry/import", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("import returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Added   int    `json:"added"`
		Updated int    `json:"updated"`
		Message string `json:"message"`
	}
	decode(t, w, &resp)
	if resp.Added != 1 || resp.Updated != 0 {
		t.Errorf("expected 1 added on first import, got %+v", resp)
	}

	w = env.do(t, http.MethodPost, "/api/pantry/import", payload)
	if w.Code != http.StatusOK {
		t.Fatalf("second import returned %d: %s", w.Code, w.Body.String())
	}
	decode(t, w, &resp)
	if resp.Added != 0 || resp.Updated != 1 {
		t.Errorf("expected 1 updated on re-import, got %+v", resp)
	}

	var items []pantry.Item
	w = env.do(t, http.MethodGet, "/api/pantry", nil)
	decode(t, w, &items)
	if len(items) != 1 {
		t.Fatalf("expected a single Eggs row, got %d", len(items))
	}
	if items[0].Quantity != 12 {
		t.Errorf("expected quantity summed to 12, got %v", items[0].Quantity)
	}

	w = env.do(t, http.MethodPost, "/api/pantry/import", gin.H{"items": []gin.H{}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty import batch, got %d", w.Code)
	}
}

func TestUpdateRecipeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec := recipe.Recipe{
		ID:          "r1",
		Name:        "Toast",
		Servings:    1,
		Ingredients: []recipe.Ingredient{{Name: "bread", Quantity: "2", Unit: "slices"}},
	}
	if err := env.recipes.Save(ctx, &rec); err != nil {
		t.Fatal(err)
	}

	w := env.do(t, http.MethodPut, "/api/recipes/r1", gin.H{
		"id":       "ignored",
		"name":     "French Toast",
		"servings": 2,
		"ingredients": []gin.H{
			{"name": "bread", "quantity": "4", "unit": "slices"},
			{"name": "eggs", "quantity": "2"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update returned %d: %s", w.Code, w.Body.String())
	}

	stored, err := env.recipes.Get(ctx, "r1")
	if err != nil {
		t.Fatalf("updated recipe not found under path id: %v", err)
	}
	if stored.Name != "French Toast" || len(stored.Ingredients) != 2 {
		t.Errorf("unexpected stored recipe: %+v", stored)
	}

	w = env.do(t, http.MethodPut, "/api/recipes/missing", gin.H{"name": "Ghost"})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown recipe, got %d", w.Code)
	}
}

func TestScaledRecipeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec := recipe.Recipe{
		ID:          "r1",
		Name:        "Pancakes",
		Servings:    2,
		Ingredients: []recipe.Ingredient{{Name: "flour", Quantity: "2", Unit: "cups"}},
	}
	if err := env.recipes.Save(ctx, &rec); err != nil {
		t.Fatal(err)
	}

	w := env.do(t, http.MethodGet, "/api/recipes/r1/scaled?servings=4", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("scaled returned %d: %s", w.Code, w.Body.String())
	}

	var scaled recipe.Recipe
	decode(t, w, &scaled)
	if scaled.Servings != 4 || scaled.Ingredients[0].Quantity != "4" {
		t.Errorf("unexpected scaled recipe: %+v", scaled)
	}

	stored, _ := env.recipes.Get(ctx, "r1")
	if stored.Servings != 2 {
		t.Errorf("scaling must not mutate the stored recipe, got servings %d", stored.Servings)
	}

	w = env.do(t, http.MethodGet, "/api/recipes/r1/scaled?servings=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad servings, got %d", w.Code)
	}
}

func TestCookEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec := recipe.Recipe{
		ID:       "r1",
		Name:     "Omelette",
		Servings: 2,
		Ingredients: []recipe.Ingredient{
			{Name: "eggs", Quantity: "3", Unit: "pieces"},
		},
	}
	if err := env.recipes.Save(ctx, &rec); err != nil {
		t.Fatal(err)
	}
	item := pantry.Item{Name: "eggs", Quantity: 6}
	if err := env.pantry.Create(ctx, &item); err != nil {
		t.Fatal(err)
	}

	w := env.do(t, http.MethodPost, "/api/pantry/cook", gin.H{
		"recipe_id":           "r1",
		"servings_multiplier": 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("cook returned %d: %s", w.Code, w.Body.String())
	}

	var result struct {
		Deducted []struct {
			Name           string  `json:"name"`
			AmountDeducted float64 `json:"amount_deducted"`
		} `json:"deducted"`
		MissingIngredients []string `json:"missing_ingredients"`
	}
	decode(t, w, &result)
	if len(result.Deducted) != 1 || result.Deducted[0].AmountDeducted != 3 {
		t.Errorf("unexpected cook result: %+v", result)
	}

	w = env.do(t, http.MethodPost, "/api/pantry/cook", gin.H{
		"recipe_id": "missing", "servings_multiplier": 1,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown recipe, got %d", w.Code)
	}
}

func TestExpiringSoonEndpoint(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tomorrow := time.Now().AddDate(0, 0, 1)
	yesterday := time.Now().AddDate(0, 0, -1)
	for _, item := range []pantry.Item{
		{Name: "yogurt", Quantity: 1, ExpiryDate: &tomorrow},
		{Name: "old milk", Quantity: 1, ExpiryDate: &yesterday},
	} {
		it := item
		if err := env.pantry.Create(ctx, &it); err != nil {
			t.Fatal(err)
		}
	}

	w := env.do(t, http.MethodGet, "/api/pantry/expiring-soon", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expiring-soon returned %d", w.Code)
	}

	var resp struct {
		ExpiringItems []pantry.ExpiryStatus `json:"expiring_items"`
		ExpiredItems  []pantry.ExpiryStatus `json:"expired_items"`
		Message       string                `json:"message"`
	}
	decode(t, w, &resp)
	if len(resp.ExpiringItems) != 1 || len(resp.ExpiredItems) != 1 {
		t.Errorf("unexpected report: %+v", resp)
	}

	w = env.do(t, http.MethodGet, "/api/pantry/expiring-soon?days=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad days, got %d", w.Code)
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/suggestions/meals", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("suggestions returned %d", w.Code)
	}

	var resp struct {
		Suggestions []json.RawMessage `json:"suggestions"`
		Message     string            `json:"message"`
	}
	decode(t, w, &resp)
	if len(resp.Suggestions) != 0 {
		t.Errorf("expected no suggestions on empty data, got %d", len(resp.Suggestions))
	}
	if resp.Message == "" {
		t.Error("expected a message for the empty state")
	}
}

func TestShoppingListEndpoints(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rec := recipe.Recipe{
		ID:   "r1",
		Name: "Toast",
		Ingredients: []recipe.Ingredient{
			{Name: "bread", Quantity: "2", Unit: "slices"},
		},
	}
	if err := env.recipes.Save(ctx, &rec); err != nil {
		t.Fatal(err)
	}

	w := env.do(t, http.MethodGet, "/api/shopping-list", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before any list, got %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/api/shopping-list/generate", gin.H{
		"recipe_ids": []string{"r1"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("generate returned %d: %s", w.Code, w.Body.String())
	}

	var list shopping.List
	decode(t, w, &list)
	if len(list.Items) != 1 || list.Items[0].Name != "bread" {
		t.Errorf("unexpected generated list: %+v", list.Items)
	}

	w = env.do(t, http.MethodPost, "/api/shopping-list/add-item", gin.H{
		"name": "coffee", "quantity": "1", "unit": "bag",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add-item returned %d", w.Code)
	}
	decode(t, w, &list)
	if len(list.Items) != 2 {
		t.Errorf("expected 2 items after add, got %d", len(list.Items))
	}

	w = env.do(t, http.MethodDelete, "/api/shopping-list/item/"+list.Items[1].ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete item returned %d", w.Code)
	}
}

func TestWeeklyPlanEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/weekly-plan", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before any plan, got %d", w.Code)
	}

	w = env.do(t, http.MethodPost, "/api/weekly-plan", gin.H{
		"week_start": "2026-09-07",
		"days": []gin.H{
			{"day": "monday", "recipe_ids": []string{"r1"}},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("save plan returned %d: %s", w.Code, w.Body.String())
	}

	w = env.do(t, http.MethodGet, "/api/weekly-plan?week_start=2026-09-07", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get plan returned %d", w.Code)
	}

	var plan planner.WeeklyPlan
	decode(t, w, &plan)
	if plan.WeekStart != "2026-09-07" || len(plan.Days) != 1 {
		t.Errorf("unexpected plan: %+v", plan)
	}

	w = env.do(t, http.MethodGet, "/api/weekly-plan/all", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list plans returned %d", w.Code)
	}
}
