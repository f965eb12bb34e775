package clipper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const recipePage = `<!DOCTYPE html>
<html>
<head>
<meta name="description" content="A quick weeknight pasta.">
<script>console.log("tracking");</script>
</head>
<body>
<nav>Home | Recipes</nav>
<h1>Garlic Butter Pasta</h1>
<div class="ingredients">
<ul>
<li>200g spaghetti</li>
<li>3 cloves garlic</li>
<li>2 tbsp butter</li>
</ul>
</div>
<div class="instructions">
<ul>
<li>Boil the pasta.</li>
<li>Melt butter and fry garlic.</li>
<li>Toss together.</li>
</ul>
</div>
<footer>© somewhere</footer>
</body>
</html>`

const barePage = `<html><body>
<div class="content">
<li class="ingredient-line">1 cup rice</li>
<li class="ingredient-line">2 cups water</li>
</div>
</body></html>`

func TestClipURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(recipePage))
	}))
	defer server.Close()

	rec, err := NewClipper().ClipURL(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("ClipURL failed: %v", err)
	}

	if rec.Name != "Garlic Butter Pasta" {
		t.Errorf("expected title from h1, got %q", rec.Name)
	}
	if rec.Description != "A quick weeknight pasta." {
		t.Errorf("expected meta description fallback, got %q", rec.Description)
	}
	if len(rec.Ingredients) != 3 || rec.Ingredients[0].Name != "200g spaghetti" {
		t.Errorf("unexpected ingredients: %+v", rec.Ingredients)
	}
	if len(rec.Instructions) != 3 || rec.Instructions[2] != "Toss together." {
		t.Errorf("unexpected instructions: %v", rec.Instructions)
	}
	if rec.SourceURL != server.URL {
		t.Errorf("expected source URL %q, got %q", server.URL, rec.SourceURL)
	}
}

func TestClipURLFallsBackToIngredientItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(barePage))
	}))
	defer server.Close()

	rec, err := NewClipper().ClipURL(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("ClipURL failed: %v", err)
	}

	if rec.Name != "Imported Recipe" {
		t.Errorf("expected default title, got %q", rec.Name)
	}
	if len(rec.Ingredients) != 2 || rec.Ingredients[1].Name != "2 cups water" {
		t.Errorf("unexpected ingredients: %+v", rec.Ingredients)
	}
}

func TestClipURLNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	if _, err := NewClipper().ClipURL(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
