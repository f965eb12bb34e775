package clipper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"fresh-pantry/internal/recipe"
	"fresh-pantry/internal/shared"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Clipper fetches recipe pages and extracts structured recipe data from
// known markup patterns. Ingredient lines are kept verbatim; structuring
// them into quantity/unit/name is left to the caller.
type Clipper struct {
	client *http.Client
}

// NewClipper creates a Clipper with a default HTTP client.
func NewClipper() *Clipper {
	return &Clipper{client: &http.Client{Timeout: 15 * time.Second}}
}

// ClipURL fetches url and extracts a recipe draft from its markup.
func (c *Clipper) ClipURL(ctx context.Context, url string) (*recipe.Recipe, error) {
	doc, err := c.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	// Scripts and chrome only add noise to text extraction.
	doc.Find("script, style, nav, footer, iframe").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	name := firstText(doc, "h1", ".recipe-title", `[data-test-id="recipe-name"]`, ".recipe-name")
	if name == "" {
		name = "Imported Recipe"
	}

	description := firstText(doc, ".recipe-description", `[data-test-id="recipe-description"]`)
	if description == "" {
		description = metaContent(doc, `meta[name="description"]`)
	}

	rec := &recipe.Recipe{
		Name:         name,
		Description:  description,
		Servings:     1,
		Ingredients:  extractIngredients(doc),
		Instructions: extractInstructions(doc),
		SourceURL:    url,
	}
	return rec, nil
}

func (c *Clipper) fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// extractIngredients pulls one ingredient per line from the first
// ingredient container found, falling back to individual list items.
func extractIngredients(doc *goquery.Document) []recipe.Ingredient {
	lines := containerLines(doc, ".ingredients", `[data-test-id="ingredients"]`, ".recipe-ingredients", ".ingredient-list")
	if len(lines) == 0 {
		doc.Find(`li[class*="ingredient"], .ingredient-item`).Each(func(i int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				lines = append(lines, text)
			}
		})
	}

	ingredients := make([]recipe.Ingredient, 0, len(lines))
	for _, line := range lines {
		ingredients = append(ingredients, recipe.Ingredient{
			Name:     line,
			Category: shared.CategoryOther,
		})
	}
	return ingredients
}

func extractInstructions(doc *goquery.Document) []string {
	return containerLines(doc, ".instructions", `[data-test-id="instructions"]`, ".recipe-instructions", ".directions")
}

// containerLines returns the non-empty text lines of the first selector
// that matches.
func containerLines(doc *goquery.Document, selectors ...string) []string {
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}

		var lines []string
		if items := sel.Find("li"); items.Length() > 0 {
			items.Each(func(i int, s *goquery.Selection) {
				if text := strings.TrimSpace(s.Text()); text != "" {
					lines = append(lines, text)
				}
			})
			return lines
		}

		for _, line := range strings.Split(sel.Text(), "\n") {
			if text := strings.TrimSpace(line); text != "" {
				lines = append(lines, text)
			}
		}
		return lines
	}
	return nil
}

func firstText(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 {
			if text := strings.TrimSpace(sel.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}
