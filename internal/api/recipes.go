package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fresh-pantry/internal/kitchen"
	"fresh-pantry/internal/recipe"
)

func (h *Handler) createRecipe(c *gin.Context) {
	var rec recipe.Recipe
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if rec.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe name is required"})
		return
	}

	if err := h.recipes.Save(c.Request.Context(), &rec); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) listRecipes(c *gin.Context) {
	recipes, err := h.recipes.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (h *Handler) getRecipe(c *gin.Context) {
	rec, err := h.recipes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// scaledRecipe returns adjusted ingredient quantities for a serving count
// without touching the stored recipe.
func (h *Handler) scaledRecipe(c *gin.Context) {
	rec, err := h.recipes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	servings, err := strconv.Atoi(c.Query("servings"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "servings must be an integer"})
		return
	}

	c.JSON(http.StatusOK, rec.ScaledTo(servings))
}

func (h *Handler) updateRecipe(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.recipes.Get(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	var rec recipe.Recipe
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if rec.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "recipe name is required"})
		return
	}

	// The path, not the body, decides which recipe is replaced.
	rec.ID = id
	if err := h.recipes.Save(c.Request.Context(), &rec); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) deleteRecipe(c *gin.Context) {
	if err := h.recipes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}

type recipeImportRequest struct {
	URL string `json:"url" binding:"required"`
}

func (h *Handler) importRecipe(c *gin.Context) {
	var req recipeImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.clipper.ClipURL(c.Request.Context(), req.URL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("could not fetch recipe from URL: %v", err)})
		return
	}

	if err := h.recipes.Save(c.Request.Context(), rec); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *Handler) groupedRecipes(c *gin.Context) {
	groups, err := h.kitchen.GroupBySharedIngredient(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"groups":  groups,
		"message": fmt.Sprintf("%d shared-ingredient groups", len(groups)),
	})
}

func (h *Handler) suggestMeals(c *gin.Context) {
	filters := kitchen.SuggestFilters{
		MealType:     c.Query("meal_type"),
		ExpiringSoon: c.Query("expiring_soon") == "true",
	}

	suggestions, err := h.kitchen.SuggestMeals(c.Request.Context(), filters)
	if err != nil {
		h.writeError(c, err)
		return
	}

	message := fmt.Sprintf("%d meal suggestions", len(suggestions))
	if len(suggestions) == 0 {
		message = "No suggestions available - try adding more recipes or pantry items"
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": suggestions,
		"message":     message,
	})
}
