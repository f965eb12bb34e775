package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fresh-pantry/internal/pantry"
	"fresh-pantry/internal/shared"
)

type pantryItemRequest struct {
	Name            string  `json:"name" binding:"required"`
	Quantity        float64 `json:"quantity"`
	Unit            string  `json:"unit"`
	Category        string  `json:"category"`
	MinThreshold    float64 `json:"min_threshold"`
	TypicalPurchase float64 `json:"typical_purchase"`
	ExpiryDate      *string `json:"expiry_date"`
}

func (r pantryItemRequest) apply(item *pantry.Item) error {
	item.Name = r.Name
	item.Quantity = r.Quantity
	item.Unit = r.Unit
	item.Category = shared.ParseCategory(r.Category)
	item.MinThreshold = r.MinThreshold
	item.TypicalPurchase = r.TypicalPurchase

	if r.ExpiryDate == nil || *r.ExpiryDate == "" {
		item.ExpiryDate = nil
		return nil
	}
	expiry, err := parseDate(*r.ExpiryDate)
	if err != nil {
		return err
	}
	item.ExpiryDate = &expiry
	return nil
}

// parseDate accepts a plain date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return t, nil
}

func (h *Handler) listPantry(c *gin.Context) {
	items, err := h.pantry.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) createPantryItem(c *gin.Context) {
	var req pantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item pantry.Item
	if err := req.apply(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.pantry.Create(c.Request.Context(), &item); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) updatePantryItem(c *gin.Context) {
	var req pantryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	ctx := c.Request.Context()

	// Re-read and retry on version conflicts so a stale concurrent edit
	// does not bounce back to the client unnecessarily.
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		item, err := h.pantry.Get(ctx, id)
		if err != nil {
			h.writeError(c, err)
			return
		}
		if err := req.apply(item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = h.pantry.Update(ctx, item)
		if errors.Is(err, pantry.ErrConflict) {
			lastErr = err
			continue
		}
		if err != nil {
			h.writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
		return
	}
	h.writeError(c, lastErr)
}

func (h *Handler) deletePantryItem(c *gin.Context) {
	if err := h.pantry.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

type cookRequest struct {
	RecipeID           string  `json:"recipe_id" binding:"required"`
	ServingsMultiplier float64 `json:"servings_multiplier"`
}

func (h *Handler) cook(c *gin.Context) {
	var req cookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.kitchen.Cook(c.Request.Context(), req.RecipeID, req.ServingsMultiplier)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) expiringSoon(c *gin.Context) {
	days := h.expiryHorizon
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a non-negative integer"})
			return
		}
		days = parsed
	}

	items, err := h.pantry.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	report := pantry.ExpiryBuckets(items, days)
	message := fmt.Sprintf("%d items expiring within %d days, %d expired",
		len(report.Expiring), days, len(report.Expired))

	c.JSON(http.StatusOK, gin.H{
		"expiring_items": report.Expiring,
		"expired_items":  report.Expired,
		"message":        message,
	})
}

func (h *Handler) lowStock(c *gin.Context) {
	items, err := h.pantry.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	low := pantry.LowStock(items)
	c.JSON(http.StatusOK, gin.H{
		"items":   low,
		"message": fmt.Sprintf("%d items running low", len(low)),
	})
}

func (h *Handler) consolidatePantry(c *gin.Context) {
	merged, err := h.kitchen.Consolidate(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"merged":  merged,
		"message": fmt.Sprintf("Merged %d duplicate items", merged),
	})
}

type pantryImportRequest struct {
	Items []pantry.ImportRecord `json:"items" binding:"required"`
}

func (h *Handler) importPantry(c *gin.Context) {
	var req pantryImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items must not be empty"})
		return
	}

	result, err := h.kitchen.ImportPantry(c.Request.Context(), req.Items)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"added":   result.Added,
		"updated": result.Updated,
		"message": fmt.Sprintf("Added %d new items, updated %d existing items", result.Added, result.Updated),
	})
}
