package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fresh-pantry/internal/shopping"
)

type generateListRequest struct {
	RecipeIDs []string `json:"recipe_ids" binding:"required"`
}

func (h *Handler) generateShoppingList(c *gin.Context) {
	var req generateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.shopping.Generate(c.Request.Context(), req.RecipeIDs)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getShoppingList(c *gin.Context) {
	list, err := h.shopping.Current(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

type updateListRequest struct {
	Items []shopping.ListItem `json:"items" binding:"required"`
}

func (h *Handler) updateShoppingList(c *gin.Context) {
	var req updateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	list, err := h.shopping.Update(c.Request.Context(), req.Items)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) addShoppingItem(c *gin.Context) {
	var item shopping.ListItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item name is required"})
		return
	}

	list, err := h.shopping.AddItem(c.Request.Context(), item)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) deleteShoppingItem(c *gin.Context) {
	if err := h.shopping.RemoveItem(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
