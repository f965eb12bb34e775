package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fresh-pantry/internal/clipper"
	"fresh-pantry/internal/kitchen"
	"fresh-pantry/internal/pantry"
	"fresh-pantry/internal/planner"
	"fresh-pantry/internal/recipe"
	"fresh-pantry/internal/shopping"
)

// Handler bundles the services behind the HTTP API.
type Handler struct {
	logger        *zap.Logger
	pantry        pantry.Repository
	recipes       recipe.Repository
	kitchen       *kitchen.Service
	shopping      *shopping.Service
	plans         planner.Repository
	clipper       *clipper.Clipper
	expiryHorizon int
}

// HandlerConfig wires a Handler's collaborators.
type HandlerConfig struct {
	Logger        *zap.Logger
	Pantry        pantry.Repository
	Recipes       recipe.Repository
	Kitchen       *kitchen.Service
	Shopping      *shopping.Service
	Plans         planner.Repository
	Clipper       *clipper.Clipper
	ExpiryHorizon int
}

// NewHandler creates the API handler set.
func NewHandler(cfg HandlerConfig) *Handler {
	horizon := cfg.ExpiryHorizon
	if horizon <= 0 {
		horizon = pantry.DefaultExpiryHorizonDays
	}
	return &Handler{
		logger:        cfg.Logger,
		pantry:        cfg.Pantry,
		recipes:       cfg.Recipes,
		kitchen:       cfg.Kitchen,
		shopping:      cfg.Shopping,
		plans:         cfg.Plans,
		clipper:       cfg.Clipper,
		expiryHorizon: horizon,
	}
}

// writeError maps service errors to HTTP statuses: unknown IDs become
// 404, exhausted concurrency retries become 409, the rest 500.
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pantry.ErrNotFound),
		errors.Is(err, recipe.ErrNotFound),
		errors.Is(err, shopping.ErrNotFound),
		errors.Is(err, planner.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, pantry.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request handling failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Fresh Pantry API"})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
