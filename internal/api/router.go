package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fresh-pantry/internal/config"
)

// NewRouter builds the gin engine with middleware and all API routes.
func NewRouter(cfg *config.Config, h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(h.logger), Recovery(h.logger))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/", h.root)

	api := router.Group("/api")
	{
		api.GET("/health", h.health)

		pantryGroup := api.Group("/pantry")
		{
			pantryGroup.GET("", h.listPantry)
			pantryGroup.POST("/items", h.createPantryItem)
			pantryGroup.PUT("/items/:id", h.updatePantryItem)
			pantryGroup.DELETE("/items/:id", h.deletePantryItem)
			pantryGroup.POST("/cook", h.cook)
			pantryGroup.GET("/expiring-soon", h.expiringSoon)
			pantryGroup.GET("/low-stock", h.lowStock)
			pantryGroup.POST("/consolidate", h.consolidatePantry)
			pantryGroup.POST("/import", h.importPantry)
		}

		recipes := api.Group("/recipes")
		{
			recipes.POST("", h.createRecipe)
			recipes.GET("", h.listRecipes)
			recipes.GET("/grouped", h.groupedRecipes)
			recipes.POST("/import", h.importRecipe)
			recipes.GET("/:id", h.getRecipe)
			recipes.GET("/:id/scaled", h.scaledRecipe)
			recipes.PUT("/:id", h.updateRecipe)
			recipes.DELETE("/:id", h.deleteRecipe)
		}

		api.GET("/suggestions/meals", h.suggestMeals)

		list := api.Group("/shopping-list")
		{
			list.POST("/generate", h.generateShoppingList)
			list.GET("", h.getShoppingList)
			list.PUT("", h.updateShoppingList)
			list.POST("/add-item", h.addShoppingItem)
			list.DELETE("/item/:id", h.deleteShoppingItem)
		}

		plan := api.Group("/weekly-plan")
		{
			plan.POST("", h.saveWeeklyPlan)
			plan.GET("", h.getWeeklyPlan)
			plan.GET("/all", h.listWeeklyPlans)
		}
	}

	return router
}
