// internal/router/router.go
package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aigrocery/catalog-backend/internal/catalog"
	"github.com/aigrocery/catalog-backend/internal/config"
	"github.com/aigrocery/catalog-backend/internal/handlers"
	"github.com/aigrocery/catalog-backend/internal/middleware"
	"github.com/aigrocery/catalog-backend/internal/models"
	"github.com/aigrocery/catalog-backend/internal/overlay"
	"github.com/aigrocery/catalog-backend/internal/seed"
)

// Initialize builds the two catalog instances over one overlay store and
// wires the HTTP surface.
func Initialize(store overlay.Store, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	toolService := catalog.NewService(catalog.Options{
		Entity:        "tool",
		CounterNoun:   "visits",
		FeedbackStyle: models.FeedbackStyleReview,
		DefaultSort:   models.SortMostVisited,
		Categories:    seed.ToolCategories,
		RecentLimit:   cfg.Catalog.RecentVisitsLimit,
	}, store)

	gameService := catalog.NewService(catalog.Options{
		Entity:        "game",
		CounterNoun:   "plays",
		FeedbackStyle: models.FeedbackStyleThread,
		DefaultSort:   models.SortHighestRated,
		Categories:    seed.GameCategories,
		RecentLimit:   cfg.Catalog.RecentVisitsLimit,
		CountDebounce: time.Duration(cfg.Catalog.PlayDebounceSeconds) * time.Second,
	}, store)

	if err := toolService.Initialize(seed.Tools()); err != nil {
		return nil, fmt.Errorf("failed to initialize tools catalog: %w", err)
	}
	if err := gameService.Initialize(seed.Games()); err != nil {
		return nil, fmt.Errorf("failed to initialize games catalog: %w", err)
	}

	// Initialize handlers
	toolCatalogHandler := handlers.NewCatalogHandler(toolService, "tool")
	toolFeedbackHandler := handlers.NewFeedbackHandler(toolService, "tool")
	gameCatalogHandler := handlers.NewCatalogHandler(gameService, "game")
	gameFeedbackHandler := handlers.NewFeedbackHandler(gameService, "game")

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		tools := v1.Group("/tools")
		{
			tools.GET("", toolCatalogHandler.List)
			tools.GET("/categories", toolCatalogHandler.Categories)
			tools.GET("/recent", toolCatalogHandler.Recent)
			tools.GET("/:id", toolCatalogHandler.Get)
			tools.GET("/:id/comments", toolFeedbackHandler.ListComments)
			tools.POST("/:id/visits", toolFeedbackHandler.RecordVisit)

			writes := tools.Group("")
			writes.Use(middleware.FeedbackRateLimit())
			{
				writes.POST("/:id/ratings", toolFeedbackHandler.SubmitRating)
				writes.POST("/:id/comments", toolFeedbackHandler.AddComment)
			}
		}

		games := v1.Group("/games")
		{
			games.GET("", gameCatalogHandler.List)
			games.GET("/categories", gameCatalogHandler.Categories)
			games.GET("/recent", gameCatalogHandler.Recent)
			games.GET("/:id", gameCatalogHandler.Get)
			games.GET("/:id/comments", gameFeedbackHandler.ListComments)
			games.POST("/:id/plays", gameFeedbackHandler.RecordVisit)

			games.GET("/:id/star-selection", gameFeedbackHandler.GetStarSelection)
			games.PUT("/:id/star-selection", gameFeedbackHandler.SetStarSelection)
			games.DELETE("/:id/star-selection", gameFeedbackHandler.ClearStarSelection)

			writes := games.Group("")
			writes.Use(middleware.FeedbackRateLimit())
			{
				writes.POST("/:id/ratings", gameFeedbackHandler.SubmitRating)
				writes.POST("/:id/comments", gameFeedbackHandler.AddComment)
			}
		}
	}

	return r, nil
}
