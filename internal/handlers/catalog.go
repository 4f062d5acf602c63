// internal/handlers/catalog.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/aigrocery/catalog-backend/internal/catalog"
	"github.com/aigrocery/catalog-backend/internal/models"
	"github.com/aigrocery/catalog-backend/internal/seed"
	"github.com/aigrocery/catalog-backend/internal/utils"
)

type CatalogHandler struct {
	service  *catalog.Service
	resource string // i18n message namespace: "tool" or "game"
}

func NewCatalogHandler(service *catalog.Service, resource string) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		resource: resource,
	}
}

// entryView is a catalog entry as the list and detail endpoints return it.
type entryView struct {
	models.CatalogEntry
	CommentCount int `json:"comment_count"`
}

func toView(e models.CatalogEntry) entryView {
	return entryView{CatalogEntry: e, CommentCount: len(e.Comments)}
}

func toViews(entries []models.CatalogEntry) []entryView {
	out := make([]entryView, len(entries))
	for i, e := range entries {
		out[i] = toView(e)
	}
	return out
}

// GET /v1/{tools|games}
func (h *CatalogHandler) List(c *gin.Context) {
	category := c.Query("category")
	query := c.Query("q")
	method := models.SortMethod(c.Query("sort"))

	entries := h.service.Browse(category, query, method)

	utils.SuccessResponseWithMeta(c, toViews(entries), gin.H{
		"total": len(entries),
	})
}

// GET /v1/{tools|games}/:id
func (h *CatalogHandler) Get(c *gin.Context) {
	entry, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.NotFoundResponse(c, h.resource)
			return
		}
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, toView(entry))
}

// GET /v1/{tools|games}/categories
func (h *CatalogHandler) Categories(c *gin.Context) {
	names := h.service.Categories()
	categories := make([]gin.H, len(names))
	for i, name := range names {
		categories[i] = gin.H{
			"name":  name,
			"emoji": seed.CategoryEmoji(name),
		}
	}

	utils.SuccessResponse(c, gin.H{
		"categories": categories,
	})
}

// GET /v1/{tools|games}/recent
func (h *CatalogHandler) Recent(c *gin.Context) {
	utils.SuccessResponse(c, toViews(h.service.RecentEntries()))
}
