// internal/handlers/feedback.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/aigrocery/catalog-backend/internal/catalog"
	"github.com/aigrocery/catalog-backend/internal/i18n"
	"github.com/aigrocery/catalog-backend/internal/utils"
)

// FeedbackHandler serves ratings, comments and the session-scoped star
// selection cache for one catalog instance.
type FeedbackHandler struct {
	service  *catalog.Service
	resource string
}

func NewFeedbackHandler(service *catalog.Service, resource string) *FeedbackHandler {
	return &FeedbackHandler{
		service:  service,
		resource: resource,
	}
}

type SubmitRatingRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

type AddCommentRequest struct {
	Author  string `json:"author" validate:"required,not_blank"`
	Content string `json:"content" validate:"required,not_blank,max=500"`
	Rating  int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

type StarSelectionRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

// POST /v1/{tools|games}/:id/ratings
func (h *FeedbackHandler) SubmitRating(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	result, err := h.service.SubmitRating(c.Param("id"), req.Rating)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// A submit supersedes any cached star selection for this session. The
	// vote already persisted, so a failed cleanup is not worth failing over.
	_ = h.service.ClearStarSelection(sessionID(c), c.Param("id"))

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyRatingSubmitted),
		"result":  result,
	})
}

// GET /v1/{tools|games}/:id/comments
func (h *FeedbackHandler) ListComments(c *gin.Context) {
	// Resolve the entry first so a stale id gets a 404 rather than an
	// empty list.
	if _, err := h.service.GetByID(c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	comments := h.service.ListComments(c.Param("id"))
	utils.SuccessResponseWithMeta(c, comments, gin.H{
		"total": len(comments),
	})
}

// POST /v1/{tools|games}/:id/comments
func (h *FeedbackHandler) AddComment(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	comment, err := h.service.AddComment(c.Param("id"), req.Author, req.Content, req.Rating)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCommentCreated),
		"comment": comment,
	})
}

// POST /v1/tools/:id/visits and /v1/games/:id/plays
func (h *FeedbackHandler) RecordVisit(c *gin.Context) {
	if err := h.service.RecordVisit(c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	entry, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"usage_count": entry.UsageCount,
	})
}

// GET /v1/games/:id/star-selection
func (h *FeedbackHandler) GetStarSelection(c *gin.Context) {
	stars, ok := h.service.StarSelection(sessionID(c), c.Param("id"))
	utils.SuccessResponse(c, gin.H{
		"rating":   stars,
		"selected": ok,
	})
}

// PUT /v1/games/:id/star-selection
func (h *FeedbackHandler) SetStarSelection(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req StarSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.service.SetStarSelection(sessionID(c), c.Param("id"), req.Rating); err != nil {
		h.handleError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"rating": req.Rating})
}

// DELETE /v1/games/:id/star-selection
func (h *FeedbackHandler) ClearStarSelection(c *gin.Context) {
	if err := h.service.ClearStarSelection(sessionID(c), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"cleared": true})
}

func (h *FeedbackHandler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		utils.NotFoundResponse(c, h.resource)
	case errors.Is(err, catalog.ErrValidation):
		utils.BadRequestResponse(c, err.Error(), nil)
	default:
		utils.InternalErrorResponse(c, "")
	}
}

// sessionID identifies the caller's session for the transient star cache.
// There are no accounts; a client-chosen header is enough, with the client
// IP as a crude fallback.
func sessionID(c *gin.Context) string {
	if sid := c.GetHeader("X-Session-ID"); sid != "" {
		return sid
	}
	return c.ClientIP()
}
