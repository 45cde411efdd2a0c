package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tanzine/internal/catalog"
	apperrors "tanzine/internal/errors"
)

// CategoryHandler serves the fixed category catalog.
type CategoryHandler struct{}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// ListCategories returns the catalog in display order.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": catalog.All()})
}

// GetCategory resolves a category id. Unknown ids are a 404 here; the ledger
// itself stores them as the default category instead.
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	cat, known := catalog.Lookup(c.Param("id"))
	if !known {
		respondWithError(c, apperrors.ErrCategoryNotFound)
		return
	}
	c.JSON(http.StatusOK, cat)
}
