package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
	"kharcha/internal/store"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	store *store.Store
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(st *store.Store) *CategoryHandler {
	return &CategoryHandler{store: st}
}

// CategoryRequest represents the payload for creating or editing a category
type CategoryRequest struct {
	Name          string   `json:"name" binding:"required"`
	Emoji         string   `json:"emoji"`
	Subcategories []string `json:"subs"`
}

// ListCategories handles listing all categories
// @Summary     List categories
// @Description List all categories with their subcategories
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Category "Categories"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	doc := h.store.Snapshot()

	cats := make([]models.Category, 0, len(doc.Categories))
	for _, cat := range doc.Categories {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].ID < cats[j].ID })

	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

// CreateCategory handles creating a new category
// @Summary     Create category
// @Description Create a new category with optional subcategories
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	cat, err := h.store.SaveCategory("", req.Name, req.Emoji, req.Subcategories)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": cat})
}

// UpdateCategory handles editing a category in place
// @Summary     Update category
// @Description Replace a category's name, emoji, and subcategory list.
// @Description Entries referencing a subcategory removed by the edit keep
// @Description their category but lose the subcategory reference.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Param       request body CategoryRequest true "Updated category details"
// @Success     200 {object} models.Category "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.store.Snapshot().Category(id); !ok {
		respondWithError(c, apperrors.ErrCategoryNotFound)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrValidation, err))
		return
	}

	cat, err := h.store.SaveCategory(id, req.Name, req.Emoji, req.Subcategories)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": cat})
}

// DeleteCategory handles deleting a category
// @Summary     Delete category
// @Description Delete a category. Entries that referenced it are kept with
// @Description their category and subcategory references cleared.
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.store.DeleteCategory(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
