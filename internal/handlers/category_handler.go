package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hucha/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Color string `json:"color" binding:"required,max=7,hex_color"`
}

// UpdateCategoryRequest represents the request payload for updating a category
type UpdateCategoryRequest struct {
	ID    uint    `json:"id" binding:"required"`
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Color *string `json:"color" binding:"omitempty,max=7,hex_color"`
}

// DeleteCategoryRequest represents the request payload for deleting a category
type DeleteCategoryRequest struct {
	ID uint `json:"id" binding:"required"`
}

// GetUserCategories lists the user's categories ordered by name
// @Summary     List categories
// @Description Get all categories of the authenticated user, ordered by name
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "List of categories"
// @Failure     401 {object} map[string]interface{} "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetUserCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	categories, err := h.categoryService.GetUserCategories(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		data = append(data, gin.H{
			"id":         category.ID,
			"name":       category.Name,
			"color":      category.Color,
			"created_at": category.CreatedAt,
		})
	}

	respondSuccess(c, http.StatusOK, "", data)
}

// CreateCategory creates a new category
// @Summary     Create a category
// @Description Create a new category with a unique name per user
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} map[string]interface{} "Category created"
// @Failure     422 {object} map[string]interface{} "Validation error or duplicate name"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(userID, req.Name, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, "Categoría creada exitosamente", gin.H{
		"id":         category.ID,
		"name":       category.Name,
		"color":      category.Color,
		"created_at": category.CreatedAt,
	})
}

// UpdateCategory partially updates a category
// @Summary     Update a category
// @Description Update the name and/or color of a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateCategoryRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Category updated"
// @Failure     404 {object} map[string]interface{} "Not found or not owned"
// @Failure     422 {object} map[string]interface{} "Validation error or duplicate name"
// @Router      /categories/update [post]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(userID, req.ID, services.CategoryUpdateFields{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Categoría actualizada exitosamente", gin.H{
		"id":         category.ID,
		"name":       category.Name,
		"color":      category.Color,
		"updated_at": category.UpdatedAt,
	})
}

// DeleteCategory deletes a category not referenced by any transaction
// @Summary     Delete a category
// @Description Delete a category; refused while any transaction uses its name
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body DeleteCategoryRequest true "Category id"
// @Success     200 {object} map[string]interface{} "Category deleted"
// @Failure     404 {object} map[string]interface{} "Not found or not owned"
// @Failure     422 {object} map[string]interface{} "Category in use"
// @Router      /categories/delete [post]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req DeleteCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(userID, req.ID); err != nil {
		respondWithError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Categoría eliminada exitosamente", nil)
}
