package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to the category forest.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers routes related to categories.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.getTree)
		categories.GET("/select-items", h.listSelectItems)
		categories.POST("", h.createCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
		categories.POST("/:id/merge", h.mergeCategory)
	}
}

// getTree godoc
// @Summary Get the category tree
// @Description Returns the caller's categories nested under their parents
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryTreeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to load categories"
// @Security BearerAuth
// @Router /categories [get]
func (h *categoryHandler) getTree(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}

	tree, err := h.categoryService.GetCategoryTree(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, logger, err, "Failed to load categories")
		return
	}
	c.JSON(http.StatusOK, tree)
}

// listSelectItems godoc
// @Summary List categories as select items
// @Description Every category labelled with its full path, sorted by label
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.SelectItem
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /categories/select-items [get]
func (h *categoryHandler) listSelectItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}

	items, err := h.categoryService.ListCategorySelectItems(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, logger, err, "Failed to load categories")
		return
	}
	c.JSON(http.StatusOK, items)
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Parent belongs to another user"
// @Failure 404 {object} map[string]string "Parent not found"
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), tenantID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Rename or move a category
// @Description An absent superCategoryId keeps the parent, null moves the category to the root
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   id path int true "Category ID"
// @Param   category body dto.UpdateCategoryRequest true "Category details"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Move would create a cycle, or category belongs to another user"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /categories/{id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), tenantID, categoryID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update category")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category and its subcategories
// @Description Refused when the category or any descendant still has products
// @Tags categories
// @Param   id path int true "Category ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Category or a subcategory has products"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /categories/{id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), tenantID, categoryID); err != nil {
		respondError(c, logger, err, "Failed to delete category")
		return
	}
	c.Status(http.StatusNoContent)
}

// mergeCategory godoc
// @Summary Merge a category into another
// @Description Moves every product to the target and deletes the source with its subcategories
// @Tags categories
// @Accept  json
// @Produce  json
// @Param   id path int true "Source category ID"
// @Param   merge body dto.MergeCategoryRequest true "Target category"
// @Success 200 {object} dto.MoveProductsResponse
// @Failure 403 {object} map[string]string "Target is the source or one of its subcategories"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /categories/{id}/merge [post]
func (h *categoryHandler) mergeCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sourceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.MergeCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MergeCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}

	moved, err := h.categoryService.MergeCategory(c.Request.Context(), tenantID, sourceID, req.TargetCategoryID)
	if err != nil {
		respondError(c, logger, err, "Failed to merge category")
		return
	}
	c.JSON(http.StatusOK, dto.MoveProductsResponse{Moved: moved})
}
