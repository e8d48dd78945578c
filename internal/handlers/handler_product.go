package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to products and services.
type productHandler struct {
	productService  portssvc.ProductSvcFacade
	categoryService portssvc.CategorySvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade, cs portssvc.CategorySvcFacade) *productHandler {
	return &productHandler{productService: ps, categoryService: cs}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade, categoryService portssvc.CategorySvcFacade) {
	h := newProductHandler(productService, categoryService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		products.GET("/select-items", h.listSelectItems)
		products.GET("/by-category", h.listByCategory)
		products.GET("/not-in-category", h.listNotInCategory)
		products.POST("/move-category", h.moveCategory)
		products.POST("/update-category", h.updateCategory)
	}
}

// listProducts godoc
// @Summary List products
// @Tags products
// @Produce  json
// @Success 200 {array} dto.ProductResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}
	products, err := h.productService.ListProducts(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, logger, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// listSelectItems godoc
// @Summary List products as select items
// @Tags products
// @Produce  json
// @Success 200 {array} dto.SelectItem
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /products/select-items [get]
func (h *productHandler) listSelectItems(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}
	items, err := h.productService.ListProductSelectItems(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, logger, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, items)
}

// categoryParam binds ?categoryId=; absent or 0 selects uncategorised products.
func categoryParam(c *gin.Context, logger *slog.Logger) (*int64, bool) {
	var params dto.ProductCategoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for product listing", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return nil, false
	}
	if params.CategoryID == 0 {
		return nil, true
	}
	return &params.CategoryID, true
}

// listByCategory godoc
// @Summary List products of a category
// @Description A missing or zero categoryId lists uncategorised products
// @Tags products
// @Produce  json
// @Param   categoryId query int false "Category ID"
// @Success 200 {array} dto.ProductResponse
// @Failure 403 {object} map[string]string "Category belongs to another user"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /products/by-category [get]
func (h *productHandler) listByCategory(c *gin.Context) {
	h.listScoped(c, h.productService.ListProductsByCategory)
}

// listNotInCategory godoc
// @Summary List products outside a category
// @Description A missing or zero categoryId lists every categorised product
// @Tags products
// @Produce  json
// @Param   categoryId query int false "Category ID"
// @Success 200 {array} dto.ProductResponse
// @Failure 403 {object} map[string]string "Category belongs to another user"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /products/not-in-category [get]
func (h *productHandler) listNotInCategory(c *gin.Context) {
	h.listScoped(c, h.productService.ListProductsNotInCategory)
}

func (h *productHandler) listScoped(c *gin.Context, list func(ctx context.Context, tenantID int64, categoryID *int64) ([]domain.Product, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID, ok := categoryParam(c, logger)
	if !ok {
		return
	}
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}
	products, err := list(c.Request.Context(), tenantID, categoryID)
	if err != nil {
		respondError(c, logger, err, "Failed to list products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// createProduct godoc
// @Summary Create a product or service
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Category belongs to another user"
// @Failure 404 {object} map[string]string "Category or unit not found"
// @Security BearerAuth
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}
	product, err := h.productService.CreateProduct(c.Request.Context(), tenantID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// moveCategory godoc
// @Summary Move every product of a category
// @Description A null toCategoryId leaves the products uncategorised
// @Tags products
// @Accept  json
// @Produce  json
// @Param   move body dto.MoveProductsRequest true "Source and target categories"
// @Success 200 {object} dto.MoveProductsResponse
// @Failure 403 {object} map[string]string "Category belongs to another user"
// @Failure 404 {object} map[string]string "Category not found"
// @Security BearerAuth
// @Router /products/move-category [post]
func (h *productHandler) moveCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MoveProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MoveProducts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}
	moved, err := h.categoryService.MoveProducts(c.Request.Context(), tenantID, req.FromCategoryID, req.ToCategoryID)
	if err != nil {
		respondError(c, logger, err, "Failed to move products")
		return
	}
	c.JSON(http.StatusOK, dto.MoveProductsResponse{Moved: moved})
}

// updateCategory godoc
// @Summary Change the category of one product
// @Tags products
// @Accept  json
// @Produce  json
// @Param   update body dto.UpdateProductCategoryRequest true "Product and category"
// @Success 200 {object} dto.ProductResponse
// @Failure 403 {object} map[string]string "Category belongs to another user"
// @Failure 404 {object} map[string]string "Product or category not found"
// @Security BearerAuth
// @Router /products/update-category [post]
func (h *productHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateProductCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProductCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	tenantID, ok := tenantOrAbort(c, logger)
	if !ok {
		return
	}
	product, err := h.productService.UpdateProductCategory(c.Request.Context(), tenantID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}
