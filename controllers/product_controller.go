package controllers

import (
	"net/http"
	"strconv"

	"play-cards-store/models"
	"play-cards-store/services"

	"github.com/gin-gonic/gin"
)

// ProductController handles catalog HTTP requests.
type ProductController struct {
	productService *services.ProductService
}

// NewProductController creates a new ProductController.
func NewProductController(productService *services.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

// GetProducts handles GET /products with browse filters.
func (pc *ProductController) GetProducts(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	params := services.ListProductsParams{
		Page:      page,
		Limit:     limit,
		Category:  ctx.Query("category"),
		Rarity:    ctx.Query("rarity"),
		SortBy:    ctx.DefaultQuery("sortBy", "created_at"),
		SortOrder: ctx.DefaultQuery("sortOrder", "desc"),
	}
	if v := ctx.Query("minPrice"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			params.MinPrice = &min
		}
	}
	if v := ctx.Query("maxPrice"); v != "" {
		if max, err := strconv.ParseFloat(v, 64); err == nil {
			params.MaxPrice = &max
		}
	}

	products, total, svcErr := pc.productService.ListProducts(ctx.Request.Context(), params)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}

	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"meta": gin.H{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": totalPages,
			"has_more":    total > int64(page*limit),
		},
	})
}

// GetProduct handles GET /products/:id.
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	product, svcErr := pc.productService.GetProduct(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"product": product})
}

// GetFilters handles GET /products/categories.
func (pc *ProductController) GetFilters(ctx *gin.Context) {
	categories, rarities, svcErr := pc.productService.ListFilters(ctx.Request.Context())
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories, "rarities": rarities})
}

// CreateProduct handles POST /admin/products.
func (pc *ProductController) CreateProduct(ctx *gin.Context) {
	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	product, svcErr := pc.productService.CreateProduct(ctx.Request.Context(), &req)
	if svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"product": product})
}

// UpdateProduct handles PUT /admin/products/:id.
func (pc *ProductController) UpdateProduct(ctx *gin.Context) {
	var req models.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := pc.productService.UpdateProduct(ctx.Request.Context(), ctx.Param("id"), &req); svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// DeleteProduct handles DELETE /admin/products/:id.
func (pc *ProductController) DeleteProduct(ctx *gin.Context) {
	if svcErr := pc.productService.DeleteProduct(ctx.Request.Context(), ctx.Param("id")); svcErr != nil {
		respondError(ctx, svcErr)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
