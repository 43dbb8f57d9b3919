package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Arnab1999india/bazaar/apperrors"
	"github.com/Arnab1999india/bazaar/middleware"
	"github.com/Arnab1999india/bazaar/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductController struct {
	service ProductServiceAPI
	cache   *CacheManager
}

func NewProductController(service ProductServiceAPI, cache *CacheManager) *ProductController {
	return &ProductController{service: service, cache: cache}
}

// ListProducts handles GET /products: filtered, sorted, paginated listings.
// Rendered pages are served from the listing cache when possible.
func (pc *ProductController) ListProducts(c *gin.Context) {
	q := ParseProductQuery(c)

	if body, ok := pc.cache.GetList(c.Request.Context(), q); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	page, err := pc.service.ListProducts(c.Request.Context(), q)
	if err != nil {
		c.Error(err)
		return
	}

	envelope := gin.H{
		"success":    true,
		"data":       page.Products,
		"pagination": page.Pagination,
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		c.Error(apperrors.Internal("failed to encode response", err))
		return
	}

	pc.cache.SetListAsync(q, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// GetProduct handles GET /products/:id.
func (pc *ProductController) GetProduct(c *gin.Context) {
	detail, err := pc.service.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": detail})
}

// GetVariants handles GET /products/:id/variants.
func (pc *ProductController) GetVariants(c *gin.Context) {
	variants, err := pc.service.GetVariants(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "variants": variants})
}

// Recommendations handles GET /products/:id/recommendations.
func (pc *ProductController) Recommendations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	products, err := pc.service.Recommendations(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

// CreateProduct handles POST /products for sellers.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var in services.CreateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperrors.Validation("invalid request body", nil))
		return
	}

	product, err := pc.service.CreateProduct(c.Request.Context(), middleware.UserID(c), in)
	if err != nil {
		c.Error(err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	zap.L().Info("product created",
		zap.String("product", product.ID.Hex()),
		zap.String("owner", product.Owner))
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
}

// UpdateProduct handles PUT /products/:id for sellers.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var in services.UpdateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperrors.Validation("invalid request body", nil))
		return
	}

	product, err := pc.service.UpdateProduct(c.Request.Context(), middleware.UserID(c), c.Param("id"), in)
	if err != nil {
		c.Error(err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// DeleteProduct handles DELETE /products/:id for sellers.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := pc.service.DeleteProduct(c.Request.Context(), middleware.UserID(c), id); err != nil {
		c.Error(err)
		return
	}

	pc.cache.Invalidate(c.Request.Context())
	zap.L().Info("product deleted", zap.String("product", id))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
