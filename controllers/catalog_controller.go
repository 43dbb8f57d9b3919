package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Arnab1999india/bazaar/apperrors"
	"github.com/Arnab1999india/bazaar/middleware"
	"github.com/Arnab1999india/bazaar/services"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	service CatalogServiceAPI
	cache   *CacheManager
}

func NewCatalogController(service CatalogServiceAPI, cache *CacheManager) *CatalogController {
	return &CatalogController{service: service, cache: cache}
}

// Categories handles GET /catalog/categories: the category tree with
// rolled-up product counts.
func (cc *CatalogController) Categories(c *gin.Context) {
	const cacheKey = "categories"
	if body, ok := cc.cache.GetView(c.Request.Context(), cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	tree, err := cc.service.CategoryTree(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	body, err := json.Marshal(gin.H{"success": true, "categories": tree})
	if err != nil {
		c.Error(apperrors.Internal("failed to encode response", err))
		return
	}

	cc.cache.SetViewAsync(cacheKey, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// Brands handles GET /brands with an optional category scope.
func (cc *CatalogController) Brands(c *gin.Context) {
	brands, err := cc.service.Brands(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "brands": brands})
}

// Deals handles GET /catalog/deals: promotions currently inside their
// start/end window, each carrying a summary of the discounted product.
func (cc *CatalogController) Deals(c *gin.Context) {
	const cacheKey = "deals"
	if body, ok := cc.cache.GetView(c.Request.Context(), cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	deals, err := cc.service.Deals(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	body, err := json.Marshal(gin.H{"success": true, "deals": deals})
	if err != nil {
		c.Error(apperrors.Internal("failed to encode response", err))
		return
	}

	cc.cache.SetViewAsync(cacheKey, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// Bestsellers handles GET /catalog/bestsellers.
func (cc *CatalogController) Bestsellers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	category := c.Query("category")

	cacheKey := fmt.Sprintf("bestsellers:%s:%d", category, limit)
	if body, ok := cc.cache.GetView(c.Request.Context(), cacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	products, err := cc.service.Bestsellers(c.Request.Context(), category, limit)
	if err != nil {
		c.Error(err)
		return
	}

	body, err := json.Marshal(gin.H{"success": true, "products": products})
	if err != nil {
		c.Error(apperrors.Internal("failed to encode response", err))
		return
	}

	cc.cache.SetViewAsync(cacheKey, body)
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// RecentlyViewed handles GET /catalog/recently-viewed for the current user.
func (cc *CatalogController) RecentlyViewed(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	products, err := cc.service.RecentlyViewed(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
}

type trackViewRequest struct {
	ProductID string `json:"productId" binding:"required"`
	SessionID string `json:"sessionId"`
}

// TrackView handles POST /catalog/events/view. Anonymous views are accepted;
// they carry a session id instead of a user id.
func (cc *CatalogController) TrackView(c *gin.Context) {
	var req trackViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.Validation("invalid request body", nil))
		return
	}

	err := cc.service.RecordView(c.Request.Context(), services.TrackViewInput{
		ProductID: req.ProductID,
		UserID:    middleware.UserID(c),
		SessionID: req.SessionID,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true})
}
