package controllers

import (
	"context"
	"time"

	"github.com/Arnab1999india/bazaar/models"
	"github.com/Arnab1999india/bazaar/services"
)

// DefaultCacheTTL bounds staleness of listing caches between invalidations.
const DefaultCacheTTL = 5 * time.Minute

// ProductServiceAPI is the product surface the controllers depend on.
type ProductServiceAPI interface {
	ListProducts(ctx context.Context, q services.ProductQuery) (*services.ProductPage, error)
	GetProduct(ctx context.Context, id string) (*services.ProductDetail, error)
	GetVariants(ctx context.Context, id string) ([]models.ProductVariant, error)
	Recommendations(ctx context.Context, id string, limit int) ([]models.Product, error)
	CreateProduct(ctx context.Context, owner string, in services.CreateProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, owner, id string, in services.UpdateProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, owner, id string) error
}

// CatalogServiceAPI is the catalog surface the controllers depend on.
type CatalogServiceAPI interface {
	CategoryTree(ctx context.Context) ([]*services.CategoryNode, error)
	Brands(ctx context.Context, category string) ([]models.Brand, error)
	Deals(ctx context.Context) ([]services.DealView, error)
	Bestsellers(ctx context.Context, category string, limit int) ([]models.Product, error)
	RecentlyViewed(ctx context.Context, userID string, limit int) ([]models.Product, error)
	RecordView(ctx context.Context, in services.TrackViewInput) error
}
