package repository

import (
	"context"
	"time"

	"github.com/Arnab1999india/bazaar/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepo defines the catalog store operations used by the services.
type ProductRepo interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	// FindIDs resolves the set of product ids matching filter, fetching only _id.
	FindIDs(ctx context.Context, filter bson.M) (map[primitive.ObjectID]struct{}, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	// CountByCategory groups live products by their immediate category slug.
	CountByCategory(ctx context.Context) (map[string]int, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, owner string, updates bson.M) (int64, error)
	SoftDelete(ctx context.Context, id primitive.ObjectID, owner string) (int64, error)
	HardDelete(ctx context.Context, id primitive.ObjectID, owner string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

// CategoryRepo reads category reference data.
type CategoryRepo interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindByIDHex(ctx context.Context, id string) (*models.Category, error)
}

// BrandRepo reads brand reference data.
type BrandRepo interface {
	FindAll(ctx context.Context) ([]models.Brand, error)
	FindByCategoryID(ctx context.Context, categoryID string) ([]models.Brand, error)
	FindBySlug(ctx context.Context, slug string) (*models.Brand, error)
}

// OrderRepo reads order data for popularity ranking. Orders are owned by the
// order component.
type OrderRepo interface {
	// AggregateSales sums quantities per product across non-cancelled orders.
	// Result order is unspecified; ranking happens in the service layer.
	AggregateSales(ctx context.Context) ([]models.ProductSales, error)
	CountByProduct(ctx context.Context, productID primitive.ObjectID) (int64, error)
}

// DealRepo reads time-windowed promotional deals.
type DealRepo interface {
	// FindActive returns deals whose window contains now, earliest start
	// first.
	FindActive(ctx context.Context, now time.Time) ([]models.Deal, error)
}

// ViewRepo appends and aggregates product view events.
type ViewRepo interface {
	Insert(ctx context.Context, view *models.ProductView) error
	// RecentProductIDs returns distinct product ids for a user, most recently
	// viewed first.
	RecentProductIDs(ctx context.Context, userID string, limit int) ([]primitive.ObjectID, error)
}

// UserRepo reads owner summaries. Users are owned by the auth component.
type UserRepo interface {
	FindSummary(ctx context.Context, id string) (*models.OwnerSummary, error)
}

// ReviewRepo covers the single review operation this service needs: cascade
// cleanup when a product is deleted.
type ReviewRepo interface {
	DeleteByProduct(ctx context.Context, productID primitive.ObjectID) (int64, error)
}
