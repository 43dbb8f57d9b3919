package services_test

import (
	"context"
	"time"

	"github.com/Arnab1999india/bazaar/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ---- fake product repo ----

type fakeProductRepo struct {
	byID       map[primitive.ObjectID]*models.Product
	findResult []models.Product
	findErr    error
	total      int64
	countErr   error
	ids        map[primitive.ObjectID]struct{}
	idsErr     error
	byCategory map[string]int

	updateMatched int64
	updateErr     error
	deleteMatched int64

	lastFilter    bson.M
	lastOpts      *options.FindOptions
	lastIDsFilter bson.M
	lastUpdates   bson.M
	created       *models.Product
	softDeleted   bool
	hardDeleted   bool
}

func (f *fakeProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	if p, ok := f.byID[id]; ok {
		return p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProductRepo) Find(_ context.Context, filter bson.M, opts *options.FindOptions) ([]models.Product, error) {
	f.lastFilter = filter
	f.lastOpts = opts
	return f.findResult, f.findErr
}

func (f *fakeProductRepo) Count(_ context.Context, filter bson.M) (int64, error) {
	return f.total, f.countErr
}

func (f *fakeProductRepo) FindIDs(_ context.Context, filter bson.M) (map[primitive.ObjectID]struct{}, error) {
	f.lastIDsFilter = filter
	return f.ids, f.idsErr
}

func (f *fakeProductRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	products := []models.Product{}
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			products = append(products, *p)
		}
	}
	return products, nil
}

func (f *fakeProductRepo) CountByCategory(_ context.Context) (map[string]int, error) {
	return f.byCategory, nil
}

func (f *fakeProductRepo) Create(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	f.created = p
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, _ primitive.ObjectID, _ string, updates bson.M) (int64, error) {
	f.lastUpdates = updates
	return f.updateMatched, f.updateErr
}

func (f *fakeProductRepo) SoftDelete(_ context.Context, _ primitive.ObjectID, _ string) (int64, error) {
	f.softDeleted = true
	return f.deleteMatched, nil
}

func (f *fakeProductRepo) HardDelete(_ context.Context, _ primitive.ObjectID, _ string) (int64, error) {
	f.hardDeleted = true
	return f.deleteMatched, nil
}

func (f *fakeProductRepo) EnsureIndexes(_ context.Context) error { return nil }

// ---- fake order repo ----

type fakeOrderRepo struct {
	sales    []models.ProductSales
	salesErr error
	refCount int64
	refErr   error
}

func (f *fakeOrderRepo) AggregateSales(_ context.Context) ([]models.ProductSales, error) {
	return f.sales, f.salesErr
}

func (f *fakeOrderRepo) CountByProduct(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return f.refCount, f.refErr
}

// ---- fake category repo ----

type fakeCategoryRepo struct {
	all     []models.Category
	bySlug  map[string]*models.Category
	byIDHex map[string]*models.Category
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]models.Category, error) {
	return f.all, nil
}

func (f *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	if c, ok := f.bySlug[slug]; ok {
		return c, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeCategoryRepo) FindByIDHex(_ context.Context, id string) (*models.Category, error) {
	if c, ok := f.byIDHex[id]; ok {
		return c, nil
	}
	return nil, mongo.ErrNoDocuments
}

// ---- fake brand repo ----

type fakeBrandRepo struct {
	all        []models.Brand
	byCategory map[string][]models.Brand
	bySlug     map[string]*models.Brand
}

func (f *fakeBrandRepo) FindAll(_ context.Context) ([]models.Brand, error) {
	return f.all, nil
}

func (f *fakeBrandRepo) FindByCategoryID(_ context.Context, categoryID string) ([]models.Brand, error) {
	return f.byCategory[categoryID], nil
}

func (f *fakeBrandRepo) FindBySlug(_ context.Context, slug string) (*models.Brand, error) {
	if b, ok := f.bySlug[slug]; ok {
		return b, nil
	}
	return nil, mongo.ErrNoDocuments
}

// ---- fake deal repo ----

type fakeDealRepo struct {
	active  []models.Deal
	findErr error
}

func (f *fakeDealRepo) FindActive(_ context.Context, _ time.Time) ([]models.Deal, error) {
	return f.active, f.findErr
}

// ---- fake view repo ----

type fakeViewRepo struct {
	inserted  []*models.ProductView
	insertErr error
	recentIDs []primitive.ObjectID
}

func (f *fakeViewRepo) Insert(_ context.Context, v *models.ProductView) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, v)
	return nil
}

func (f *fakeViewRepo) RecentProductIDs(_ context.Context, _ string, _ int) ([]primitive.ObjectID, error) {
	return f.recentIDs, nil
}

// ---- fake user repo ----

type fakeUserRepo struct {
	summary *models.OwnerSummary
	err     error
}

func (f *fakeUserRepo) FindSummary(_ context.Context, _ string) (*models.OwnerSummary, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.summary == nil {
		return nil, mongo.ErrNoDocuments
	}
	return f.summary, nil
}

// ---- fake review repo ----

type fakeReviewRepo struct {
	deleted   int64
	deleteErr error
	called    bool
}

func (f *fakeReviewRepo) DeleteByProduct(_ context.Context, _ primitive.ObjectID) (int64, error) {
	f.called = true
	return f.deleted, f.deleteErr
}
