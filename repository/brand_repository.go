package repository

import (
	"context"
	"strings"

	"github.com/Arnab1999india/bazaar/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BrandRepository struct {
	collection *mongo.Collection
}

func NewBrandRepository(db *mongo.Database) *BrandRepository {
	return &BrandRepository{
		collection: db.Collection("brands"),
	}
}

func (r *BrandRepository) findSorted(ctx context.Context, filter bson.M) ([]models.Brand, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	brands := []models.Brand{}
	if err = cursor.All(ctx, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *BrandRepository) FindAll(ctx context.Context) ([]models.Brand, error) {
	return r.findSorted(ctx, bson.M{})
}

func (r *BrandRepository) FindByCategoryID(ctx context.Context, categoryID string) ([]models.Brand, error) {
	return r.findSorted(ctx, bson.M{"categoryIds": categoryID})
}

func (r *BrandRepository) FindBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	filter := bson.M{"slug": strings.ToLower(slug)}
	var brand models.Brand
	if err := r.collection.FindOne(ctx, filter).Decode(&brand); err != nil {
		return nil, err
	}
	return &brand, nil
}
