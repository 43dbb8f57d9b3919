package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{
		collection: db.Collection("reviews"),
	}
}

// DeleteByProduct removes every review attached to a product. Called when a
// product is deleted so reviews never dangle.
func (r *ReviewRepository) DeleteByProduct(ctx context.Context, productID primitive.ObjectID) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"product": productID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
