package repository

import (
	"context"

	"github.com/Arnab1999india/bazaar/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		collection: db.Collection("users"),
	}
}

func (r *UserRepository) FindSummary(ctx context.Context, id string) (*models.OwnerSummary, error) {
	opts := options.FindOne().SetProjection(bson.M{"name": 1, "email": 1, "role": 1})
	var summary models.OwnerSummary
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
