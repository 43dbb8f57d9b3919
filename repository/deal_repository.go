package repository

import (
	"context"
	"time"

	"github.com/Arnab1999india/bazaar/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DealRepository struct {
	collection *mongo.Collection
}

func NewDealRepository(db *mongo.Database) *DealRepository {
	return &DealRepository{
		collection: db.Collection("deals"),
	}
}

// FindActive returns deals whose window contains now, earliest start first.
func (r *DealRepository) FindActive(ctx context.Context, now time.Time) ([]models.Deal, error) {
	filter := bson.M{
		"startsAt": bson.M{"$lte": now},
		"endsAt":   bson.M{"$gte": now},
	}
	opts := options.Find().SetSort(bson.D{{Key: "startsAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	deals := []models.Deal{}
	if err = cursor.All(ctx, &deals); err != nil {
		return nil, err
	}
	return deals, nil
}

func (r *DealRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "productId", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "startsAt", Value: 1}}},
		{Keys: bson.D{{Key: "endsAt", Value: 1}}},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
