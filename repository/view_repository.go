package repository

import (
	"context"
	"time"

	"github.com/Arnab1999india/bazaar/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ViewRepository struct {
	collection *mongo.Collection
}

func NewViewRepository(db *mongo.Database) *ViewRepository {
	return &ViewRepository{
		collection: db.Collection("product_views"),
	}
}

func (r *ViewRepository) Insert(ctx context.Context, view *models.ProductView) error {
	if view.CreatedAt.IsZero() {
		view.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, view)
	return err
}

// RecentProductIDs collapses the event log to distinct products for a user,
// most recently viewed first.
func (r *ViewRepository) RecentProductIDs(ctx context.Context, userID string, limit int) ([]primitive.ObjectID, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$group", Value: bson.M{
			"_id":          "$productId",
			"lastViewedAt": bson.M{"$first": "$createdAt"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "lastViewedAt", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ids []primitive.ObjectID
	for cursor.Next(ctx) {
		var row struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		ids = append(ids, row.ID)
	}
	return ids, cursor.Err()
}
