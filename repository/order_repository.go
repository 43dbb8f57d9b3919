package repository

import (
	"context"

	"github.com/Arnab1999india/bazaar/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

// AggregateSales unwinds order line items and sums quantities per product,
// skipping cancelled orders. Sorting is left to the caller.
func (r *OrderRepository) AggregateSales(ctx context.Context) ([]models.ProductSales, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": bson.M{"$ne": models.OrderStatusCancelled}}}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.M{
			"_id":       "$items.product",
			"totalSold": bson.M{"$sum": "$items.quantity"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sales []models.ProductSales
	if err = cursor.All(ctx, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *OrderRepository) CountByProduct(ctx context.Context, productID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"items.product": productID})
}
