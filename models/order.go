package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. Cancelled orders never contribute to sales aggregation.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

type OrderItem struct {
	Product  primitive.ObjectID `json:"product" bson:"product"`
	Quantity int                `json:"quantity" bson:"quantity"`
	Price    float64            `json:"price" bson:"price"`
}

// Order is owned by the order component; this service only reads it for
// bestseller aggregation.
type Order struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Items       []OrderItem        `json:"items" bson:"items"`
	Buyer       string             `json:"buyer" bson:"buyer"`
	TotalAmount float64            `json:"totalAmount" bson:"totalAmount"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProductSales is one row of the order aggregation: total quantity sold for a
// product across all non-cancelled orders.
type ProductSales struct {
	ProductID primitive.ObjectID `bson:"_id"`
	TotalSold int64              `bson:"totalSold"`
}
