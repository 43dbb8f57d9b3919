package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductView is an append-only browsing event used for "recently viewed".
type ProductView struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	UserID    string             `json:"userId,omitempty" bson:"userId,omitempty"`
	SessionID string             `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	IPAddress string             `json:"-" bson:"ipAddress,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
