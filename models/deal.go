package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Deal types. A deal is active while startsAt <= now <= endsAt.
const (
	DealTypeLightning = "lightning"
	DealTypeFeatured  = "featured"
	DealTypeTopOffer  = "top-offer"
)

type Deal struct {
	ID                 primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID          primitive.ObjectID `json:"productId" bson:"productId"`
	Title              string             `json:"title" bson:"title"`
	Description        string             `json:"description,omitempty" bson:"description,omitempty"`
	DiscountPercentage float64            `json:"discountPercentage" bson:"discountPercentage"`
	Type               string             `json:"type" bson:"type"`
	StartsAt           time.Time          `json:"startsAt" bson:"startsAt"`
	EndsAt             time.Time          `json:"endsAt" bson:"endsAt"`
	CreatedAt          time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DealProduct is the slice of the product document a deal response embeds.
type DealProduct struct {
	ID       primitive.ObjectID `json:"id"`
	Name     string             `json:"name"`
	Price    float64            `json:"price"`
	ImageURL []string           `json:"imageUrl"`
	Brand    string             `json:"brand,omitempty"`
	Rating   float64            `json:"rating"`
}
