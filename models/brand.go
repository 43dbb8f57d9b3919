package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Brand struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	LogoURL     string             `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	CategoryIDs []string           `json:"categoryIds,omitempty" bson:"categoryIds,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// BrandSummary is the projection used when a product response embeds its brand.
type BrandSummary struct {
	Name    string `json:"name" bson:"name"`
	Slug    string `json:"slug" bson:"slug"`
	LogoURL string `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
}
