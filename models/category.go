package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is reference data. parentId is a back-reference (hex id of the
// parent category), not ownership; ancestors is materialized at write time.
type Category struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Slug      string             `json:"slug" bson:"slug"`
	ParentID  string             `json:"parentId,omitempty" bson:"parentId,omitempty"`
	Ancestors []string           `json:"ancestors,omitempty" bson:"ancestors,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
