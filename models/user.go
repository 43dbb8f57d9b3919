package models

// OwnerSummary is the slice of the user document a product response embeds.
// User accounts are owned by the auth component; this service only reads them.
type OwnerSummary struct {
	ID    string `json:"id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Role  string `json:"role,omitempty" bson:"role,omitempty"`
}
