package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// CatalogItem is the shared document shape of the themes, decorations,
// food, drinks and activities collections. Type carries tags such as
// "kids" or "grownup"; BelongsToThemes links an item to theme names
// (empty for the themes collection itself).
type CatalogItem struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Image           string             `bson:"image" json:"image"`
	Type            []string           `bson:"type,omitempty" json:"type,omitempty"`
	BelongsToThemes []string           `bson:"belongs_to_themes,omitempty" json:"belongs_to_themes,omitempty"`
}
