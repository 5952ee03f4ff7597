package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Food is a sellable listing. Count tracks how many times the listing was
// ordered and drives the top-foods ranking.
type Food struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UID         string             `bson:"uid" json:"uid"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image" json:"image"`
	Category    string             `bson:"category" json:"category"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	Origin      string             `bson:"origin" json:"origin"`
	Count       int64              `bson:"count" json:"count"`
}
