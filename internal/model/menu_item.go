package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem is a dish on the restaurant menu. Recipe is the item's description.
type MenuItem struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Recipe   string             `json:"recipe" bson:"recipe"`
	Image    string             `json:"image" bson:"image"`
	Category string             `json:"category" bson:"category"`
	Price    float64            `json:"price" bson:"price"`
}
