package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartEntry is one menu item a user has added to their cart.
type CartEntry struct {
	ID     primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	MenuID string             `json:"menuId" bson:"menuId"`
	Email  string             `json:"email" bson:"email"`
	Name   string             `json:"name,omitempty" bson:"name,omitempty"`
	Image  string             `json:"image,omitempty" bson:"image,omitempty"`
	Price  float64            `json:"price" bson:"price"`
}
