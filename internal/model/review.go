package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a customer testimonial shown on the home page.
type Review struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Details string             `json:"details" bson:"details"`
	Rating  float64            `json:"rating" bson:"rating"`
}
