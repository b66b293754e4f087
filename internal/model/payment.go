package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentStatusPending is the status a payment is recorded with unless the client sends one.
const PaymentStatusPending = "pending"

// Payment is a completed checkout. It is written once and never updated.
type Payment struct {
	ID            primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Email         string               `json:"email" bson:"email"`
	Price         float64              `json:"price" bson:"price"`
	TransactionID string               `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	Date          time.Time            `json:"date" bson:"date"`
	CartIDs       []primitive.ObjectID `json:"cartIds" bson:"cartIds"`
	MenuItemIDs   []primitive.ObjectID `json:"menuItemIds" bson:"menuItemIds"`
	Status        string               `json:"status" bson:"status"`
}
