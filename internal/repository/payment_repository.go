package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bistro/internal/db"
	"bistro/internal/model"
)

// PaymentRepository defines payment persistence operations.
// Payments are append-only: there is no update or delete.
type PaymentRepository interface {
	Create(ctx context.Context, payment *model.Payment) (*model.InsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]model.Payment, error)
}

type paymentRepository struct {
	c *mongo.Collection
}

// NewPaymentRepository creates a new payment repository.
func NewPaymentRepository(database *mongo.Database) PaymentRepository {
	return &paymentRepository{c: database.Collection(db.PaymentsCollection)}
}

// Create creates a new payment record.
func (r *paymentRepository) Create(ctx context.Context, payment *model.Payment) (*model.InsertResult, error) {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	res, err := r.c.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return model.NewInsertResult(res), nil
}

// ListByEmail returns a user's payments, newest first.
func (r *paymentRepository) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.c.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	payments := []model.Payment{}
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}
