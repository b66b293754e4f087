package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/internal/db"
	"bistro/internal/model"
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	Create(ctx context.Context, entry *model.CartEntry) (*model.InsertResult, error)
	ListByEmail(ctx context.Context, email string) ([]model.CartEntry, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error)
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (*model.DeleteResult, error)
}

type cartRepository struct {
	c *mongo.Collection
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(database *mongo.Database) CartRepository {
	return &cartRepository{c: database.Collection(db.CartsCollection)}
}

// Create adds one entry to a user's cart.
func (r *cartRepository) Create(ctx context.Context, entry *model.CartEntry) (*model.InsertResult, error) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	res, err := r.c.InsertOne(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("insert cart entry: %w", err)
	}
	return model.NewInsertResult(res), nil
}

// ListByEmail returns the entries owned by email.
func (r *cartRepository) ListByEmail(ctx context.Context, email string) ([]model.CartEntry, error) {
	cur, err := r.c.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	entries := []model.CartEntry{}
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return entries, nil
}

// Delete removes a single cart entry.
func (r *cartRepository) Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error) {
	res, err := r.c.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return nil, fmt.Errorf("delete cart entry: %w", err)
	}
	return model.NewDeleteResult(res), nil
}

// DeleteMany removes exactly the entries whose identifier is in ids.
func (r *cartRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (*model.DeleteResult, error) {
	if len(ids) == 0 {
		return &model.DeleteResult{Acknowledged: true}, nil
	}
	res, err := r.c.DeleteMany(ctx, idsFilter(ids))
	if err != nil {
		return nil, fmt.Errorf("delete cart entries: %w", err)
	}
	return model.NewDeleteResult(res), nil
}
