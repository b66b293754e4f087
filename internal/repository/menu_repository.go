package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/internal/db"
	apperrors "bistro/internal/errors"
	"bistro/internal/model"
)

// MenuRepository defines menu persistence operations.
type MenuRepository interface {
	Create(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error)
	CreateBatch(ctx context.Context, items []model.MenuItem) (int, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error)
	List(ctx context.Context) ([]model.MenuItem, error)
}

type menuRepository struct {
	c *mongo.Collection
}

// NewMenuRepository creates a new menu repository.
func NewMenuRepository(database *mongo.Database) MenuRepository {
	return &menuRepository{c: database.Collection(db.MenuCollection)}
}

// Create inserts a single menu item.
func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error) {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	res, err := r.c.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("insert menu item: %w", err)
	}
	return model.NewInsertResult(res), nil
}

// CreateBatch inserts many menu items in one round trip.
func (r *menuRepository) CreateBatch(ctx context.Context, items []model.MenuItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(items))
	for i := range items {
		if items[i].ID.IsZero() {
			items[i].ID = primitive.NewObjectID()
		}
		docs = append(docs, items[i])
	}
	res, err := r.c.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert menu items: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// FindByID finds a menu item by ID.
func (r *menuRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.MenuItem, error) {
	var item model.MenuItem
	if err := r.c.FindOne(ctx, idFilter(id)).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find menu item: %w", err)
	}
	return &item, nil
}

// List returns the whole menu.
func (r *menuRepository) List(ctx context.Context) ([]model.MenuItem, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	items := []model.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode menu: %w", err)
	}
	return items, nil
}
