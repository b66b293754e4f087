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

// ReviewRepository reads customer reviews. Writes only happen through the seed command.
type ReviewRepository interface {
	List(ctx context.Context) ([]model.Review, error)
	CreateBatch(ctx context.Context, reviews []model.Review) (int, error)
}

type reviewRepository struct {
	c *mongo.Collection
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(database *mongo.Database) ReviewRepository {
	return &reviewRepository{c: database.Collection(db.ReviewsCollection)}
}

func (r *reviewRepository) List(ctx context.Context) ([]model.Review, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	reviews := []model.Review{}
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) CreateBatch(ctx context.Context, reviews []model.Review) (int, error) {
	if len(reviews) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(reviews))
	for i := range reviews {
		if reviews[i].ID.IsZero() {
			reviews[i].ID = primitive.NewObjectID()
		}
		docs = append(docs, reviews[i])
	}
	res, err := r.c.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert reviews: %w", err)
	}
	return len(res.InsertedIDs), nil
}
