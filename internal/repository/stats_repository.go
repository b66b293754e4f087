package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/internal/db"
	"bistro/internal/model"
)

// StatsRepository runs the read-only reporting queries that span collections.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountMenuItems(ctx context.Context) (int64, error)
	CountPayments(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	CategoryBreakdown(ctx context.Context) ([]model.CategoryStat, error)
}

type statsRepository struct {
	database *mongo.Database
}

// NewStatsRepository creates a reporting repository over the whole database.
func NewStatsRepository(database *mongo.Database) StatsRepository {
	return &statsRepository{database: database}
}

// RevenuePipeline sums the price of every payment into a single row.
func RevenuePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$price"}}},
		}}},
	}
}

// CategoryBreakdownPipeline expands each payment into one line per purchased menu item,
// joins the line against the menu, and groups by category. Categories nobody bought
// produce no row.
func CategoryBreakdownPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$menuItemIds"}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: db.MenuCollection},
			{Key: "localField", Value: "menuItemIds"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "menuItems"},
		}}},
		{{Key: "$unwind", Value: "$menuItems"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$menuItems.category"},
			{Key: "quantity", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$menuItems.price"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "quantity", Value: "$quantity"},
			{Key: "revenue", Value: "$revenue"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "category", Value: 1}}}},
	}
}

func (r *statsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, db.UsersCollection)
}

func (r *statsRepository) CountMenuItems(ctx context.Context) (int64, error) {
	return r.count(ctx, db.MenuCollection)
}

func (r *statsRepository) CountPayments(ctx context.Context) (int64, error) {
	return r.count(ctx, db.PaymentsCollection)
}

func (r *statsRepository) count(ctx context.Context, collection string) (int64, error) {
	n, err := r.database.Collection(collection).EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

// TotalRevenue returns the sum of all payment prices, or 0 when there are none.
func (r *statsRepository) TotalRevenue(ctx context.Context) (float64, error) {
	cur, err := r.database.Collection(db.PaymentsCollection).Aggregate(ctx, RevenuePipeline())
	if err != nil {
		return 0, fmt.Errorf("aggregate revenue: %w", err)
	}
	defer cur.Close(ctx)

	if !cur.Next(ctx) {
		return 0, cur.Err()
	}
	var row struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cur.Decode(&row); err != nil {
		return 0, fmt.Errorf("decode revenue: %w", err)
	}
	return row.TotalRevenue, nil
}

// CategoryBreakdown returns quantity and revenue per purchased category.
func (r *statsRepository) CategoryBreakdown(ctx context.Context) ([]model.CategoryStat, error) {
	cur, err := r.database.Collection(db.PaymentsCollection).Aggregate(ctx, CategoryBreakdownPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate order stats: %w", err)
	}
	stats := []model.CategoryStat{}
	if err := cur.All(ctx, &stats); err != nil {
		return nil, fmt.Errorf("decode order stats: %w", err)
	}
	return stats, nil
}
