package db

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the handlers rely on. Each step is idempotent;
// problems are collected so a single startup log shows all of them.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	var problems []string

	if err := ensure(ctx, database.Collection(UsersCollection), uniqueEmailIndex()); err != nil {
		problems = append(problems, UsersCollection+": "+err.Error())
	}
	if err := ensure(ctx, database.Collection(CartsCollection), emailIndex("idx_carts_email")); err != nil {
		problems = append(problems, CartsCollection+": "+err.Error())
	}
	if err := ensure(ctx, database.Collection(PaymentsCollection), emailIndex("idx_payments_email")); err != nil {
		problems = append(problems, PaymentsCollection+": "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func uniqueEmailIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("uniq_users_email").SetUnique(true),
	}
}

func emailIndex(name string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName(name),
	}
}

func ensure(ctx context.Context, c *mongo.Collection, model mongo.IndexModel) error {
	_, err := c.Indexes().CreateOne(ctx, model)
	if err != nil && isOptionsConflictErr(err) {
		// an equivalent index already exists under another name
		return nil
	}
	return err
}

// IsDuplicateKeyErr reports whether err is a unique index violation (E11000).
func IsDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	return mongo.IsDuplicateKeyError(err)
}

func isOptionsConflictErr(err error) bool {
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 85 || ce.Code == 86) {
		return true
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict")
}
