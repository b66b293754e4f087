package model

import "go.mongodb.org/mongo-driver/mongo"

// InsertResult mirrors the outcome of a single-document insert.
// InsertedID is null when nothing was written.
type InsertResult struct {
	Message      string      `json:"message,omitempty"`
	Acknowledged bool        `json:"acknowledged,omitempty"`
	InsertedID   interface{} `json:"insertedId"`
}

// UpdateResult mirrors the outcome of an update.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// DeleteResult mirrors the outcome of a delete.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// NewInsertResult converts a driver insert outcome.
func NewInsertResult(res *mongo.InsertOneResult) *InsertResult {
	return &InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

// NewUpdateResult converts a driver update outcome.
func NewUpdateResult(res *mongo.UpdateResult) *UpdateResult {
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

// NewDeleteResult converts a driver delete outcome.
func NewDeleteResult(res *mongo.DeleteResult) *DeleteResult {
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
