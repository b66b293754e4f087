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

// ErrDuplicateEmail is returned when the unique email index rejects an insert.
var ErrDuplicateEmail = errors.New("email already exists")

// UserRepository defines persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.InsertResult, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	SetRole(ctx context.Context, id primitive.ObjectID, role string) (*model.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error)
}

type userRepository struct {
	c *mongo.Collection
}

// NewUserRepository builds a Mongo-backed repository.
func NewUserRepository(database *mongo.Database) UserRepository {
	return &userRepository{c: database.Collection(db.UsersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.InsertResult, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	res, err := r.c.InsertOne(ctx, user)
	if err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return model.NewInsertResult(res), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.c.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	cur, err := r.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := []model.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (r *userRepository) SetRole(ctx context.Context, id primitive.ObjectID, role string) (*model.UpdateResult, error) {
	res, err := r.c.UpdateOne(ctx, idFilter(id), bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, fmt.Errorf("set user role: %w", err)
	}
	return model.NewUpdateResult(res), nil
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error) {
	res, err := r.c.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	return model.NewDeleteResult(res), nil
}
