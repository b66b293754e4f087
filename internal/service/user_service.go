package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/repository"
)

// DuplicateEmailMessage is returned instead of an insert outcome when the email is taken.
const DuplicateEmailMessage = "Email already exists"

// UserService exposes domain operations.
type UserService interface {
	Register(ctx context.Context, user *model.User) (*model.InsertResult, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Promote(ctx context.Context, id string) (*model.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (*model.DeleteResult, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService over the user repository.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register stores a new user unless one with the same email exists. A duplicate is
// reported in the result, not as an error.
func (s *userService) Register(ctx context.Context, user *model.User) (*model.InsertResult, error) {
	existing, err := s.repo.FindByEmail(ctx, user.Email)
	if err == nil && existing != nil {
		return duplicateEmail(), nil
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	// role is never client-assigned
	user.Role = ""
	res, err := s.repo.Create(ctx, user)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// lost a race with a concurrent registration
		return duplicateEmail(), nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func duplicateEmail() *model.InsertResult {
	return &model.InsertResult{Message: DuplicateEmailMessage, InsertedID: nil}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

// IsAdmin reports false for unknown emails.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// Promote grants the admin role. There is no way back.
func (s *userService) Promote(ctx context.Context, id string) (*model.UpdateResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.SetRole(ctx, oid, model.RoleAdmin)
}

func (s *userService) DeleteUser(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, oid)
}
