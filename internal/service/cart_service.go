package service

import (
	"context"
	"strings"

	apperrors "bistro/internal/errors"
	"bistro/internal/model"
	"bistro/internal/repository"
)

// CartService exposes cart operations.
type CartService interface {
	AddToCart(ctx context.Context, entry *model.CartEntry) (*model.InsertResult, error)
	ListCart(ctx context.Context, email string) ([]model.CartEntry, error)
	RemoveFromCart(ctx context.Context, id string) (*model.DeleteResult, error)
}

type cartService struct {
	repo repository.CartRepository
}

// NewCartService builds a CartService.
func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

func (s *cartService) AddToCart(ctx context.Context, entry *model.CartEntry) (*model.InsertResult, error) {
	return s.repo.Create(ctx, entry)
}

// ListCart refuses an empty email; listing every cart is never allowed.
func (s *cartService) ListCart(ctx context.Context, email string) ([]model.CartEntry, error) {
	if strings.TrimSpace(email) == "" {
		return nil, apperrors.ErrEmailRequired
	}
	return s.repo.ListByEmail(ctx, email)
}

func (s *cartService) RemoveFromCart(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Delete(ctx, oid)
}
