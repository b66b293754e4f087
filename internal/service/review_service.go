package service

import (
	"context"

	"bistro/internal/model"
	"bistro/internal/repository"
)

// ReviewService exposes customer reviews.
type ReviewService interface {
	ListReviews(ctx context.Context) ([]model.Review, error)
}

type reviewService struct {
	repo repository.ReviewRepository
}

// NewReviewService builds a ReviewService.
func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]model.Review, error) {
	return s.repo.List(ctx)
}
