package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"bistro/internal/cache"
	"bistro/internal/model"
	"bistro/internal/repository"
)

// SeedResult reports how many records a seed run wrote and how many it rejected.
type SeedResult struct {
	Inserted int
	Skipped  int
}

// SeedService loads fixture data into an empty database.
type SeedService interface {
	SeedMenu(ctx context.Context, items []model.MenuItem) (SeedResult, error)
	SeedReviews(ctx context.Context, reviews []model.Review) (SeedResult, error)
}

type seedService struct {
	menuRepo   repository.MenuRepository
	reviewRepo repository.ReviewRepository
	cache      *cache.Client
	log        *zap.Logger
}

// NewSeedService creates a new seed service.
func NewSeedService(menuRepo repository.MenuRepository, reviewRepo repository.ReviewRepository, cache *cache.Client, log *zap.Logger) SeedService {
	return &seedService{menuRepo: menuRepo, reviewRepo: reviewRepo, cache: cache, log: log}
}

// SeedMenu inserts every item that has a name, a category and a non-negative price.
func (s *seedService) SeedMenu(ctx context.Context, items []model.MenuItem) (SeedResult, error) {
	valid := make([]model.MenuItem, 0, len(items))
	var res SeedResult
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Category) == "" || item.Price < 0 {
			s.log.Warn("skipping menu item", zap.String("name", item.Name), zap.String("category", item.Category))
			res.Skipped++
			continue
		}
		valid = append(valid, item)
	}

	n, err := s.menuRepo.CreateBatch(ctx, valid)
	if err != nil {
		return res, fmt.Errorf("seed menu: %w", err)
	}
	res.Inserted = n
	if err := s.cache.Delete(ctx, cache.MenuKey); err != nil {
		s.log.Warn("menu cache invalidation failed", zap.Error(err))
	}
	return res, nil
}

// SeedReviews inserts every review that names its author.
func (s *seedService) SeedReviews(ctx context.Context, reviews []model.Review) (SeedResult, error) {
	valid := make([]model.Review, 0, len(reviews))
	var res SeedResult
	for _, r := range reviews {
		if strings.TrimSpace(r.Name) == "" {
			res.Skipped++
			continue
		}
		valid = append(valid, r)
	}

	n, err := s.reviewRepo.CreateBatch(ctx, valid)
	if err != nil {
		return res, fmt.Errorf("seed reviews: %w", err)
	}
	res.Inserted = n
	return res, nil
}
