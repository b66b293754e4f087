package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bistro/internal/cache"
	"bistro/internal/model"
	"bistro/internal/repository"
)

// MenuService exposes menu operations. The full listing is cached in redis.
type MenuService interface {
	ListMenu(ctx context.Context) ([]model.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error)
}

type menuService struct {
	repo  repository.MenuRepository
	cache *cache.Client
	ttl   time.Duration
	log   *zap.Logger
}

// NewMenuService builds a MenuService. A nil cache disables caching.
func NewMenuService(repo repository.MenuRepository, cache *cache.Client, ttl time.Duration, log *zap.Logger) MenuService {
	return &menuService{repo: repo, cache: cache, ttl: ttl, log: log}
}

func (s *menuService) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	var cached []model.MenuItem
	if s.cache.GetJSON(ctx, cache.MenuKey, &cached) && cached != nil {
		return cached, nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, cache.MenuKey, items, s.ttl)
	return items, nil
}

func (s *menuService) GetMenuItem(ctx context.Context, id string) (*model.MenuItem, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

func (s *menuService) CreateMenuItem(ctx context.Context, item *model.MenuItem) (*model.InsertResult, error) {
	res, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Delete(ctx, cache.MenuKey); err != nil {
		s.log.Warn("menu cache invalidation failed", zap.Error(err))
	}
	return res, nil
}
