package service

import (
	"context"

	"bistro/internal/model"
	"bistro/internal/repository"
)

// StatsService builds the dashboard figures.
type StatsService interface {
	AdminStats(ctx context.Context) (*model.AdminStats, error)
	OrderStats(ctx context.Context) ([]model.CategoryStat, error)
}

type statsService struct {
	repo repository.StatsRepository
}

// NewStatsService builds a StatsService.
func NewStatsService(repo repository.StatsRepository) StatsService {
	return &statsService{repo: repo}
}

// AdminStats runs four independent queries. The figures are not a consistent snapshot.
func (s *statsService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	menuItems, err := s.repo.CountMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.CountPayments(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	return &model.AdminStats{Users: users, MenuItems: menuItems, Orders: orders, Revenue: revenue}, nil
}

// OrderStats never returns nil, so an empty breakdown encodes as [].
func (s *statsService) OrderStats(ctx context.Context) ([]model.CategoryStat, error) {
	stats, err := s.repo.CategoryBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		stats = []model.CategoryStat{}
	}
	return stats, nil
}
