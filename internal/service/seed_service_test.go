package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bistro/internal/model"
)

func TestSeedService_SeedMenu(t *testing.T) {
	items := []model.MenuItem{
		{Name: "Caesar", Category: "salad", Price: 10},
		{Name: "", Category: "soup", Price: 6},
		{Name: "Tomato", Category: "", Price: 6},
		{Name: "Refund", Category: "drinks", Price: -1},
		{Name: "Margherita", Category: "pizza", Price: 14},
	}
	menuRepo := new(MockMenuRepository)
	menuRepo.On("CreateBatch", mock.Anything, []model.MenuItem{items[0], items[4]}).Return(2, nil)

	svc := NewSeedService(menuRepo, new(MockReviewRepository), nil, zap.NewNop())
	res, err := svc.SeedMenu(context.Background(), items)

	require.NoError(t, err)
	assert.Equal(t, SeedResult{Inserted: 2, Skipped: 3}, res)
	menuRepo.AssertExpectations(t)
}

func TestSeedService_SeedMenu_Error(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	menuRepo.On("CreateBatch", mock.Anything, mock.Anything).Return(0, errors.New("bulk write"))

	_, err := NewSeedService(menuRepo, new(MockReviewRepository), nil, zap.NewNop()).
		SeedMenu(context.Background(), []model.MenuItem{{Name: "Soup", Category: "soup"}})
	assert.Error(t, err)
}

func TestSeedService_SeedReviews(t *testing.T) {
	reviews := []model.Review{{Name: "Ana", Details: "great", Rating: 5}, {Details: "anonymous"}}
	reviewRepo := new(MockReviewRepository)
	reviewRepo.On("CreateBatch", mock.Anything, reviews[:1]).Return(1, nil)

	res, err := NewSeedService(new(MockMenuRepository), reviewRepo, nil, zap.NewNop()).
		SeedReviews(context.Background(), reviews)
	require.NoError(t, err)
	assert.Equal(t, SeedResult{Inserted: 1, Skipped: 1}, res)
}
