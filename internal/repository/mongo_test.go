package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "bistro/internal/errors"
	"bistro/internal/model"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx, cancel := testContext()
	defer cancel()

	res, err := repo.Create(ctx, &model.User{Email: "guest@bistro.test", Name: "Guest"})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.IsType(t, primitive.ObjectID{}, res.InsertedID)

	found, err := repo.FindByEmail(ctx, "guest@bistro.test")
	require.NoError(t, err)
	assert.Equal(t, res.InsertedID, found.ID)

	_, err = repo.FindByEmail(ctx, "nobody@bistro.test")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx, cancel := testContext()
	defer cancel()

	_, err := repo.Create(ctx, &model.User{Email: "twice@bistro.test"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.User{Email: "twice@bistro.test"})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserRepository_SetRoleAndDelete(t *testing.T) {
	database := setupTestDB(t)
	repo := NewUserRepository(database)
	ctx, cancel := testContext()
	defer cancel()

	user := &model.User{Email: "chef@bistro.test"}
	_, err := repo.Create(ctx, user)
	require.NoError(t, err)

	upd, err := repo.SetRole(ctx, user.ID, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	found, err := repo.FindByEmail(ctx, "chef@bistro.test")
	require.NoError(t, err)
	assert.True(t, found.IsAdmin())

	// delete keys on _id and must actually remove the document
	del, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	_, err = repo.FindByEmail(ctx, "chef@bistro.test")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRepository_DeleteManyRemovesOnlyGivenIDs(t *testing.T) {
	database := setupTestDB(t)
	repo := NewCartRepository(database)
	ctx, cancel := testContext()
	defer cancel()

	a := &model.CartEntry{Email: "guest@bistro.test", MenuID: "m1", Price: 10}
	b := &model.CartEntry{Email: "guest@bistro.test", MenuID: "m2", Price: 12}
	c := &model.CartEntry{Email: "guest@bistro.test", MenuID: "m3", Price: 8}
	for _, e := range []*model.CartEntry{a, b, c} {
		_, err := repo.Create(ctx, e)
		require.NoError(t, err)
	}

	res, err := repo.DeleteMany(ctx, []primitive.ObjectID{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.DeletedCount)

	left, err := repo.ListByEmail(ctx, "guest@bistro.test")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, c.ID, left[0].ID)
}

func TestStatsRepository_EmptyDatabase(t *testing.T) {
	database := setupTestDB(t)
	repo := NewStatsRepository(database)
	ctx, cancel := testContext()
	defer cancel()

	revenue, err := repo.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, revenue)

	breakdown, err := repo.CategoryBreakdown(ctx)
	require.NoError(t, err)
	assert.NotNil(t, breakdown)
	assert.Empty(t, breakdown)
}

func TestStatsRepository_CategoryBreakdown(t *testing.T) {
	database := setupTestDB(t)
	menu := NewMenuRepository(database)
	payments := NewPaymentRepository(database)
	stats := NewStatsRepository(database)
	ctx, cancel := testContext()
	defer cancel()

	salad := &model.MenuItem{Name: "Caesar", Category: "salad", Price: 10}
	soup := &model.MenuItem{Name: "Tomato", Category: "soup", Price: 6.5}
	pizza := &model.MenuItem{Name: "Margherita", Category: "pizza", Price: 14}
	for _, item := range []*model.MenuItem{salad, soup, pizza} {
		_, err := menu.Create(ctx, item)
		require.NoError(t, err)
	}

	_, err := payments.Create(ctx, &model.Payment{
		Email: "guest@bistro.test", Price: 26.5, Date: time.Now(),
		MenuItemIDs: []primitive.ObjectID{salad.ID, salad.ID, soup.ID},
	})
	require.NoError(t, err)
	_, err = payments.Create(ctx, &model.Payment{
		Email: "other@bistro.test", Price: 6.5, Date: time.Now(),
		MenuItemIDs: []primitive.ObjectID{soup.ID},
	})
	require.NoError(t, err)

	breakdown, err := stats.CategoryBreakdown(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.CategoryStat{
		{Category: "salad", Quantity: 2, Revenue: 20},
		{Category: "soup", Quantity: 2, Revenue: 13},
	}, breakdown)

	revenue, err := stats.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 33.0, revenue, 0.0001)
}
