package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
	"github.com/munna98/stock-star/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock ItemRepository ---
type MockItemRepository struct {
	mock.Mock
}

var _ portsrepo.ItemRepository = (*MockItemRepository)(nil)

func (m *MockItemRepository) SaveItem(ctx context.Context, item domain.Item) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) FindItemByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *MockItemRepository) CountActiveItems(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestDashboardGetStats(t *testing.T) {
	ctx := context.Background()
	itemRepo := new(MockItemRepository)
	siteRepo := new(MockSiteRepository)
	voucherRepo := new(MockVoucherRepository)
	svc := services.NewDashboardService(itemRepo, siteRepo, voucherRepo)

	itemRepo.On("CountActiveItems", ctx).Return(int64(12), nil).Once()
	siteRepo.On("CountActiveSites", ctx).Return(int64(4), nil).Once()
	voucherRepo.On("CountVouchersCreatedSince", ctx, mock.MatchedBy(func(since time.Time) bool {
		// The recency cutoff sits seven days back, give or take test runtime.
		return time.Since(since) > 6*24*time.Hour && time.Since(since) < 8*24*time.Hour
	})).Return(int64(9), nil).Once()

	stats, err := svc.GetStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.ActiveItemsCount)
	assert.Equal(t, int64(4), stats.ActiveSitesCount)
	assert.Equal(t, int64(9), stats.RecentTransactionsCount)
	itemRepo.AssertExpectations(t)
	siteRepo.AssertExpectations(t)
	voucherRepo.AssertExpectations(t)
}

func TestDashboardGetStats_CountError(t *testing.T) {
	ctx := context.Background()
	itemRepo := new(MockItemRepository)
	siteRepo := new(MockSiteRepository)
	voucherRepo := new(MockVoucherRepository)
	svc := services.NewDashboardService(itemRepo, siteRepo, voucherRepo)

	itemRepo.On("CountActiveItems", ctx).Return(int64(0), assert.AnError).Once()

	_, err := svc.GetStats(ctx)

	require.Error(t, err)
	siteRepo.AssertNotCalled(t, "CountActiveSites", mock.Anything)
}
