package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
	"github.com/munna98/stock-star/internal/core/services"
	"github.com/munna98/stock-star/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

var _ portsrepo.MovementRepository = (*MockMovementRepository)(nil)

func (m *MockMovementRepository) GetBalance(ctx context.Context, siteID, itemID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, siteID, itemID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockMovementRepository) ListBalances(ctx context.Context, filter domain.BalanceFilter, limit, offset int) ([]domain.StockBalance, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.StockBalance), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovementRepository) ListItemBalances(ctx context.Context, itemID int64) ([]domain.StockBalance, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockBalance), args.Error(1)
}

func (m *MockMovementRepository) ListSiteBalances(ctx context.Context, siteID int64) ([]domain.StockBalance, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockBalance), args.Error(1)
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, filter domain.MovementFilter, limit, offset int) ([]domain.MovementRecord, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.MovementRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockMovementRepository) SumMovementsBefore(ctx context.Context, itemID int64, siteID *int64, before time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, itemID, siteID, before)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockMovementRepository) SumSkippedMovements(ctx context.Context, filter domain.MovementFilter, n int) (decimal.Decimal, error) {
	args := m.Called(ctx, filter, n)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockMovementRepo *MockMovementRepository
	service          portssvc.LedgerSvcFacade
	itemID           int64
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockMovementRepo = new(MockMovementRepository)
	suite.service = services.NewLedgerService(suite.mockMovementRepo)
	suite.itemID = int64(10)
}

func movementRow(in, out int64) domain.MovementRecord {
	return domain.MovementRecord{
		StockIn:  decimal.NewFromInt(in),
		StockOut: decimal.NewFromInt(out),
	}
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestGetMovementHistory_NoItemFilterSkipsRunningBalance() {
	ctx := context.Background()
	filter := domain.MovementFilter{}
	rows := []domain.MovementRecord{movementRow(5, 0), movementRow(0, 2)}

	suite.mockMovementRepo.On("ListMovements", ctx, filter, 10, 0).Return(rows, int64(2), nil).Once()

	params, err := pagination.New(1, 10)
	suite.Require().NoError(err)

	records, total, err := suite.service.GetMovementHistory(ctx, filter, params)

	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	for _, r := range records {
		suite.True(r.RunningBalance.IsZero())
	}
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SumMovementsBefore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SumSkippedMovements", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetMovementHistory_SingleItemFirstPage() {
	ctx := context.Background()
	filter := domain.MovementFilter{ItemID: &suite.itemID}
	rows := []domain.MovementRecord{movementRow(5, 0), movementRow(0, 2), movementRow(3, 0)}

	suite.mockMovementRepo.On("ListMovements", ctx, filter, 10, 0).Return(rows, int64(3), nil).Once()

	params, err := pagination.New(1, 10)
	suite.Require().NoError(err)

	records, _, err := suite.service.GetMovementHistory(ctx, filter, params)

	suite.Require().NoError(err)
	suite.True(records[0].RunningBalance.Equal(decimal.NewFromInt(5)))
	suite.True(records[1].RunningBalance.Equal(decimal.NewFromInt(3)))
	suite.True(records[2].RunningBalance.Equal(decimal.NewFromInt(6)))
	suite.mockMovementRepo.AssertNotCalled(suite.T(), "SumMovementsBefore", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetMovementHistory_DateWindowAddsOpeningBalance() {
	ctx := context.Background()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	filter := domain.MovementFilter{ItemID: &suite.itemID, From: &from}
	rows := []domain.MovementRecord{movementRow(2, 0)}

	suite.mockMovementRepo.On("ListMovements", ctx, filter, 10, 0).Return(rows, int64(1), nil).Once()
	suite.mockMovementRepo.On("SumMovementsBefore", ctx, suite.itemID, (*int64)(nil), from).
		Return(decimal.NewFromInt(8), nil).Once()

	params, err := pagination.New(1, 10)
	suite.Require().NoError(err)

	records, _, err := suite.service.GetMovementHistory(ctx, filter, params)

	suite.Require().NoError(err)
	suite.True(records[0].RunningBalance.Equal(decimal.NewFromInt(10)))
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetMovementHistory_OffsetAddsSkippedRows() {
	ctx := context.Background()
	filter := domain.MovementFilter{ItemID: &suite.itemID}
	rows := []domain.MovementRecord{movementRow(0, 1)}

	suite.mockMovementRepo.On("ListMovements", ctx, filter, 2, 4).Return(rows, int64(5), nil).Once()
	suite.mockMovementRepo.On("SumSkippedMovements", ctx, filter, 4).
		Return(decimal.NewFromInt(6), nil).Once()

	params, err := pagination.New(3, 2)
	suite.Require().NoError(err)

	records, _, err := suite.service.GetMovementHistory(ctx, filter, params)

	suite.Require().NoError(err)
	suite.True(records[0].RunningBalance.Equal(decimal.NewFromInt(5)))
	suite.mockMovementRepo.AssertExpectations(suite.T())
}

// The first row of page two must continue exactly where page one ended.
func (suite *LedgerServiceTestSuite) TestGetMovementHistory_PageContinuity() {
	ctx := context.Background()
	filter := domain.MovementFilter{ItemID: &suite.itemID}
	pageOne := []domain.MovementRecord{movementRow(5, 0), movementRow(0, 2)}
	pageTwo := []domain.MovementRecord{movementRow(4, 0)}

	suite.mockMovementRepo.On("ListMovements", ctx, filter, 2, 0).Return(pageOne, int64(3), nil).Once()
	suite.mockMovementRepo.On("ListMovements", ctx, filter, 2, 2).Return(pageTwo, int64(3), nil).Once()
	suite.mockMovementRepo.On("SumSkippedMovements", ctx, filter, 2).
		Return(decimal.NewFromInt(3), nil).Once() // 5 - 2 from page one

	paramsOne, err := pagination.New(1, 2)
	suite.Require().NoError(err)
	paramsTwo, err := pagination.New(2, 2)
	suite.Require().NoError(err)

	first, _, err := suite.service.GetMovementHistory(ctx, filter, paramsOne)
	suite.Require().NoError(err)
	second, _, err := suite.service.GetMovementHistory(ctx, filter, paramsTwo)
	suite.Require().NoError(err)

	lastOfPageOne := first[len(first)-1].RunningBalance
	expected := lastOfPageOne.Add(pageTwo[0].StockIn).Sub(pageTwo[0].StockOut)
	suite.True(second[0].RunningBalance.Equal(expected))
}

func (suite *LedgerServiceTestSuite) TestGetMovementHistory_RepoError() {
	ctx := context.Background()
	filter := domain.MovementFilter{ItemID: &suite.itemID}

	suite.mockMovementRepo.On("ListMovements", ctx, filter, 10, 0).
		Return(nil, int64(0), context.DeadlineExceeded).Once()

	params, err := pagination.New(1, 10)
	suite.Require().NoError(err)

	_, _, err = suite.service.GetMovementHistory(ctx, filter, params)

	suite.Require().Error(err)
	suite.ErrorIs(err, context.DeadlineExceeded)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
