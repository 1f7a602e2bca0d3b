package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/munna98/stock-star/internal/apperrors"
	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
	"github.com/munna98/stock-star/internal/core/services"
	"github.com/munna98/stock-star/internal/dto"
	"github.com/munna98/stock-star/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VoucherRepository ---
type MockVoucherRepository struct {
	mock.Mock
}

var _ portsrepo.VoucherRepository = (*MockVoucherRepository)(nil)

func (m *MockVoucherRepository) CreateVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.PostedLine) (int64, string, error) {
	args := m.Called(ctx, voucher, lines)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

func (m *MockVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.PostedLine) error {
	args := m.Called(ctx, voucher, lines)
	return args.Error(0)
}

func (m *MockVoucherRepository) DeleteVoucher(ctx context.Context, voucherID int64) error {
	args := m.Called(ctx, voucherID)
	return args.Error(0)
}

func (m *MockVoucherRepository) FindVoucherByID(ctx context.Context, voucherID int64) (*domain.Voucher, error) {
	args := m.Called(ctx, voucherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Voucher), args.Error(1)
}

func (m *MockVoucherRepository) ListVouchers(ctx context.Context, limit, offset int) ([]domain.VoucherDisplay, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.VoucherDisplay), args.Get(1).(int64), args.Error(2)
}

func (m *MockVoucherRepository) CountVouchersCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock TransactionTypeRepository ---
type MockTransactionTypeRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionTypeRepository = (*MockTransactionTypeRepository)(nil)

func (m *MockTransactionTypeRepository) FindTypeByID(ctx context.Context, typeID int64) (*domain.TransactionType, error) {
	args := m.Called(ctx, typeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionType), args.Error(1)
}

func (m *MockTransactionTypeRepository) ListTypes(ctx context.Context) ([]domain.TransactionType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionType), args.Error(1)
}

// --- Mock SiteRepository ---
type MockSiteRepository struct {
	mock.Mock
}

var _ portsrepo.SiteRepository = (*MockSiteRepository)(nil)

func (m *MockSiteRepository) SaveSite(ctx context.Context, site domain.Site) (int64, error) {
	args := m.Called(ctx, site)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSiteRepository) FindSiteByID(ctx context.Context, siteID int64) (*domain.Site, error) {
	args := m.Called(ctx, siteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func (m *MockSiteRepository) ListSites(ctx context.Context) ([]domain.Site, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Site), args.Error(1)
}

func (m *MockSiteRepository) UpdateSite(ctx context.Context, site domain.Site) error {
	args := m.Called(ctx, site)
	return args.Error(0)
}

func (m *MockSiteRepository) DeleteSite(ctx context.Context, siteID int64) error {
	args := m.Called(ctx, siteID)
	return args.Error(0)
}

func (m *MockSiteRepository) CountActiveSites(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite Setup ---
type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockTypeRepo    *MockTransactionTypeRepository
	mockSiteRepo    *MockSiteRepository
	service         portssvc.VoucherSvcFacade
	godownID        int64
	siteID          int64
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockTypeRepo = new(MockTransactionTypeRepository)
	suite.mockSiteRepo = new(MockSiteRepository)
	suite.service = services.NewVoucherService(suite.mockVoucherRepo, suite.mockTypeRepo, suite.mockSiteRepo)
	suite.godownID = int64(1)
	suite.siteID = int64(2)
}

func ptrInt64(v int64) *int64 { return &v }

// --- Test Cases ---

func (suite *VoucherServiceTestSuite) TestPostVoucher_Success() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherDate:       "2026-03-15",
		DestinationSiteID: ptrInt64(suite.godownID),
		VoucherTypeID:     1,
		Lines: []dto.VoucherLineRequest{
			{ItemID: 10, Quantity: decimal.NewFromInt(5)},
		},
	}

	suite.mockTypeRepo.On("FindTypeByID", ctx, int64(1)).
		Return(&domain.TransactionType{ID: 1, Name: domain.TypePurchaseInward}, nil).Once()
	suite.mockVoucherRepo.On("CreateVoucher", ctx, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.PostedLine")).
		Return(int64(42), "1", nil).Once()

	voucher, err := suite.service.PostVoucher(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(voucher)
	suite.Equal(int64(42), voucher.ID)
	suite.Equal("1", voucher.TransactionNumber)
	suite.Equal(domain.TypePurchaseInward, voucher.Remarks) // auto-generated from blank
	suite.Len(voucher.Lines, 1)
	suite.Equal(int64(42), voucher.Lines[0].VoucherID)

	// One stock-in movement at the destination, nothing at the source.
	savedLines := suite.mockVoucherRepo.Calls[0].Arguments.Get(2).([]domain.PostedLine)
	suite.Require().Len(savedLines, 1)
	suite.Require().Len(savedLines[0].Movements, 1)
	suite.Equal(suite.godownID, savedLines[0].Movements[0].SiteID)
	suite.True(savedLines[0].Movements[0].StockIn.Equal(decimal.NewFromInt(5)))
	suite.True(savedLines[0].Movements[0].StockOut.IsZero())

	suite.mockTypeRepo.AssertExpectations(suite.T())
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestPostVoucher_RepeatedItemKeepsMovementsPerLine() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherDate:       "2026-03-15",
		DestinationSiteID: ptrInt64(suite.godownID),
		VoucherTypeID:     1,
		Lines: []dto.VoucherLineRequest{
			{ItemID: 10, Quantity: decimal.NewFromInt(5)},
			{ItemID: 10, Quantity: decimal.NewFromInt(2)},
		},
	}

	suite.mockTypeRepo.On("FindTypeByID", ctx, int64(1)).
		Return(&domain.TransactionType{ID: 1, Name: domain.TypePurchaseInward}, nil).Once()
	suite.mockVoucherRepo.On("CreateVoucher", ctx, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.PostedLine")).
		Return(int64(43), "2", nil).Once()

	_, err := suite.service.PostVoucher(ctx, req)

	suite.Require().NoError(err)

	// Two lines for the same item stay separate units, each carrying its own
	// movements, so the repository can tie every movement to the line that
	// produced it.
	savedLines := suite.mockVoucherRepo.Calls[0].Arguments.Get(2).([]domain.PostedLine)
	suite.Require().Len(savedLines, 2)
	suite.Require().Len(savedLines[0].Movements, 1)
	suite.Require().Len(savedLines[1].Movements, 1)
	suite.True(savedLines[0].Movements[0].StockIn.Equal(decimal.NewFromInt(5)))
	suite.True(savedLines[1].Movements[0].StockIn.Equal(decimal.NewFromInt(2)))
}

func (suite *VoucherServiceTestSuite) TestPostVoucher_TransferRemark() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherDate:       "2026-03-15",
		SourceSiteID:      ptrInt64(suite.godownID),
		DestinationSiteID: ptrInt64(suite.siteID),
		VoucherTypeID:     3,
		Lines: []dto.VoucherLineRequest{
			{ItemID: 10, Quantity: decimal.NewFromInt(4)},
		},
	}

	suite.mockTypeRepo.On("FindTypeByID", ctx, int64(3)).
		Return(&domain.TransactionType{ID: 3, Name: domain.TypeGodownToSite}, nil).Once()
	suite.mockSiteRepo.On("FindSiteByID", ctx, suite.godownID).
		Return(&domain.Site{ID: suite.godownID, Name: "Main Godown"}, nil).Once()
	suite.mockSiteRepo.On("FindSiteByID", ctx, suite.siteID).
		Return(&domain.Site{ID: suite.siteID, Name: "Tower A"}, nil).Once()
	suite.mockVoucherRepo.On("CreateVoucher", ctx, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.PostedLine")).
		Return(int64(7), "12", nil).Once()

	voucher, err := suite.service.PostVoucher(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("Transfer: Main Godown -> Tower A", voucher.Remarks)

	// A transfer emits a paired out/in that nets to zero.
	savedLines := suite.mockVoucherRepo.Calls[0].Arguments.Get(2).([]domain.PostedLine)
	suite.Require().Len(savedLines[0].Movements, 2)
	net := decimal.Zero
	for _, mv := range savedLines[0].Movements {
		net = net.Add(mv.StockIn).Sub(mv.StockOut)
	}
	suite.True(net.IsZero())

	suite.mockSiteRepo.AssertExpectations(suite.T())
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestPostVoucher_ExplicitRemarksKept() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherDate:       "2026-03-15",
		SourceSiteID:      ptrInt64(suite.godownID),
		DestinationSiteID: ptrInt64(suite.siteID),
		VoucherTypeID:     3,
		Remarks:           "urgent move for slab work",
		Lines: []dto.VoucherLineRequest{
			{ItemID: 10, Quantity: decimal.NewFromInt(1)},
		},
	}

	suite.mockTypeRepo.On("FindTypeByID", ctx, int64(3)).
		Return(&domain.TransactionType{ID: 3, Name: domain.TypeGodownToSite}, nil).Once()
	suite.mockVoucherRepo.On("CreateVoucher", ctx, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.PostedLine")).
		Return(int64(8), "13", nil).Once()

	voucher, err := suite.service.PostVoucher(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("urgent move for slab work", voucher.Remarks)
	suite.mockSiteRepo.AssertNotCalled(suite.T(), "FindSiteByID", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestPostVoucher_UnknownTypeID() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherDate:   "2026-03-15",
		VoucherTypeID: 99,
		Lines:         []dto.VoucherLineRequest{{ItemID: 10, Quantity: decimal.NewFromInt(1)}},
	}

	suite.mockTypeRepo.On("FindTypeByID", ctx, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PostVoucher(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "CreateVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestPostVoucher_UnrecognizedTypeNameStoresNoMovements() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherDate:       "2026-03-15",
		DestinationSiteID: ptrInt64(suite.godownID),
		VoucherTypeID:     50,
		Lines:             []dto.VoucherLineRequest{{ItemID: 10, Quantity: decimal.NewFromInt(2)}},
	}

	// A type outside the seeded vocabulary posts fine but derives nothing.
	suite.mockTypeRepo.On("FindTypeByID", ctx, int64(50)).
		Return(&domain.TransactionType{ID: 50, Name: "Stock Audit"}, nil).Once()
	suite.mockVoucherRepo.On("CreateVoucher", ctx, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.PostedLine")).
		Return(int64(9), "14", nil).Once()

	_, err := suite.service.PostVoucher(ctx, req)

	suite.Require().NoError(err)
	savedLines := suite.mockVoucherRepo.Calls[0].Arguments.Get(2).([]domain.PostedLine)
	suite.Require().Len(savedLines, 1)
	suite.Empty(savedLines[0].Movements)
}

func (suite *VoucherServiceTestSuite) TestPostVoucher_InvalidDate() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherDate:   "15/03/2026",
		VoucherTypeID: 1,
	}

	_, err := suite.service.PostVoucher(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTypeRepo.AssertNotCalled(suite.T(), "FindTypeByID", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestPostVoucher_NonPositiveQuantity() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherDate:       "2026-03-15",
		DestinationSiteID: ptrInt64(suite.godownID),
		VoucherTypeID:     1,
		Lines:             []dto.VoucherLineRequest{{ItemID: 10, Quantity: decimal.Zero}},
	}

	suite.mockTypeRepo.On("FindTypeByID", ctx, int64(1)).
		Return(&domain.TransactionType{ID: 1, Name: domain.TypePurchaseInward}, nil).Once()

	_, err := suite.service.PostVoucher(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "CreateVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestPostVoucher_RepoError() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{
		VoucherDate:       "2026-03-15",
		DestinationSiteID: ptrInt64(suite.godownID),
		VoucherTypeID:     1,
		Lines:             []dto.VoucherLineRequest{{ItemID: 10, Quantity: decimal.NewFromInt(5)}},
	}

	suite.mockTypeRepo.On("FindTypeByID", ctx, int64(1)).
		Return(&domain.TransactionType{ID: 1, Name: domain.TypePurchaseInward}, nil).Once()
	suite.mockVoucherRepo.On("CreateVoucher", ctx, mock.AnythingOfType("domain.Voucher"), mock.AnythingOfType("[]domain.PostedLine")).
		Return(int64(0), "", assert.AnError).Once()

	_, err := suite.service.PostVoucher(ctx, req)

	suite.Require().Error(err)
	suite.Contains(err.Error(), assert.AnError.Error())
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher_PreservesNumberAndCreation() {
	ctx := context.Background()
	createdBy := ptrInt64(1)
	createdAt := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	existing := &domain.Voucher{
		ID:                42,
		TransactionNumber: "17",
		VoucherTypeID:     1,
		CreatedBy:         createdBy,
		CreatedAt:         createdAt,
	}
	req := dto.UpdateVoucherRequest{
		VoucherDate:   "2026-03-20",
		SourceSiteID:  ptrInt64(suite.siteID),
		VoucherTypeID: 6,
		Lines:         []dto.VoucherLineRequest{{ItemID: 10, Quantity: decimal.NewFromInt(3)}},
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, int64(42)).Return(existing, nil).Once()
	suite.mockTypeRepo.On("FindTypeByID", ctx, int64(6)).
		Return(&domain.TransactionType{ID: 6, Name: domain.TypeMaterialUsage}, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.ID == 42 &&
			v.TransactionNumber == "17" &&
			v.CreatedAt.Equal(createdAt) &&
			v.CreatedBy == createdBy &&
			v.UpdatedAt != nil
	}), mock.AnythingOfType("[]domain.PostedLine")).Return(nil).Once()

	err := suite.service.UpdateVoucher(ctx, 42, req)

	suite.Require().NoError(err)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher_NotFound() {
	ctx := context.Background()
	req := dto.UpdateVoucherRequest{
		VoucherDate:   "2026-03-20",
		VoucherTypeID: 1,
	}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.UpdateVoucher(ctx, 99, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "UpdateVoucher", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestDeleteVoucher() {
	ctx := context.Background()

	suite.mockVoucherRepo.On("DeleteVoucher", ctx, int64(42)).Return(nil).Once()

	err := suite.service.DeleteVoucher(ctx, 42)

	suite.Require().NoError(err)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestDeleteVoucher_NotFound() {
	ctx := context.Background()

	suite.mockVoucherRepo.On("DeleteVoucher", ctx, int64(99)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteVoucher(ctx, 99)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *VoucherServiceTestSuite) TestListVouchers() {
	ctx := context.Background()
	display := []domain.VoucherDisplay{{ID: 1, TransactionNumber: "1"}}

	suite.mockVoucherRepo.On("ListVouchers", ctx, 10, 10).Return(display, int64(25), nil).Once()

	params, err := pagination.New(2, 10)
	suite.Require().NoError(err)

	vouchers, total, err := suite.service.ListVouchers(ctx, params)

	suite.Require().NoError(err)
	suite.Equal(display, vouchers)
	suite.Equal(int64(25), total)
}

func (suite *VoucherServiceTestSuite) TestListTransactionTypes() {
	ctx := context.Background()
	types := []domain.TransactionType{{ID: 1, Name: domain.TypePurchaseInward}}

	suite.mockTypeRepo.On("ListTypes", ctx).Return(types, nil).Once()

	got, err := suite.service.ListTransactionTypes(ctx)

	suite.Require().NoError(err)
	suite.Equal(types, got)
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
