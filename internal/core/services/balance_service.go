package services

import (
	"context"
	"fmt"

	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
	"github.com/munna98/stock-star/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// balanceService serves the aggregated stock views. All balances are computed
// from persisted movements; nothing is cached.
type balanceService struct {
	movementRepo portsrepo.MovementRepository
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(movementRepo portsrepo.MovementRepository) portssvc.BalanceSvcFacade {
	return &balanceService{movementRepo: movementRepo}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// GetBalance returns the net balance of one (site, item) pair. A pair with no
// movements reads as zero rather than missing.
func (s *balanceService) GetBalance(ctx context.Context, siteID, itemID int64) (decimal.Decimal, error) {
	balance, err := s.movementRepo.GetBalance(ctx, siteID, itemID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get balance for site %d item %d: %w", siteID, itemID, err)
	}
	return balance, nil
}

// ListBalances returns one page of the global balance listing plus the total
// row count under the same filter.
func (s *balanceService) ListBalances(ctx context.Context, filter domain.BalanceFilter, params pagination.Params) ([]domain.StockBalance, int64, error) {
	balances, total, err := s.movementRepo.ListBalances(ctx, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list balances: %w", err)
	}
	return balances, total, nil
}

// ListItemBalances returns where one item sits across all sites.
func (s *balanceService) ListItemBalances(ctx context.Context, itemID int64) ([]domain.StockBalance, error) {
	balances, err := s.movementRepo.ListItemBalances(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances for item %d: %w", itemID, err)
	}
	return balances, nil
}

// ListSiteBalances returns what one site holds across all items.
func (s *balanceService) ListSiteBalances(ctx context.Context, siteID int64) ([]domain.StockBalance, error) {
	balances, err := s.movementRepo.ListSiteBalances(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances for site %d: %w", siteID, err)
	}
	return balances, nil
}
