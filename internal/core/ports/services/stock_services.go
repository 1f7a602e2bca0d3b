package services

import (
	"context"

	"github.com/munna98/stock-star/internal/core/domain"
	"github.com/munna98/stock-star/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// BalanceSvcFacade exposes point-in-time stock balance views derived from
// persisted movements.
type BalanceSvcFacade interface {
	// GetBalance returns the net balance for one (site, item) pair, zero
	// included.
	GetBalance(ctx context.Context, siteID, itemID int64) (decimal.Decimal, error)
	ListBalances(ctx context.Context, filter domain.BalanceFilter, params pagination.Params) ([]domain.StockBalance, int64, error)
	ListItemBalances(ctx context.Context, itemID int64) ([]domain.StockBalance, error)
	ListSiteBalances(ctx context.Context, siteID int64) ([]domain.StockBalance, error)
}

// LedgerSvcFacade exposes the chronological movement history with per-page
// running balances.
type LedgerSvcFacade interface {
	GetMovementHistory(ctx context.Context, filter domain.MovementFilter, params pagination.Params) ([]domain.MovementRecord, int64, error)
}

// DashboardSvcFacade exposes the summary counters of the landing view.
type DashboardSvcFacade interface {
	GetStats(ctx context.Context) (*domain.DashboardStats, error)
}
