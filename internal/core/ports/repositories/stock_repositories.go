package repositories

import (
	"context"
	"time"

	"github.com/munna98/stock-star/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MovementRepository defines the read side over persisted stock movements:
// balance aggregation and the chronological movement history.
type MovementRepository interface {
	// GetBalance returns Σ stock_in − Σ stock_out for one (site, item) pair,
	// zero when the pair has no movements.
	GetBalance(ctx context.Context, siteID, itemID int64) (decimal.Decimal, error)

	// ListBalances returns the global balance listing over items × sites with
	// zero-balance pairs excluded, ordered by site name then item name, plus
	// the total row count under the same filter.
	ListBalances(ctx context.Context, filter domain.BalanceFilter, limit, offset int) ([]domain.StockBalance, int64, error)

	// ListItemBalances returns one item's non-zero balances across all sites,
	// ordered by site name.
	ListItemBalances(ctx context.Context, itemID int64) ([]domain.StockBalance, error)

	// ListSiteBalances returns one site's non-zero balances across all items,
	// ordered by item name.
	ListSiteBalances(ctx context.Context, siteID int64) ([]domain.StockBalance, error)

	// ListMovements returns one page of the filtered history ordered by
	// (voucher date ascending, movement id ascending) plus the total matching
	// row count. RunningBalance on the returned records is left zero.
	ListMovements(ctx context.Context, filter domain.MovementFilter, limit, offset int) ([]domain.MovementRecord, int64, error)

	// SumMovementsBefore returns Σ stock_in − Σ stock_out of every movement
	// for the item (optionally one site) whose voucher date is strictly
	// before the given date.
	SumMovementsBefore(ctx context.Context, itemID int64, siteID *int64, before time.Time) (decimal.Decimal, error)

	// SumSkippedMovements folds Σ stock_in − Σ stock_out over the first n rows
	// of the filtered history, using the identical filter and ordering as
	// ListMovements.
	SumSkippedMovements(ctx context.Context, filter domain.MovementFilter, n int) (decimal.Decimal, error)
}
