package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
	"github.com/munna98/stock-star/internal/middleware"
	"github.com/munna98/stock-star/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// ledgerService replays the movement history and annotates each row with its
// running balance.
type ledgerService struct {
	movementRepo portsrepo.MovementRepository
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(movementRepo portsrepo.MovementRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{movementRepo: movementRepo}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// GetMovementHistory returns one page of the filtered history with running
// balances. The running balance is only meaningful for a single item, so it
// stays zero unless the filter names one. For a filtered page the starting
// balance folds in everything outside the page: movements dated before the
// window's start plus the rows the pagination offset skipped.
func (s *ledgerService) GetMovementHistory(ctx context.Context, filter domain.MovementFilter, params pagination.Params) ([]domain.MovementRecord, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	records, total, err := s.movementRepo.ListMovements(ctx, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list movements: %w", err)
	}

	if filter.ItemID == nil {
		return records, total, nil
	}

	starting, err := s.startingBalance(ctx, filter, params.Offset())
	if err != nil {
		return nil, 0, err
	}

	running := starting
	for i := range records {
		running = running.Add(records[i].StockIn).Sub(records[i].StockOut)
		records[i].RunningBalance = running
	}

	logger.Debug("Movement history replayed",
		slog.Int64("item_id", *filter.ItemID),
		slog.Int("rows", len(records)),
		slog.String("starting_balance", starting.String()),
	)
	return records, total, nil
}

// startingBalance computes the balance just before the first row of the page:
// the opening balance carried from before the date window, plus the net effect
// of the offset-skipped rows inside it.
func (s *ledgerService) startingBalance(ctx context.Context, filter domain.MovementFilter, offset int) (decimal.Decimal, error) {
	starting := decimal.Zero

	if filter.From != nil {
		opening, err := s.movementRepo.SumMovementsBefore(ctx, *filter.ItemID, filter.SiteID, *filter.From)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to compute opening balance: %w", err)
		}
		starting = starting.Add(opening)
	}

	if offset > 0 {
		skipped, err := s.movementRepo.SumSkippedMovements(ctx, filter, offset)
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to compute skipped balance: %w", err)
		}
		starting = starting.Add(skipped)
	}

	return starting, nil
}
