package services

import (
	"context"
	"fmt"
	"time"

	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
)

// recentWindow is how far back a voucher still counts as a recent transaction
// on the dashboard.
const recentWindow = 7 * 24 * time.Hour

type dashboardService struct {
	itemRepo    portsrepo.ItemRepository
	siteRepo    portsrepo.SiteRepository
	voucherRepo portsrepo.VoucherRepository
	now         func() time.Time
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(itemRepo portsrepo.ItemRepository, siteRepo portsrepo.SiteRepository, voucherRepo portsrepo.VoucherRepository) portssvc.DashboardSvcFacade {
	return &dashboardService{
		itemRepo:    itemRepo,
		siteRepo:    siteRepo,
		voucherRepo: voucherRepo,
		now:         time.Now,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// GetStats returns the landing view counters.
func (s *dashboardService) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	items, err := s.itemRepo.CountActiveItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active items: %w", err)
	}

	sites, err := s.siteRepo.CountActiveSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active sites: %w", err)
	}

	recent, err := s.voucherRepo.CountVouchersCreatedSince(ctx, s.now().UTC().Add(-recentWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to count recent vouchers: %w", err)
	}

	return &domain.DashboardStats{
		ActiveItemsCount:        items,
		ActiveSitesCount:        sites,
		RecentTransactionsCount: recent,
	}, nil
}
