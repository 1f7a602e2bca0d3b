package services

import (
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Voucher:   NewVoucherService(repos.VoucherRepo, repos.TypeRepo, repos.SiteRepo),
		Balance:   NewBalanceService(repos.MovementRepo),
		Ledger:    NewLedgerService(repos.MovementRepo),
		Dashboard: NewDashboardService(repos.ItemRepo, repos.SiteRepo, repos.VoucherRepo),
		Site:      NewSiteService(repos.SiteRepo),
		Item:      NewItemService(repos.ItemRepo),
		Catalog:   NewCatalogService(repos.BrandRepo, repos.ModelRepo),
	}
}
