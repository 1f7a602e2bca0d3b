package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		VoucherRepo:  newPgxVoucherRepository(dbPool),
		TypeRepo:     newPgxTransactionTypeRepository(dbPool),
		MovementRepo: newPgxMovementRepository(dbPool),
		SiteRepo:     newPgxSiteRepository(dbPool),
		ItemRepo:     newPgxItemRepository(dbPool),
		BrandRepo:    newPgxBrandRepository(dbPool),
		ModelRepo:    newPgxModelRepository(dbPool),
	}
}
