package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	VoucherRepo  VoucherRepository
	TypeRepo     TransactionTypeRepository
	MovementRepo MovementRepository
	SiteRepo     SiteRepository
	ItemRepo     ItemRepository
	BrandRepo    BrandRepository
	ModelRepo    ModelRepository
}
