package repositories

import (
	"context"

	"github.com/munna98/stock-star/internal/core/domain"
)

// BrandRepository defines persistence operations for the brand lookup table.
type BrandRepository interface {
	SaveBrand(ctx context.Context, brand domain.Brand) (int64, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	UpdateBrand(ctx context.Context, brand domain.Brand) error
	DeleteBrand(ctx context.Context, brandID int64) error
}

// ModelRepository defines persistence operations for the model lookup table.
type ModelRepository interface {
	SaveModel(ctx context.Context, model domain.Model) (int64, error)
	ListModels(ctx context.Context) ([]domain.Model, error)
	UpdateModel(ctx context.Context, model domain.Model) error
	DeleteModel(ctx context.Context, modelID int64) error
}
