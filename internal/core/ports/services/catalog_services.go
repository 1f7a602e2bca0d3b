package services

import (
	"context"

	"github.com/munna98/stock-star/internal/core/domain"
	"github.com/munna98/stock-star/internal/dto"
)

// CatalogSvcFacade exposes the brand and model lookup tables.
type CatalogSvcFacade interface {
	CreateBrand(ctx context.Context, req dto.SaveBrandRequest) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	UpdateBrand(ctx context.Context, brandID int64, req dto.SaveBrandRequest) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, brandID int64) error

	CreateModel(ctx context.Context, req dto.SaveModelRequest) (*domain.Model, error)
	ListModels(ctx context.Context) ([]domain.Model, error)
	UpdateModel(ctx context.Context, modelID int64, req dto.SaveModelRequest) (*domain.Model, error)
	DeleteModel(ctx context.Context, modelID int64) error
}
