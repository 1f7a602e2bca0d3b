package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
	portssvc "github.com/munna98/stock-star/internal/core/ports/services"
	"github.com/munna98/stock-star/internal/dto"
	"github.com/munna98/stock-star/internal/middleware"
)

// catalogService manages the brand and model lookup tables.
type catalogService struct {
	brandRepo portsrepo.BrandRepository
	modelRepo portsrepo.ModelRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(brandRepo portsrepo.BrandRepository, modelRepo portsrepo.ModelRepository) portssvc.CatalogSvcFacade {
	return &catalogService{brandRepo: brandRepo, modelRepo: modelRepo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) CreateBrand(ctx context.Context, req dto.SaveBrandRequest) (*domain.Brand, error) {
	brand := domain.Brand{Name: req.Name}
	brandID, err := s.brandRepo.SaveBrand(ctx, brand)
	if err != nil {
		return nil, fmt.Errorf("failed to save brand: %w", err)
	}
	brand.ID = brandID
	middleware.GetLoggerFromCtx(ctx).Info("Brand created", slog.Int64("brand_id", brandID))
	return &brand, nil
}

func (s *catalogService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.brandRepo.ListBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

func (s *catalogService) UpdateBrand(ctx context.Context, brandID int64, req dto.SaveBrandRequest) (*domain.Brand, error) {
	brand := domain.Brand{ID: brandID, Name: req.Name}
	if err := s.brandRepo.UpdateBrand(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to update brand %d: %w", brandID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Brand updated", slog.Int64("brand_id", brandID))
	return &brand, nil
}

func (s *catalogService) DeleteBrand(ctx context.Context, brandID int64) error {
	if err := s.brandRepo.DeleteBrand(ctx, brandID); err != nil {
		return fmt.Errorf("failed to delete brand %d: %w", brandID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Brand deleted", slog.Int64("brand_id", brandID))
	return nil
}

func (s *catalogService) CreateModel(ctx context.Context, req dto.SaveModelRequest) (*domain.Model, error) {
	model := domain.Model{Name: req.Name}
	modelID, err := s.modelRepo.SaveModel(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("failed to save model: %w", err)
	}
	model.ID = modelID
	middleware.GetLoggerFromCtx(ctx).Info("Model created", slog.Int64("model_id", modelID))
	return &model, nil
}

func (s *catalogService) ListModels(ctx context.Context) ([]domain.Model, error) {
	models, err := s.modelRepo.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	return models, nil
}

func (s *catalogService) UpdateModel(ctx context.Context, modelID int64, req dto.SaveModelRequest) (*domain.Model, error) {
	model := domain.Model{ID: modelID, Name: req.Name}
	if err := s.modelRepo.UpdateModel(ctx, model); err != nil {
		return nil, fmt.Errorf("failed to update model %d: %w", modelID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Model updated", slog.Int64("model_id", modelID))
	return &model, nil
}

func (s *catalogService) DeleteModel(ctx context.Context, modelID int64) error {
	if err := s.modelRepo.DeleteModel(ctx, modelID); err != nil {
		return fmt.Errorf("failed to delete model %d: %w", modelID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Model deleted", slog.Int64("model_id", modelID))
	return nil
}
