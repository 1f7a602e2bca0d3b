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

type siteService struct {
	siteRepo portsrepo.SiteRepository
}

// NewSiteService creates a new SiteService.
func NewSiteService(siteRepo portsrepo.SiteRepository) portssvc.SiteSvcFacade {
	return &siteService{siteRepo: siteRepo}
}

var _ portssvc.SiteSvcFacade = (*siteService)(nil)

func (s *siteService) CreateSite(ctx context.Context, req dto.SaveSiteRequest) (*domain.Site, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	site := domain.Site{
		Code:     req.Code,
		Name:     req.Name,
		Address:  req.Address,
		Type:     req.Type,
		IsActive: req.IsActive == nil || *req.IsActive,
	}

	siteID, err := s.siteRepo.SaveSite(ctx, site)
	if err != nil {
		return nil, fmt.Errorf("failed to save site: %w", err)
	}
	site.ID = siteID

	logger.Info("Site created", slog.Int64("site_id", siteID), slog.String("code", site.Code))
	return &site, nil
}

func (s *siteService) ListSites(ctx context.Context) ([]domain.Site, error) {
	sites, err := s.siteRepo.ListSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	return sites, nil
}

func (s *siteService) UpdateSite(ctx context.Context, siteID int64, req dto.SaveSiteRequest) (*domain.Site, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.siteRepo.FindSiteByID(ctx, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to find site %d: %w", siteID, err)
	}

	site := domain.Site{
		ID:       existing.ID,
		Code:     req.Code,
		Name:     req.Name,
		Address:  req.Address,
		Type:     req.Type,
		IsActive: existing.IsActive,
	}
	if req.IsActive != nil {
		site.IsActive = *req.IsActive
	}

	if err := s.siteRepo.UpdateSite(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to update site %d: %w", siteID, err)
	}

	logger.Info("Site updated", slog.Int64("site_id", siteID))
	return &site, nil
}

func (s *siteService) DeleteSite(ctx context.Context, siteID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.siteRepo.DeleteSite(ctx, siteID); err != nil {
		return fmt.Errorf("failed to delete site %d: %w", siteID, err)
	}

	logger.Info("Site deleted", slog.Int64("site_id", siteID))
	return nil
}
