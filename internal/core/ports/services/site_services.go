package services

import (
	"context"

	"github.com/munna98/stock-star/internal/core/domain"
	"github.com/munna98/stock-star/internal/dto"
)

// SiteSvcFacade exposes site record management.
type SiteSvcFacade interface {
	CreateSite(ctx context.Context, req dto.SaveSiteRequest) (*domain.Site, error)
	ListSites(ctx context.Context) ([]domain.Site, error)
	UpdateSite(ctx context.Context, siteID int64, req dto.SaveSiteRequest) (*domain.Site, error)
	DeleteSite(ctx context.Context, siteID int64) error
}
