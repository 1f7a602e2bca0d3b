package repositories

import (
	"context"

	"github.com/munna98/stock-star/internal/core/domain"
)

// SiteRepository defines persistence operations for Sites.
type SiteRepository interface {
	SaveSite(ctx context.Context, site domain.Site) (int64, error)
	FindSiteByID(ctx context.Context, siteID int64) (*domain.Site, error)
	ListSites(ctx context.Context) ([]domain.Site, error)
	UpdateSite(ctx context.Context, site domain.Site) error
	DeleteSite(ctx context.Context, siteID int64) error
	CountActiveSites(ctx context.Context) (int64, error)
}
