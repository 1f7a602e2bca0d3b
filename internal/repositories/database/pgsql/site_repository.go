package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/munna98/stock-star/internal/apperrors"
	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapConstraintErr translates constraint violations into application errors
// callers can branch on.
func mapConstraintErr(err error, duplicateMsg, referencedMsg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewAppError(409, duplicateMsg, apperrors.ErrDuplicate)
		case pgForeignKeyViolation:
			return apperrors.NewValidationError(referencedMsg)
		}
	}
	return nil
}

type PgxSiteRepository struct {
	BaseRepository
}

// newPgxSiteRepository creates a new repository for site data.
func newPgxSiteRepository(pool *pgxpool.Pool) portsrepo.SiteRepository {
	return &PgxSiteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SiteRepository = (*PgxSiteRepository)(nil)

func (r *PgxSiteRepository) SaveSite(ctx context.Context, site domain.Site) (int64, error) {
	var siteID int64
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO sites (code, name, address, type, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`, site.Code, site.Name, site.Address, site.Type, site.IsActive).Scan(&siteID)
	if err != nil {
		if mapped := mapConstraintErr(err, "site code "+site.Code+" already exists", "site references missing data"); mapped != nil {
			return 0, mapped
		}
		return 0, apperrors.NewAppError(500, "failed to insert site", err)
	}
	return siteID, nil
}

func (r *PgxSiteRepository) FindSiteByID(ctx context.Context, siteID int64) (*domain.Site, error) {
	var site domain.Site
	err := r.Pool.QueryRow(ctx, `
		SELECT id, code, name, address, type, is_active
		FROM sites
		WHERE id = $1;
	`, siteID).Scan(&site.ID, &site.Code, &site.Name, &site.Address, &site.Type, &site.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find site by ID "+strconv.FormatInt(siteID, 10), err)
	}
	return &site, nil
}

func (r *PgxSiteRepository) ListSites(ctx context.Context) ([]domain.Site, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, code, name, address, type, is_active
		FROM sites
		ORDER BY name;
	`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sites", err)
	}
	defer rows.Close()

	sites := []domain.Site{}
	for rows.Next() {
		var site domain.Site
		if err := rows.Scan(&site.ID, &site.Code, &site.Name, &site.Address, &site.Type, &site.IsActive); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan site row", err)
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating site rows", err)
	}
	return sites, nil
}

func (r *PgxSiteRepository) UpdateSite(ctx context.Context, site domain.Site) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE sites
		SET code = $2, name = $3, address = $4, type = $5, is_active = $6
		WHERE id = $1;
	`, site.ID, site.Code, site.Name, site.Address, site.Type, site.IsActive)
	if err != nil {
		if mapped := mapConstraintErr(err, "site code "+site.Code+" already exists", "site references missing data"); mapped != nil {
			return mapped
		}
		return apperrors.NewAppError(500, "failed to update site "+strconv.FormatInt(site.ID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("site " + strconv.FormatInt(site.ID, 10) + " not found for update")
	}
	return nil
}

func (r *PgxSiteRepository) DeleteSite(ctx context.Context, siteID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM sites WHERE id = $1;`, siteID)
	if err != nil {
		if mapped := mapConstraintErr(err, "", "site is referenced by vouchers or movements"); mapped != nil {
			return mapped
		}
		return apperrors.NewAppError(500, "failed to delete site "+strconv.FormatInt(siteID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("site " + strconv.FormatInt(siteID, 10) + " not found")
	}
	return nil
}

func (r *PgxSiteRepository) CountActiveSites(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM sites WHERE is_active;`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count active sites", err)
	}
	return count, nil
}
