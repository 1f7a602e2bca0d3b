package pgsql

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/munna98/stock-star/internal/apperrors"
	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
)

type PgxBrandRepository struct {
	BaseRepository
}

func newPgxBrandRepository(pool *pgxpool.Pool) portsrepo.BrandRepository {
	return &PgxBrandRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BrandRepository = (*PgxBrandRepository)(nil)

func (r *PgxBrandRepository) SaveBrand(ctx context.Context, brand domain.Brand) (int64, error) {
	var brandID int64
	err := r.Pool.QueryRow(ctx, `INSERT INTO brands (name) VALUES ($1) RETURNING id;`, brand.Name).Scan(&brandID)
	if err != nil {
		if mapped := mapConstraintErr(err, "brand "+brand.Name+" already exists", ""); mapped != nil {
			return 0, mapped
		}
		return 0, apperrors.NewAppError(500, "failed to insert brand", err)
	}
	return brandID, nil
}

func (r *PgxBrandRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name FROM brands ORDER BY name;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query brands", err)
	}
	defer rows.Close()

	brands := []domain.Brand{}
	for rows.Next() {
		var brand domain.Brand
		if err := rows.Scan(&brand.ID, &brand.Name); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan brand row", err)
		}
		brands = append(brands, brand)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating brand rows", err)
	}
	return brands, nil
}

func (r *PgxBrandRepository) UpdateBrand(ctx context.Context, brand domain.Brand) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE brands SET name = $2 WHERE id = $1;`, brand.ID, brand.Name)
	if err != nil {
		if mapped := mapConstraintErr(err, "brand "+brand.Name+" already exists", ""); mapped != nil {
			return mapped
		}
		return apperrors.NewAppError(500, "failed to update brand "+strconv.FormatInt(brand.ID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("brand " + strconv.FormatInt(brand.ID, 10) + " not found for update")
	}
	return nil
}

func (r *PgxBrandRepository) DeleteBrand(ctx context.Context, brandID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM brands WHERE id = $1;`, brandID)
	if err != nil {
		if mapped := mapConstraintErr(err, "", "brand is referenced by items"); mapped != nil {
			return mapped
		}
		return apperrors.NewAppError(500, "failed to delete brand "+strconv.FormatInt(brandID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("brand " + strconv.FormatInt(brandID, 10) + " not found")
	}
	return nil
}

type PgxModelRepository struct {
	BaseRepository
}

func newPgxModelRepository(pool *pgxpool.Pool) portsrepo.ModelRepository {
	return &PgxModelRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ModelRepository = (*PgxModelRepository)(nil)

func (r *PgxModelRepository) SaveModel(ctx context.Context, model domain.Model) (int64, error) {
	var modelID int64
	err := r.Pool.QueryRow(ctx, `INSERT INTO models (name) VALUES ($1) RETURNING id;`, model.Name).Scan(&modelID)
	if err != nil {
		if mapped := mapConstraintErr(err, "model "+model.Name+" already exists", ""); mapped != nil {
			return 0, mapped
		}
		return 0, apperrors.NewAppError(500, "failed to insert model", err)
	}
	return modelID, nil
}

func (r *PgxModelRepository) ListModels(ctx context.Context) ([]domain.Model, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name FROM models ORDER BY name;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query models", err)
	}
	defer rows.Close()

	models := []domain.Model{}
	for rows.Next() {
		var model domain.Model
		if err := rows.Scan(&model.ID, &model.Name); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan model row", err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating model rows", err)
	}
	return models, nil
}

func (r *PgxModelRepository) UpdateModel(ctx context.Context, model domain.Model) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE models SET name = $2 WHERE id = $1;`, model.ID, model.Name)
	if err != nil {
		if mapped := mapConstraintErr(err, "model "+model.Name+" already exists", ""); mapped != nil {
			return mapped
		}
		return apperrors.NewAppError(500, "failed to update model "+strconv.FormatInt(model.ID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("model " + strconv.FormatInt(model.ID, 10) + " not found for update")
	}
	return nil
}

func (r *PgxModelRepository) DeleteModel(ctx context.Context, modelID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM models WHERE id = $1;`, modelID)
	if err != nil {
		if mapped := mapConstraintErr(err, "", "model is referenced by items"); mapped != nil {
			return mapped
		}
		return apperrors.NewAppError(500, "failed to delete model "+strconv.FormatInt(modelID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("model " + strconv.FormatInt(modelID, 10) + " not found")
	}
	return nil
}
