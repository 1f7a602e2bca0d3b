package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/munna98/stock-star/internal/apperrors"
	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
)

type PgxItemRepository struct {
	BaseRepository
}

// newPgxItemRepository creates a new repository for item data.
func newPgxItemRepository(pool *pgxpool.Pool) portsrepo.ItemRepository {
	return &PgxItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ItemRepository = (*PgxItemRepository)(nil)

func (r *PgxItemRepository) SaveItem(ctx context.Context, item domain.Item) (int64, error) {
	var itemID int64
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO items (code, name, brand_id, model_id, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`, item.Code, item.Name, item.BrandID, item.ModelID, item.IsActive).Scan(&itemID)
	if err != nil {
		if mapped := mapConstraintErr(err, "item code "+item.Code+" already exists", "item references an unknown brand or model"); mapped != nil {
			return 0, mapped
		}
		return 0, apperrors.NewAppError(500, "failed to insert item", err)
	}
	return itemID, nil
}

func (r *PgxItemRepository) FindItemByID(ctx context.Context, itemID int64) (*domain.Item, error) {
	var item domain.Item
	err := r.Pool.QueryRow(ctx, `
		SELECT id, code, name, brand_id, model_id, is_active
		FROM items
		WHERE id = $1;
	`, itemID).Scan(&item.ID, &item.Code, &item.Name, &item.BrandID, &item.ModelID, &item.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find item by ID "+strconv.FormatInt(itemID, 10), err)
	}
	return &item, nil
}

// ListItems resolves brand and model names for display.
func (r *PgxItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT i.id, i.code, i.name, i.brand_id, i.model_id, i.is_active, br.name, mo.name
		FROM items i
		LEFT JOIN brands br ON br.id = i.brand_id
		LEFT JOIN models mo ON mo.id = i.model_id
		ORDER BY i.name;
	`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items", err)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		var item domain.Item
		var brandName, modelName sql.NullString
		err := rows.Scan(&item.ID, &item.Code, &item.Name, &item.BrandID, &item.ModelID, &item.IsActive, &brandName, &modelName)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row", err)
		}
		item.BrandName = brandName.String
		item.ModelName = modelName.String
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating item rows", err)
	}
	return items, nil
}

func (r *PgxItemRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE items
		SET code = $2, name = $3, brand_id = $4, model_id = $5, is_active = $6
		WHERE id = $1;
	`, item.ID, item.Code, item.Name, item.BrandID, item.ModelID, item.IsActive)
	if err != nil {
		if mapped := mapConstraintErr(err, "item code "+item.Code+" already exists", "item references an unknown brand or model"); mapped != nil {
			return mapped
		}
		return apperrors.NewAppError(500, "failed to update item "+strconv.FormatInt(item.ID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item " + strconv.FormatInt(item.ID, 10) + " not found for update")
	}
	return nil
}

func (r *PgxItemRepository) DeleteItem(ctx context.Context, itemID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM items WHERE id = $1;`, itemID)
	if err != nil {
		if mapped := mapConstraintErr(err, "", "item is referenced by vouchers or movements"); mapped != nil {
			return mapped
		}
		return apperrors.NewAppError(500, "failed to delete item "+strconv.FormatInt(itemID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("item " + strconv.FormatInt(itemID, 10) + " not found")
	}
	return nil
}

func (r *PgxItemRepository) CountActiveItems(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM items WHERE is_active;`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count active items", err)
	}
	return count, nil
}
