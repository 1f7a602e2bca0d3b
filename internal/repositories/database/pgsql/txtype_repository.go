package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/munna98/stock-star/internal/apperrors"
	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
)

type PgxTransactionTypeRepository struct {
	BaseRepository
}

// newPgxTransactionTypeRepository creates a read-only repository over the
// seeded type vocabulary.
func newPgxTransactionTypeRepository(pool *pgxpool.Pool) portsrepo.TransactionTypeRepository {
	return &PgxTransactionTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionTypeRepository = (*PgxTransactionTypeRepository)(nil)

func (r *PgxTransactionTypeRepository) FindTypeByID(ctx context.Context, typeID int64) (*domain.TransactionType, error) {
	var typ domain.TransactionType
	err := r.Pool.QueryRow(ctx, `SELECT id, name FROM inventory_transaction_types WHERE id = $1;`, typeID).
		Scan(&typ.ID, &typ.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction type "+strconv.FormatInt(typeID, 10), err)
	}
	return &typ, nil
}

func (r *PgxTransactionTypeRepository) ListTypes(ctx context.Context) ([]domain.TransactionType, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, name FROM inventory_transaction_types ORDER BY id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction types", err)
	}
	defer rows.Close()

	types := []domain.TransactionType{}
	for rows.Next() {
		var typ domain.TransactionType
		if err := rows.Scan(&typ.ID, &typ.Name); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction type row", err)
		}
		types = append(types, typ)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction type rows", err)
	}
	return types, nil
}
