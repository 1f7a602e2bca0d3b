package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/munna98/stock-star/internal/apperrors"
	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates the read-side repository over persisted
// stock movements.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepository {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MovementRepository = (*PgxMovementRepository)(nil)

// GetBalance sums the movements of one (site, item) pair. A pair without
// movements reads as zero.
func (r *PgxMovementRepository) GetBalance(ctx context.Context, siteID, itemID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(stock_in - stock_out), 0)
		FROM stock_movements
		WHERE site_id = $1 AND item_id = $2;
	`, siteID, itemID).Scan(&balance)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum movements for site/item pair", err)
	}
	return balance, nil
}

// balanceSelect aggregates movements over the full items × sites grid so
// pairs with offsetting movements are still visible to the HAVING clause.
const balanceSelect = `
	SELECT i.id, i.code, i.name, br.name, mo.name,
	       s.id, s.code, s.name, s.type,
	       COALESCE(SUM(mv.stock_in - mv.stock_out), 0) AS balance
	FROM items i
	CROSS JOIN sites s
	LEFT JOIN stock_movements mv ON mv.item_id = i.id AND mv.site_id = s.id
	LEFT JOIN brands br ON br.id = i.brand_id
	LEFT JOIN models mo ON mo.id = i.model_id
`

const balanceGroupBy = `
	GROUP BY i.id, i.code, i.name, br.name, mo.name, s.id, s.code, s.name, s.type
	HAVING COALESCE(SUM(mv.stock_in - mv.stock_out), 0) <> 0
`

func scanBalances(rows pgx.Rows) ([]domain.StockBalance, error) {
	defer rows.Close()

	balances := []domain.StockBalance{}
	for rows.Next() {
		var b domain.StockBalance
		err := rows.Scan(
			&b.ItemID, &b.ItemCode, &b.ItemName, &b.BrandName, &b.ModelName,
			&b.SiteID, &b.SiteCode, &b.SiteName, &b.SiteType,
			&b.Balance,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan balance row", err)
		}
		balances = append(balances, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating balance rows", err)
	}
	return balances, nil
}

// ListBalances returns one page of the global balance listing, ordered by
// site name then item name, plus the total row count under the same filter.
func (r *PgxMovementRepository) ListBalances(ctx context.Context, filter domain.BalanceFilter, limit, offset int) ([]domain.StockBalance, int64, error) {
	where := ""
	args := []interface{}{}
	if filter.ItemName != "" {
		args = append(args, "%"+filter.ItemName+"%")
		where = "WHERE i.name ILIKE $" + strconv.Itoa(len(args))
	}
	if filter.SiteID != nil {
		args = append(args, *filter.SiteID)
		clause := "s.id = $" + strconv.Itoa(len(args))
		if where == "" {
			where = "WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}

	body := balanceSelect + where + balanceGroupBy

	countQuery := `SELECT COUNT(*) FROM (` + body + `) AS filtered;`
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count balance rows", err)
	}

	args = append(args, limit)
	limitClause := " ORDER BY s.name, i.name LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	limitClause += " OFFSET $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, body+limitClause, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query balances", err)
	}
	balances, err := scanBalances(rows)
	if err != nil {
		return nil, 0, err
	}
	return balances, total, nil
}

// ListItemBalances returns one item's non-zero balances across all sites.
func (r *PgxMovementRepository) ListItemBalances(ctx context.Context, itemID int64) ([]domain.StockBalance, error) {
	query := balanceSelect + `WHERE i.id = $1` + balanceGroupBy + ` ORDER BY s.name;`
	rows, err := r.Pool.Query(ctx, query, itemID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query balances for item", err)
	}
	return scanBalances(rows)
}

// ListSiteBalances returns one site's non-zero balances across all items.
func (r *PgxMovementRepository) ListSiteBalances(ctx context.Context, siteID int64) ([]domain.StockBalance, error) {
	query := balanceSelect + `WHERE s.id = $1` + balanceGroupBy + ` ORDER BY i.name;`
	rows, err := r.Pool.Query(ctx, query, siteID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query balances for site", err)
	}
	return scanBalances(rows)
}

// movementWhere builds the WHERE clause shared by the history queries so the
// list, the count and the skipped-row sum always agree on which rows match.
func movementWhere(filter domain.MovementFilter) (string, []interface{}) {
	where := ""
	args := []interface{}{}
	add := func(clause string) {
		if where == "" {
			where = "WHERE " + clause
		} else {
			where += " AND " + clause
		}
	}
	if filter.ItemID != nil {
		args = append(args, *filter.ItemID)
		add("mv.item_id = $" + strconv.Itoa(len(args)))
	}
	if filter.SiteID != nil {
		args = append(args, *filter.SiteID)
		add("mv.site_id = $" + strconv.Itoa(len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		add("v.voucher_date >= $" + strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		add("v.voucher_date <= $" + strconv.Itoa(len(args)))
	}
	return where, args
}

// Replay order: voucher date first, movement id as the tie-breaker. Every
// history query must use exactly this ordering or running balances drift
// between pages.
const movementOrder = ` ORDER BY v.voucher_date ASC, mv.id ASC`

const movementJoins = `
	FROM stock_movements mv
	JOIN inventory_vouchers v ON v.id = mv.voucher_id
	JOIN inventory_transaction_types t ON t.id = v.voucher_type_id
	JOIN items i ON i.id = mv.item_id
	LEFT JOIN brands br ON br.id = i.brand_id
	LEFT JOIN models mo ON mo.id = i.model_id
	JOIN sites s ON s.id = mv.site_id
`

// ListMovements returns one page of the filtered history plus the total
// matching row count. Running balances are left zero for the caller to fill.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, filter domain.MovementFilter, limit, offset int) ([]domain.MovementRecord, int64, error) {
	where, args := movementWhere(filter)

	var total int64
	countQuery := `SELECT COUNT(*)` + movementJoins + where + `;`
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count movement rows", err)
	}

	selectClause := `
		SELECT mv.id, mv.voucher_id, v.transaction_number, v.voucher_date, t.name,
		       mv.item_id, i.code, i.name, br.name, mo.name,
		       mv.site_id, s.code, s.name,
		       mv.stock_in, mv.stock_out, v.remarks, mv.created_at
	`
	args = append(args, limit)
	pageClause := movementOrder + ` LIMIT $` + strconv.Itoa(len(args))
	args = append(args, offset)
	pageClause += ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, selectClause+movementJoins+where+pageClause, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query movement history", err)
	}
	defer rows.Close()

	records := []domain.MovementRecord{}
	for rows.Next() {
		var rec domain.MovementRecord
		err := rows.Scan(
			&rec.ID, &rec.VoucherID, &rec.TransactionNumber, &rec.VoucherDate, &rec.VoucherTypeName,
			&rec.ItemID, &rec.ItemCode, &rec.ItemName, &rec.BrandName, &rec.ModelName,
			&rec.SiteID, &rec.SiteCode, &rec.SiteName,
			&rec.StockIn, &rec.StockOut, &rec.Remarks, &rec.CreatedAt,
		)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan movement row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating movement rows", err)
	}

	return records, total, nil
}

// SumMovementsBefore nets every movement for the item, optionally narrowed to
// one site, dated strictly before the cutoff.
func (r *PgxMovementRepository) SumMovementsBefore(ctx context.Context, itemID int64, siteID *int64, before time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(mv.stock_in - mv.stock_out), 0)
		FROM stock_movements mv
		JOIN inventory_vouchers v ON v.id = mv.voucher_id
		WHERE mv.item_id = $1 AND v.voucher_date < $2
	`
	args := []interface{}{itemID, before}
	if siteID != nil {
		args = append(args, *siteID)
		query += ` AND mv.site_id = $3`
	}
	query += `;`

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum movements before cutoff", err)
	}
	return sum, nil
}

// SumSkippedMovements nets the first n rows of the filtered history using the
// same filter and ordering as ListMovements.
func (r *PgxMovementRepository) SumSkippedMovements(ctx context.Context, filter domain.MovementFilter, n int) (decimal.Decimal, error) {
	where, args := movementWhere(filter)
	args = append(args, n)

	query := `
		SELECT COALESCE(SUM(skipped.stock_in - skipped.stock_out), 0)
		FROM (
			SELECT mv.stock_in, mv.stock_out` + movementJoins + where + movementOrder + `
			LIMIT $` + strconv.Itoa(len(args)) + `
		) AS skipped;
	`

	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum skipped movement rows", err)
	}
	return sum, nil
}
