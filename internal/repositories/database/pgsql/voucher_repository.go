package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/munna98/stock-star/internal/apperrors"
	"github.com/munna98/stock-star/internal/core/domain"
	portsrepo "github.com/munna98/stock-star/internal/core/ports/repositories"
)

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher and movement data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepository {
	return &PgxVoucherRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.VoucherRepository = (*PgxVoucherRepository)(nil)

// nextTransactionNumber assigns numbers as text holding a growing integer,
// starting at "1". Must run inside the insert transaction so concurrent posts
// cannot claim the same number.
func nextTransactionNumber(ctx context.Context, tx pgx.Tx) (string, error) {
	var max int64
	err := tx.QueryRow(ctx, `
		SELECT COALESCE(MAX(CAST(transaction_number AS BIGINT)), 0)
		FROM inventory_vouchers;
	`).Scan(&max)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(max+1, 10), nil
}

// insertLines writes the voucher lines one by one to capture their ids, then
// batches the movement inserts. Every movement carries the id of the line it
// was derived from, so a voucher with two lines for the same item keeps their
// movements attributable.
func insertLines(ctx context.Context, tx pgx.Tx, voucherID int64, lines []domain.PostedLine) error {
	lineQuery := `
		INSERT INTO inventory_voucher_items (voucher_id, item_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	movementQuery := `
		INSERT INTO stock_movements (voucher_id, voucher_item_id, item_id, site_id, stock_in, stock_out)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, pl := range lines {
		var lineID int64
		if err := tx.QueryRow(ctx, lineQuery, voucherID, pl.Line.ItemID, pl.Line.Quantity).Scan(&lineID); err != nil {
			return err
		}
		for _, mv := range pl.Movements {
			batch.Queue(movementQuery, voucherID, lineID, pl.Line.ItemID, mv.SiteID, mv.StockIn, mv.StockOut)
		}
	}
	if batch.Len() == 0 {
		return nil
	}
	br := tx.SendBatch(ctx, batch)
	return br.Close()
}

// CreateVoucher assigns the next transaction number and inserts the header,
// lines and movements within a DB transaction.
func (r *PgxVoucherRepository) CreateVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.PostedLine) (int64, string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, "", err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	transactionNumber, err := nextTransactionNumber(ctx, tx)
	if err != nil {
		return 0, "", apperrors.NewAppError(500, "failed to assign transaction number", err)
	}

	var voucherID int64
	headerQuery := `
		INSERT INTO inventory_vouchers (
			transaction_number, voucher_date, source_site_id, destination_site_id,
			voucher_type_id, remarks, created_by, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, headerQuery,
		transactionNumber,
		voucher.VoucherDate,
		voucher.SourceSiteID,
		voucher.DestinationSiteID,
		voucher.VoucherTypeID,
		voucher.Remarks,
		voucher.CreatedBy,
		voucher.CreatedAt,
	).Scan(&voucherID)
	if err != nil {
		return 0, "", apperrors.NewAppError(500, "failed to insert voucher", err)
	}

	if err := insertLines(ctx, tx, voucherID, lines); err != nil {
		return 0, "", apperrors.NewAppError(500, "failed to insert voucher lines", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, "", err
	}
	return voucherID, transactionNumber, nil
}

// UpdateVoucher overwrites the header in place, then deletes and reinserts
// the lines and movements. The transaction number column is never touched.
func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.PostedLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	headerQuery := `
		UPDATE inventory_vouchers
		SET voucher_date = $2,
		    source_site_id = $3,
		    destination_site_id = $4,
		    voucher_type_id = $5,
		    remarks = $6,
		    updated_at = $7
		WHERE id = $1;
	`
	cmdTag, err := tx.Exec(ctx, headerQuery,
		voucher.ID,
		voucher.VoucherDate,
		voucher.SourceSiteID,
		voucher.DestinationSiteID,
		voucher.VoucherTypeID,
		voucher.Remarks,
		voucher.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update voucher "+strconv.FormatInt(voucher.ID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + strconv.FormatInt(voucher.ID, 10) + " not found for update")
	}

	// Movements first, they reference nothing but are owned by the voucher.
	if _, err := tx.Exec(ctx, `DELETE FROM stock_movements WHERE voucher_id = $1;`, voucher.ID); err != nil {
		return apperrors.NewAppError(500, "failed to clear movements for voucher", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM inventory_voucher_items WHERE voucher_id = $1;`, voucher.ID); err != nil {
		return apperrors.NewAppError(500, "failed to clear lines for voucher", err)
	}

	if err := insertLines(ctx, tx, voucher.ID, lines); err != nil {
		return apperrors.NewAppError(500, "failed to reinsert voucher lines", err)
	}

	return r.Commit(ctx, tx)
}

// DeleteVoucher removes movements, then lines, then the header.
func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, voucherID int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM stock_movements WHERE voucher_id = $1;`, voucherID); err != nil {
		return apperrors.NewAppError(500, "failed to delete movements for voucher", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM inventory_voucher_items WHERE voucher_id = $1;`, voucherID); err != nil {
		return apperrors.NewAppError(500, "failed to delete lines for voucher", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM inventory_vouchers WHERE id = $1;`, voucherID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete voucher "+strconv.FormatInt(voucherID, 10), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("voucher " + strconv.FormatInt(voucherID, 10) + " not found")
	}

	return r.Commit(ctx, tx)
}

// FindVoucherByID retrieves a voucher header with its lines.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID int64) (*domain.Voucher, error) {
	headerQuery := `
		SELECT id, transaction_number, voucher_date, source_site_id, destination_site_id,
		       voucher_type_id, remarks, created_by, created_at, updated_at
		FROM inventory_vouchers
		WHERE id = $1;
	`
	var voucher domain.Voucher
	err := r.Pool.QueryRow(ctx, headerQuery, voucherID).Scan(
		&voucher.ID,
		&voucher.TransactionNumber,
		&voucher.VoucherDate,
		&voucher.SourceSiteID,
		&voucher.DestinationSiteID,
		&voucher.VoucherTypeID,
		&voucher.Remarks,
		&voucher.CreatedBy,
		&voucher.CreatedAt,
		&voucher.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find voucher by ID "+strconv.FormatInt(voucherID, 10), err)
	}

	linesQuery := `
		SELECT id, voucher_id, item_id, quantity
		FROM inventory_voucher_items
		WHERE voucher_id = $1
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, linesQuery, voucherID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for voucher", err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.VoucherLine
		if err := rows.Scan(&line.ID, &line.VoucherID, &line.ItemID, &line.Quantity); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan voucher line row", err)
		}
		voucher.Lines = append(voucher.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating voucher line rows", err)
	}

	return &voucher, nil
}

// ListVouchers retrieves one page of the voucher listing, newest first, with
// site and type names resolved, plus the total voucher count.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, limit, offset int) ([]domain.VoucherDisplay, int64, error) {
	query := `
		SELECT v.id, v.transaction_number, v.voucher_date,
		       v.source_site_id, src.name, v.destination_site_id, dst.name,
		       v.voucher_type_id, t.name, v.remarks, v.created_at
		FROM inventory_vouchers v
		JOIN inventory_transaction_types t ON t.id = v.voucher_type_id
		LEFT JOIN sites src ON src.id = v.source_site_id
		LEFT JOIN sites dst ON dst.id = v.destination_site_id
		ORDER BY v.created_at DESC, v.id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to query vouchers", err)
	}
	defer rows.Close()

	vouchers := []domain.VoucherDisplay{}
	for rows.Next() {
		var v domain.VoucherDisplay
		err := rows.Scan(
			&v.ID,
			&v.TransactionNumber,
			&v.VoucherDate,
			&v.SourceSiteID,
			&v.SourceSiteName,
			&v.DestinationSiteID,
			&v.DestinationSiteName,
			&v.VoucherTypeID,
			&v.VoucherTypeName,
			&v.Remarks,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan voucher row", err)
		}
		vouchers = append(vouchers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "error iterating voucher rows", err)
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_vouchers;`).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count vouchers", err)
	}

	return vouchers, total, nil
}

// CountVouchersCreatedSince counts vouchers whose creation time is at or
// after the given cutoff.
func (r *PgxVoucherRepository) CountVouchersCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM inventory_vouchers WHERE created_at >= $1;`, since).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count recent vouchers", err)
	}
	return count, nil
}
