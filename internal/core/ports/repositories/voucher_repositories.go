package repositories

import (
	"context"
	"time"

	"github.com/munna98/stock-star/internal/core/domain"
)

// VoucherRepository defines persistence for vouchers, their lines and the
// movements derived from them. Create/Update/Delete each run as one DB
// transaction: a failure at any step leaves no partial writes behind.
type VoucherRepository interface {
	// CreateVoucher assigns the next transaction number, inserts the header,
	// the lines and their derived movements, and returns the new voucher id
	// together with the assigned number.
	CreateVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.PostedLine) (int64, string, error)

	// UpdateVoucher overwrites the header in place (the transaction number is
	// not touched), deletes all movements and lines owned by the voucher and
	// reinserts the given lines with their movements.
	UpdateVoucher(ctx context.Context, voucher domain.Voucher, lines []domain.PostedLine) error

	// DeleteVoucher removes movements, then lines, then the header.
	DeleteVoucher(ctx context.Context, voucherID int64) error

	FindVoucherByID(ctx context.Context, voucherID int64) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, limit, offset int) ([]domain.VoucherDisplay, int64, error)
	CountVouchersCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// TransactionTypeRepository defines read access to the seeded type vocabulary.
type TransactionTypeRepository interface {
	FindTypeByID(ctx context.Context, typeID int64) (*domain.TransactionType, error)
	ListTypes(ctx context.Context) ([]domain.TransactionType, error)
}
