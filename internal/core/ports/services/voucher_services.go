package services

import (
	"context"

	"github.com/munna98/stock-star/internal/core/domain"
	"github.com/munna98/stock-star/internal/dto"
	"github.com/munna98/stock-star/internal/utils/pagination"
)

// VoucherSvcFacade exposes voucher posting and retrieval. Post/Update/Delete
// are each atomic: the header, its lines and its derived movements commit or
// roll back as one unit.
type VoucherSvcFacade interface {
	PostVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*domain.Voucher, error)
	UpdateVoucher(ctx context.Context, voucherID int64, req dto.UpdateVoucherRequest) error
	DeleteVoucher(ctx context.Context, voucherID int64) error
	GetVoucher(ctx context.Context, voucherID int64) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, params pagination.Params) ([]domain.VoucherDisplay, int64, error)
	ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error)
}
