package dto

import "github.com/shopspring/decimal"

// VoucherLineRequest is one item-quantity entry of a voucher request.
type VoucherLineRequest struct {
	ItemID   int64           `json:"itemID" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// CreateVoucherRequest is the payload for posting a new voucher. The
// transaction number is assigned by the service, never by the caller, and
// blank remarks are auto-generated from the transaction type.
type CreateVoucherRequest struct {
	VoucherDate       string               `json:"voucherDate" binding:"required"`
	SourceSiteID      *int64               `json:"sourceSiteID"`
	DestinationSiteID *int64               `json:"destinationSiteID"`
	VoucherTypeID     int64                `json:"voucherTypeID" binding:"required"`
	Remarks           string               `json:"remarks"`
	CreatedBy         *int64               `json:"createdBy"`
	Lines             []VoucherLineRequest `json:"lines" binding:"dive"`
}

// UpdateVoucherRequest replaces a voucher's content in full. The existing
// transaction number is preserved; lines and movements are regenerated.
type UpdateVoucherRequest struct {
	VoucherDate       string               `json:"voucherDate" binding:"required"`
	SourceSiteID      *int64               `json:"sourceSiteID"`
	DestinationSiteID *int64               `json:"destinationSiteID"`
	VoucherTypeID     int64                `json:"voucherTypeID" binding:"required"`
	Remarks           string               `json:"remarks"`
	Lines             []VoucherLineRequest `json:"lines" binding:"dive"`
}
