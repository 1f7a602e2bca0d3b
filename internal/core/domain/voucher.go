package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type names seeded into the store. Movement derivation is keyed
// on these names, so they are effectively append-only vocabulary.
const (
	TypePurchaseInward  = "Purchase Inward"
	TypeOpeningStock    = "Opening Stock"
	TypeGodownToSite    = "Godown → Site"
	TypeSiteToGodown    = "Site → Godown"
	TypeSiteToSite      = "Site → Site"
	TypeMaterialUsage   = "Material Usage"
	TypeStockAdjustment = "Stock Adjustment"
	TypeDamagedStock    = "Damaged Stock"
)

// SeededTransactionTypes lists every known type name in seed order.
var SeededTransactionTypes = []string{
	TypePurchaseInward,
	TypeOpeningStock,
	TypeGodownToSite,
	TypeSiteToGodown,
	TypeSiteToSite,
	TypeMaterialUsage,
	TypeStockAdjustment,
	TypeDamagedStock,
}

// IsTransferType reports whether the type moves stock between two sites.
func IsTransferType(typeName string) bool {
	switch typeName {
	case TypeGodownToSite, TypeSiteToGodown, TypeSiteToSite:
		return true
	}
	return false
}

// TransactionType is a row of the seeded type vocabulary.
type TransactionType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Voucher is a single recorded inventory transaction event. Its movements are
// derived from its type, its endpoints and its line quantities; they are never
// authored directly.
type Voucher struct {
	ID                int64         `json:"id"`
	TransactionNumber string        `json:"transactionNumber"`
	VoucherDate       time.Time     `json:"voucherDate"`
	SourceSiteID      *int64        `json:"sourceSiteID,omitempty"`
	DestinationSiteID *int64        `json:"destinationSiteID,omitempty"`
	VoucherTypeID     int64         `json:"voucherTypeID"`
	Remarks           string        `json:"remarks,omitempty"`
	CreatedBy         *int64        `json:"createdBy,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         *time.Time    `json:"updatedAt,omitempty"`
	Lines             []VoucherLine `json:"lines"`
}

// VoucherLine is one item-quantity entry of a voucher.
type VoucherLine struct {
	ID        int64           `json:"id"`
	VoucherID int64           `json:"voucherID"`
	ItemID    int64           `json:"itemID"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// PostedLine pairs a voucher line with the movements derived for it. It is
// the unit the voucher repository persists atomically.
type PostedLine struct {
	Line      VoucherLine
	Movements []MovementDraft
}

// VoucherDisplay is the list-view projection of a voucher with site and type
// names resolved.
type VoucherDisplay struct {
	ID                  int64     `json:"id"`
	TransactionNumber   string    `json:"transactionNumber"`
	VoucherDate         time.Time `json:"voucherDate"`
	SourceSiteID        *int64    `json:"sourceSiteID,omitempty"`
	SourceSiteName      *string   `json:"sourceSiteName,omitempty"`
	DestinationSiteID   *int64    `json:"destinationSiteID,omitempty"`
	DestinationSiteName *string   `json:"destinationSiteName,omitempty"`
	VoucherTypeID       int64     `json:"voucherTypeID"`
	VoucherTypeName     string    `json:"voucherTypeName"`
	Remarks             string    `json:"remarks,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}
