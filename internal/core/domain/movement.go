package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Movement is a derived, signed stock quantity at one site for one item,
// attributable to exactly one voucher line. At most one of StockIn/StockOut is
// non-zero per record.
type Movement struct {
	ID            int64           `json:"id"`
	VoucherID     int64           `json:"voucherID"`
	VoucherLineID int64           `json:"voucherLineID"`
	ItemID        int64           `json:"itemID"`
	SiteID        int64           `json:"siteID"`
	StockIn       decimal.Decimal `json:"stockIn"`
	StockOut      decimal.Decimal `json:"stockOut"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// MovementDraft is a movement before persistence assigns identity and
// ownership. The deriver emits drafts; the voucher repository ties them to
// their line on insert.
type MovementDraft struct {
	SiteID   int64
	StockIn  decimal.Decimal
	StockOut decimal.Decimal
}

// DeriveMovements maps one voucher line onto the signed stock movements it
// implies, based on the transaction-type name and the voucher's endpoints.
//
// The policy, by type name:
//   - Purchase Inward, Opening Stock: stock in at the destination.
//   - Godown → Site, Site → Godown, Site → Site: stock out at the source and
//     stock in at the destination.
//   - Material Usage, Damaged Stock: stock out at the source.
//   - Stock Adjustment: stock in at the destination when set, otherwise stock
//     out at the source when set.
//
// A movement is only emitted for endpoints that are present. An unrecognized
// type name yields no movements and no error; the voucher still posts with an
// empty movement set.
func DeriveMovements(typeName string, sourceSiteID, destinationSiteID *int64, itemID int64, quantity decimal.Decimal) ([]MovementDraft, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("quantity must be positive for item %d, got %s", itemID, quantity)
	}

	var drafts []MovementDraft
	stockIn := func(siteID int64) {
		drafts = append(drafts, MovementDraft{SiteID: siteID, StockIn: quantity})
	}
	stockOut := func(siteID int64) {
		drafts = append(drafts, MovementDraft{SiteID: siteID, StockOut: quantity})
	}

	switch typeName {
	case TypePurchaseInward, TypeOpeningStock:
		if destinationSiteID != nil {
			stockIn(*destinationSiteID)
		}
	case TypeGodownToSite, TypeSiteToGodown, TypeSiteToSite:
		if sourceSiteID != nil {
			stockOut(*sourceSiteID)
		}
		if destinationSiteID != nil {
			stockIn(*destinationSiteID)
		}
	case TypeMaterialUsage, TypeDamagedStock:
		if sourceSiteID != nil {
			stockOut(*sourceSiteID)
		}
	case TypeStockAdjustment:
		// Destination takes priority: an in-adjustment when set, otherwise an
		// out-adjustment at the source.
		if destinationSiteID != nil {
			stockIn(*destinationSiteID)
		} else if sourceSiteID != nil {
			stockOut(*sourceSiteID)
		}
	default:
		// Unknown type: no movement applies.
	}

	return drafts, nil
}
