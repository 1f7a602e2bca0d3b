package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockBalance is the net signed balance of one (item, site) pair with its
// display fields resolved.
type StockBalance struct {
	ItemID    int64           `json:"itemID"`
	ItemCode  string          `json:"itemCode"`
	ItemName  string          `json:"itemName"`
	BrandName *string         `json:"brandName,omitempty"`
	ModelName *string         `json:"modelName,omitempty"`
	SiteID    int64           `json:"siteID"`
	SiteCode  string          `json:"siteCode"`
	SiteName  string          `json:"siteName"`
	SiteType  string          `json:"siteType"`
	Balance   decimal.Decimal `json:"balance"`
}

// BalanceFilter narrows the global balance listing.
type BalanceFilter struct {
	ItemName string // substring match on item name, empty means no filter
	SiteID   *int64
}

// MovementFilter narrows the movement history. From/To bound the voucher date,
// inclusive.
type MovementFilter struct {
	ItemID *int64
	SiteID *int64
	From   *time.Time
	To     *time.Time
}

// MovementRecord is one ledger row: a movement joined with its voucher, item
// and site display fields. RunningBalance is annotated by the ledger replayer
// and is only meaningful when the history was filtered to a single item.
type MovementRecord struct {
	ID                int64           `json:"id"`
	VoucherID         int64           `json:"voucherID"`
	TransactionNumber string          `json:"transactionNumber"`
	VoucherDate       time.Time       `json:"voucherDate"`
	VoucherTypeName   string          `json:"voucherTypeName"`
	ItemID            int64           `json:"itemID"`
	ItemCode          string          `json:"itemCode"`
	ItemName          string          `json:"itemName"`
	BrandName         *string         `json:"brandName,omitempty"`
	ModelName         *string         `json:"modelName,omitempty"`
	SiteID            int64           `json:"siteID"`
	SiteCode          string          `json:"siteCode"`
	SiteName          string          `json:"siteName"`
	StockIn           decimal.Decimal `json:"stockIn"`
	StockOut          decimal.Decimal `json:"stockOut"`
	RunningBalance    decimal.Decimal `json:"runningBalance"`
	Remarks           string          `json:"remarks,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// DashboardStats summarizes the store for the landing view.
type DashboardStats struct {
	ActiveItemsCount        int64 `json:"activeItemsCount"`
	ActiveSitesCount        int64 `json:"activeSitesCount"`
	RecentTransactionsCount int64 `json:"recentTransactionsCount"`
}
