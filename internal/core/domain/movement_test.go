package domain_test

import (
	"testing"

	"github.com/munna98/stock-star/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestDeriveMovements_InwardTypes(t *testing.T) {
	qty := decimal.NewFromInt(10)

	for _, typeName := range []string{domain.TypePurchaseInward, domain.TypeOpeningStock} {
		t.Run(typeName, func(t *testing.T) {
			drafts, err := domain.DeriveMovements(typeName, nil, int64Ptr(5), 1, qty)
			require.NoError(t, err)
			require.Len(t, drafts, 1)
			assert.Equal(t, int64(5), drafts[0].SiteID)
			assert.True(t, drafts[0].StockIn.Equal(qty))
			assert.True(t, drafts[0].StockOut.IsZero())
		})
	}
}

func TestDeriveMovements_InwardTypesIgnoreSource(t *testing.T) {
	// Source is irrelevant for inward types even when present.
	drafts, err := domain.DeriveMovements(domain.TypePurchaseInward, int64Ptr(3), int64Ptr(5), 1, decimal.NewFromInt(2))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, int64(5), drafts[0].SiteID)
}

func TestDeriveMovements_TransferTypes(t *testing.T) {
	qty := decimal.NewFromFloat(4.5)

	for _, typeName := range []string{domain.TypeGodownToSite, domain.TypeSiteToGodown, domain.TypeSiteToSite} {
		t.Run(typeName, func(t *testing.T) {
			drafts, err := domain.DeriveMovements(typeName, int64Ptr(1), int64Ptr(2), 7, qty)
			require.NoError(t, err)
			require.Len(t, drafts, 2)

			out, in := drafts[0], drafts[1]
			assert.Equal(t, int64(1), out.SiteID)
			assert.True(t, out.StockOut.Equal(qty))
			assert.True(t, out.StockIn.IsZero())
			assert.Equal(t, int64(2), in.SiteID)
			assert.True(t, in.StockIn.Equal(qty))
			assert.True(t, in.StockOut.IsZero())

			// Conservation: what leaves the source arrives at the destination.
			assert.True(t, out.StockOut.Equal(in.StockIn))
		})
	}
}

func TestDeriveMovements_TransferWithMissingEndpoint(t *testing.T) {
	qty := decimal.NewFromInt(3)

	drafts, err := domain.DeriveMovements(domain.TypeSiteToSite, int64Ptr(1), nil, 7, qty)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.True(t, drafts[0].StockOut.Equal(qty))

	drafts, err = domain.DeriveMovements(domain.TypeSiteToSite, nil, int64Ptr(2), 7, qty)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.True(t, drafts[0].StockIn.Equal(qty))
}

func TestDeriveMovements_OutwardTypes(t *testing.T) {
	qty := decimal.NewFromInt(6)

	for _, typeName := range []string{domain.TypeMaterialUsage, domain.TypeDamagedStock} {
		t.Run(typeName, func(t *testing.T) {
			drafts, err := domain.DeriveMovements(typeName, int64Ptr(4), nil, 1, qty)
			require.NoError(t, err)
			require.Len(t, drafts, 1)
			assert.Equal(t, int64(4), drafts[0].SiteID)
			assert.True(t, drafts[0].StockOut.Equal(qty))
			assert.True(t, drafts[0].StockIn.IsZero())
		})
	}
}

func TestDeriveMovements_StockAdjustment(t *testing.T) {
	qty := decimal.NewFromInt(3)

	t.Run("destination takes priority", func(t *testing.T) {
		drafts, err := domain.DeriveMovements(domain.TypeStockAdjustment, int64Ptr(1), int64Ptr(2), 9, qty)
		require.NoError(t, err)
		require.Len(t, drafts, 1)
		assert.Equal(t, int64(2), drafts[0].SiteID)
		assert.True(t, drafts[0].StockIn.Equal(qty))
	})

	t.Run("source only is an out adjustment", func(t *testing.T) {
		drafts, err := domain.DeriveMovements(domain.TypeStockAdjustment, int64Ptr(1), nil, 9, qty)
		require.NoError(t, err)
		require.Len(t, drafts, 1)
		assert.Equal(t, int64(1), drafts[0].SiteID)
		assert.True(t, drafts[0].StockOut.Equal(qty))
	})

	t.Run("no endpoints means no movement", func(t *testing.T) {
		drafts, err := domain.DeriveMovements(domain.TypeStockAdjustment, nil, nil, 9, qty)
		require.NoError(t, err)
		assert.Empty(t, drafts)
	})
}

func TestDeriveMovements_UnknownTypeIsSilentNoOp(t *testing.T) {
	drafts, err := domain.DeriveMovements("Custom Type", int64Ptr(1), int64Ptr(2), 1, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.Empty(t, drafts)
}

func TestDeriveMovements_NonPositiveQuantity(t *testing.T) {
	_, err := domain.DeriveMovements(domain.TypePurchaseInward, nil, int64Ptr(1), 1, decimal.Zero)
	assert.Error(t, err)

	_, err = domain.DeriveMovements(domain.TypePurchaseInward, nil, int64Ptr(1), 1, decimal.NewFromInt(-2))
	assert.Error(t, err)
}

// Purchase 10 into S1, transfer 4 of it to S2, then remove the purchase:
// S1 folds to -4 while S2 keeps its 4. Deleting a voucher only removes its
// own movements; dependent balances are not recomputed.
func TestDeriveMovements_DeletedInwardLeavesNegativeBalance(t *testing.T) {
	s1 := int64Ptr(1)
	s2 := int64Ptr(2)

	purchase, err := domain.DeriveMovements(domain.TypePurchaseInward, nil, s1, 1, decimal.NewFromInt(10))
	require.NoError(t, err)
	transfer, err := domain.DeriveMovements(domain.TypeSiteToSite, s1, s2, 1, decimal.NewFromInt(4))
	require.NoError(t, err)

	net := func(siteID int64, sets ...[]domain.MovementDraft) decimal.Decimal {
		sum := decimal.Zero
		for _, drafts := range sets {
			for _, d := range drafts {
				if d.SiteID == siteID {
					sum = sum.Add(d.StockIn).Sub(d.StockOut)
				}
			}
		}
		return sum
	}

	assert.True(t, net(*s1, purchase, transfer).Equal(decimal.NewFromInt(6)))
	assert.True(t, net(*s2, purchase, transfer).Equal(decimal.NewFromInt(4)))

	// Without the purchase only the transfer's movements remain.
	assert.True(t, net(*s1, transfer).Equal(decimal.NewFromInt(-4)))
	assert.True(t, net(*s2, transfer).Equal(decimal.NewFromInt(4)))
}

func TestIsTransferType(t *testing.T) {
	assert.True(t, domain.IsTransferType(domain.TypeGodownToSite))
	assert.True(t, domain.IsTransferType(domain.TypeSiteToGodown))
	assert.True(t, domain.IsTransferType(domain.TypeSiteToSite))
	assert.False(t, domain.IsTransferType(domain.TypePurchaseInward))
	assert.False(t, domain.IsTransferType("Custom Type"))
}
