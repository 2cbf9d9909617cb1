package materials

import (
	"math"
	"testing"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertAmount(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "%s: want %s, got %s", field, want, got.String())
}

func TestEstimateCosts_DefaultOptions(t *testing.T) {
	tiles := mdfTiles()
	tiles[0].LaborCost = 100
	tiles[0].Name = "Panel"

	est := EstimateCosts(tiles, DefaultCostOptions())

	assertAmount(t, "250", est.MaterialsTotal, "materials")
	assertAmount(t, "100", est.LaborTotal, "labor")
	assertAmount(t, "350", est.Subtotal, "subtotal")
	assertAmount(t, "52.5", est.Margin, "margin")
	assertAmount(t, "0", est.Discount, "discount")
	assertAmount(t, "92.575", est.VAT, "vat")
	assertAmount(t, "495.075", est.Total, "total")
	assert.Equal(t, "495.08", est.Total.StringFixed(2))

	require.Len(t, est.Materials, 3)
	require.Len(t, est.Labor, 1, "tiles without labor cost are left out of the breakdown")
	assert.Equal(t, "Panel", est.Labor[0].TileName)
}

func TestEstimateCosts_Discount(t *testing.T) {
	tiles := []domain.Tile{{ID: "t-1", LaborCost: 1000}}
	opts := CostOptions{
		MarginPercent:   decimal.NewFromInt(10),
		DiscountPercent: decimal.NewFromInt(5),
		VATPercent:      decimal.NewFromInt(23),
	}

	est := EstimateCosts(tiles, opts)

	assertAmount(t, "100", est.Margin, "margin")
	assertAmount(t, "55", est.Discount, "discount")
	assertAmount(t, "240.35", est.VAT, "vat")
	assertAmount(t, "1285.35", est.Total, "total")
}

func TestEstimateCosts_Empty(t *testing.T) {
	est := EstimateCosts(nil, DefaultCostOptions())
	assert.True(t, est.Total.IsZero())
	assert.Empty(t, est.Materials)
}

func TestEstimateCosts_LeavesOutNonFiniteValues(t *testing.T) {
	inf := math.Inf(1)
	tiles := mdfTiles()
	tiles[0].LaborCost = math.NaN()
	tiles[0].BOM = append(tiles[0].BOM,
		domain.BOMLine{Name: "MDF", Unit: "m2", Quantity: math.Inf(1)},
		domain.BOMLine{Name: "Klej", Unit: "l", Quantity: 1, UnitCost: &inf},
	)

	require.NotPanics(t, func() {
		est := EstimateCosts(tiles, DefaultCostOptions())
		assertAmount(t, "250", est.MaterialsTotal, "materials")
		assertAmount(t, "0", est.LaborTotal, "labor")
		assert.Len(t, est.Materials, 3)
	})
}
