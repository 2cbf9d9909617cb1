package materials

import (
	"github.com/shopspring/decimal"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// CostOptions are the commercial percentages applied on top of the
// material and labor subtotal.
type CostOptions struct {
	MarginPercent   decimal.Decimal
	DiscountPercent decimal.Decimal
	VATPercent      decimal.Decimal
}

// DefaultCostOptions returns a 15% margin, no discount and 23% VAT.
func DefaultCostOptions() CostOptions {
	return CostOptions{
		MarginPercent: decimal.NewFromInt(15),
		VATPercent:    decimal.NewFromInt(23),
	}
}

type MaterialCostLine struct {
	TileID   string
	Name     string
	Quantity decimal.Decimal
	Unit     string
	Cost     decimal.Decimal
}

type LaborCostLine struct {
	TileID   string
	TileName string
	Cost     decimal.Decimal
}

// CostEstimate is a project quote. Amounts are exact; callers round for display.
type CostEstimate struct {
	Materials      []MaterialCostLine
	MaterialsTotal decimal.Decimal
	Labor          []LaborCostLine
	LaborTotal     decimal.Decimal

	Subtotal decimal.Decimal
	Margin   decimal.Decimal
	Discount decimal.Decimal
	VAT      decimal.Decimal
	Total    decimal.Decimal
}

// EstimateCosts prices the BOM and labor of tiles. Lines or labor costs
// that are not finite numbers are left out.
//
//	subtotal = materials + labor
//	margin   = subtotal × margin%
//	discount = (subtotal + margin) × discount%
//	vat      = (subtotal + margin - discount) × vat%
//	total    = subtotal + margin - discount + vat
func EstimateCosts(tiles []domain.Tile, opts CostOptions) CostEstimate {
	est := CostEstimate{
		MaterialsTotal: decimal.Zero,
		LaborTotal:     decimal.Zero,
	}

	for _, t := range tiles {
		for _, line := range t.BOM {
			if !domain.IsFinite(line.Quantity) || (line.UnitCost != nil && !domain.IsFinite(*line.UnitCost)) {
				continue
			}
			qty := decimal.NewFromFloat(line.Quantity)
			cost := decimal.Zero
			if line.UnitCost != nil {
				cost = qty.Mul(decimal.NewFromFloat(*line.UnitCost))
			}
			est.MaterialsTotal = est.MaterialsTotal.Add(cost)
			est.Materials = append(est.Materials, MaterialCostLine{
				TileID:   t.ID,
				Name:     line.Name,
				Quantity: qty,
				Unit:     line.Unit,
				Cost:     cost,
			})
		}

		if !domain.IsFinite(t.LaborCost) || t.LaborCost <= 0 {
			continue
		}
		labor := decimal.NewFromFloat(t.LaborCost)
		est.LaborTotal = est.LaborTotal.Add(labor)
		est.Labor = append(est.Labor, LaborCostLine{TileID: t.ID, TileName: t.Name, Cost: labor})
	}

	est.Subtotal = est.MaterialsTotal.Add(est.LaborTotal)
	est.Margin = percentOf(est.Subtotal, opts.MarginPercent)
	est.Discount = percentOf(est.Subtotal.Add(est.Margin), opts.DiscountPercent)
	beforeVAT := est.Subtotal.Add(est.Margin).Sub(est.Discount)
	est.VAT = percentOf(beforeVAT, opts.VATPercent)
	est.Total = beforeVAT.Add(est.VAT)
	return est
}

func percentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred)
}
