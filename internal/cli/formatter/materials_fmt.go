package formatter

import (
	"fmt"
	"strings"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/materials"
)

// FormatMaterialSummary renders the aggregated material requirements.
func FormatMaterialSummary(summary []domain.MaterialSummary) string {
	if len(summary) == 0 {
		return Dim("No materials required.") + "\n"
	}
	headers := []string{"MATERIAL", "QTY", "UNIT", "UNIT COST", "TOTAL", "TILES"}
	rows := make([][]string, 0, len(summary))
	for _, s := range summary {
		rows = append(rows, []string{
			Bold(s.Name),
			FormatQuantity(s.TotalQuantity),
			s.Unit,
			fmt.Sprintf("%.2f", s.UnitCost),
			fmt.Sprintf("%.2f", s.TotalCost),
			fmt.Sprintf("%d", len(s.Tiles)),
		})
	}
	table := Table{Headers: headers, Rows: rows, RightAlign: map[int]bool{1: true, 3: true, 4: true, 5: true}}
	return RenderBox("Materials", table.Render())
}

// FormatCostEstimate renders a project quote with its commercial breakdown.
func FormatCostEstimate(est *materials.CostEstimate, opts materials.CostOptions) string {
	var b strings.Builder

	line := func(label, amount string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-18s", label)), fmt.Sprintf("%14s", amount)))
	}
	line("materials", FormatMoney(est.MaterialsTotal))
	line("labor", FormatMoney(est.LaborTotal))
	line("subtotal", FormatMoney(est.Subtotal))
	line("margin "+FormatPercent(opts.MarginPercent), FormatMoney(est.Margin))
	if !opts.DiscountPercent.IsZero() {
		line("discount "+FormatPercent(opts.DiscountPercent), "-"+FormatMoney(est.Discount))
	}
	line("VAT "+FormatPercent(opts.VATPercent), FormatMoney(est.VAT))
	b.WriteString(StyleDim.Render(strings.Repeat("─", 34)) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(fmt.Sprintf("%-18s", "TOTAL")), Bold(fmt.Sprintf("%14s", FormatMoney(est.Total)))))

	return RenderBox("Cost estimate", b.String())
}

// FormatStockList renders warehouse stock.
func FormatStockList(stock []*domain.StockMaterial) string {
	if len(stock) == 0 {
		return Dim("Warehouse is empty.") + "\n"
	}
	headers := []string{"ID", "NAME", "STOCK", "UNIT", "PRICE"}
	rows := make([][]string, 0, len(stock))
	for _, m := range stock {
		stockStr := FormatQuantity(m.Stock)
		if m.Stock == 0 {
			stockStr = StyleRed.Render(stockStr)
		}
		rows = append(rows, []string{m.ID, Bold(m.Name), stockStr, m.Unit, fmt.Sprintf("%.2f", m.Price)})
	}
	table := Table{Headers: headers, Rows: rows, RightAlign: map[int]bool{2: true, 4: true}}
	return RenderBox("Stock", table.Render())
}

// FormatPurchaseRequests renders purchase requests, most urgent first as given.
func FormatPurchaseRequests(requests []*domain.PurchaseRequest) string {
	if len(requests) == 0 {
		return Dim("No purchase requests.") + "\n"
	}
	headers := []string{"MATERIAL", "QTY", "UNIT", "PRIORITY", "STATUS", "TILE", "REQUESTED"}
	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, []string{
			Bold(r.MaterialName),
			FormatQuantity(r.Quantity),
			r.Unit,
			requestPriority(r.Priority),
			string(r.Status),
			TruncID(r.TileID),
			r.RequestedAt.Format(DateLayout),
		})
	}
	table := Table{Headers: headers, Rows: rows, RightAlign: map[int]bool{1: true}}
	return RenderBox("Purchase requests", table.Render())
}

// FormatReservations renders stock reservations.
func FormatReservations(reservations []*domain.StockReservation) string {
	if len(reservations) == 0 {
		return Dim("No reservations.") + "\n"
	}
	headers := []string{"MATERIAL", "QTY", "UNIT", "TILE", "STATUS", "RESERVED"}
	rows := make([][]string, 0, len(reservations))
	for _, r := range reservations {
		rows = append(rows, []string{
			Bold(r.MaterialName),
			FormatQuantity(r.Quantity),
			r.Unit,
			TruncID(r.TileID),
			string(r.Status),
			r.ReservedAt.Format(DateLayout),
		})
	}
	table := Table{Headers: headers, Rows: rows, RightAlign: map[int]bool{1: true}}
	return RenderBox("Reservations", table.Render())
}

func requestPriority(p domain.RequestPriority) string {
	switch p {
	case domain.RequestHigh:
		return StyleRed.Render(string(p))
	case domain.RequestMedium:
		return StyleYellow.Render(string(p))
	default:
		return StyleGreen.Render(string(p))
	}
}
