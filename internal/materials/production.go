package materials

import (
	"fmt"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// SystemActor is recorded as the author of automatic reservations and requests.
const SystemActor = "System"

// ProductionPlan lists the stock movements needed before a tile can be
// cut. IDs and timestamps are assigned when the plan is persisted.
type ProductionPlan struct {
	Reservations []domain.StockReservation
	Requests     []domain.PurchaseRequest
	// StockLevels holds the remaining stock of every material the plan reserves from.
	StockLevels map[string]float64
}

// Empty reports whether the plan has nothing to persist.
func (p ProductionPlan) Empty() bool {
	return len(p.Reservations) == 0 && len(p.Requests) == 0
}

// PlanProduction checks each stock-linked BOM line of tile against stock.
// A line covered by stock becomes a reservation that decrements the stock;
// otherwise a purchase request is raised for the shortfall, or for the full
// quantity when the material is not in stock at all. Lines without a
// MaterialID are not tracked in stock and are ignored, as are tiles without
// a project. stock is not modified.
func PlanProduction(tile domain.Tile, stock map[string]domain.StockMaterial) ProductionPlan {
	plan := ProductionPlan{StockLevels: make(map[string]float64)}
	if tile.ProjectID == "" {
		return plan
	}
	priority := domain.RequestPriorityFor(tile.Priority)

	for _, line := range tile.BOM {
		if line.MaterialID == "" || line.Quantity <= 0 {
			continue
		}

		mat, ok := stock[line.MaterialID]
		if !ok {
			plan.Requests = append(plan.Requests, domain.PurchaseRequest{
				ProjectID:    tile.ProjectID,
				TileID:       tile.ID,
				MaterialID:   line.MaterialID,
				MaterialName: line.Name,
				Quantity:     line.Quantity,
				Unit:         line.Unit,
				RequestedBy:  SystemActor,
				Priority:     priority,
				Status:       domain.PurchasePending,
				Notes:        fmt.Sprintf("Automatyczne zapotrzebowanie dla kafelka: %s (%s)", tile.Name, tile.ID),
			})
			continue
		}

		available, seen := plan.StockLevels[mat.ID]
		if !seen {
			available = mat.Stock
		}
		if available < 0 {
			available = 0
		}

		if available >= line.Quantity {
			plan.Reservations = append(plan.Reservations, domain.StockReservation{
				ProjectID:    tile.ProjectID,
				TileID:       tile.ID,
				MaterialID:   mat.ID,
				MaterialName: line.Name,
				Quantity:     line.Quantity,
				Unit:         line.Unit,
				ReservedBy:   SystemActor,
				Status:       domain.ReservationReserved,
			})
			plan.StockLevels[mat.ID] = available - line.Quantity
			continue
		}

		shortfall := line.Quantity - available
		plan.Requests = append(plan.Requests, domain.PurchaseRequest{
			ProjectID:    tile.ProjectID,
			TileID:       tile.ID,
			MaterialID:   mat.ID,
			MaterialName: line.Name,
			Quantity:     shortfall,
			Unit:         line.Unit,
			RequestedBy:  SystemActor,
			Priority:     priority,
			Status:       domain.PurchasePending,
			Notes: fmt.Sprintf("Automatyczne zapotrzebowanie dla kafelka: %s (%s). Dostępne: %g %s, potrzebne: %g %s",
				tile.Name, tile.ID, available, line.Unit, line.Quantity, line.Unit),
		})
	}

	return plan
}
