// Package materials derives project-wide material views from tile BOMs:
// the aggregated material list, cost estimates and production stock plans.
package materials

import (
	"sort"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

type key struct {
	name, unit string
}

type accumulator struct {
	summary  domain.MaterialSummary
	projects map[string]struct{}
	tiles    map[string]struct{}
}

// Aggregate folds the BOM lines of tiles into one summary per (name, unit).
// Quantities and costs are summed, contributing project and tile ids are
// collected as sets, and the status of the first contributing line wins.
// Lines missing a name or unit, or carrying a non-finite quantity or unit
// cost, are skipped and reported; they never abort the aggregation. Results are sorted by name, then unit.
func Aggregate(tiles []domain.Tile) ([]domain.MaterialSummary, []*domain.MalformedBOMLineError) {
	acc := make(map[key]*accumulator)
	var skipped []*domain.MalformedBOMLineError

	for _, t := range tiles {
		for _, line := range t.BOM {
			if reason := malformed(line); reason != "" {
				skipped = append(skipped, &domain.MalformedBOMLineError{
					TileID: t.ID,
					LineID: line.ID,
					Reason: reason,
				})
				continue
			}

			k := key{name: line.Name, unit: line.Unit}
			a, ok := acc[k]
			if !ok {
				a = &accumulator{
					summary: domain.MaterialSummary{
						Name:   line.Name,
						Unit:   line.Unit,
						Type:   line.Type,
						Status: domain.BOMLineStatus(domain.CoalesceStr(string(line.Status), string(domain.BOMUnknown))),
					},
					projects: make(map[string]struct{}),
					tiles:    make(map[string]struct{}),
				}
				if line.UnitCost != nil {
					a.summary.UnitCost = *line.UnitCost
				}
				acc[k] = a
			}

			a.summary.TotalQuantity += line.Quantity
			a.summary.TotalCost += line.Cost()
			if t.ProjectID != "" {
				a.projects[t.ProjectID] = struct{}{}
			}
			a.tiles[t.ID] = struct{}{}
		}
	}

	out := make([]domain.MaterialSummary, 0, len(acc))
	for _, a := range acc {
		s := a.summary
		s.Projects = sortedKeys(a.projects)
		s.Tiles = sortedKeys(a.tiles)
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Unit < out[j].Unit
	})
	return out, skipped
}

func malformed(line domain.BOMLine) string {
	switch {
	case line.Name == "":
		return "missing name"
	case line.Unit == "":
		return "missing unit"
	case !domain.IsFinite(line.Quantity):
		return "quantity is not a finite number"
	case line.UnitCost != nil && !domain.IsFinite(*line.UnitCost):
		return "unit cost is not a finite number"
	default:
		return ""
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
