package service

import (
	"time"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// SchedulingTargets names the calendar resources that receive phase-entry
// events. An empty target disables scheduling for that phase.
type SchedulingTargets struct {
	DefaultDesigner  string
	CNCResource      string
	AssemblyResource string
}

// ResourceFor returns the resource a tile's phase event is booked on.
// Design goes to the tile's designer, falling back to DefaultDesigner.
func (t SchedulingTargets) ResourceFor(tile *domain.Tile, phase domain.Phase) string {
	switch phase {
	case domain.PhaseDesign:
		return domain.CoalesceStr(tile.Designer, t.DefaultDesigner)
	case domain.PhaseCutting:
		return t.CNCResource
	case domain.PhaseProduction:
		return t.AssemblyResource
	default:
		return ""
	}
}

// systemNow is the default service clock. Times are kept at whole seconds
// because that is the precision the store round-trips.
func systemNow() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// tileSnapshots copies stored tiles into values for the pure planners.
func tileSnapshots(tiles []*domain.Tile) []domain.Tile {
	out := make([]domain.Tile, 0, len(tiles))
	for _, t := range tiles {
		out = append(out, *t)
	}
	return out
}
