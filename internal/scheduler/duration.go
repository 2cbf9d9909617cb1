package scheduler

import (
	"math"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// Phase duration constants. A phase event lasts laborCost × multiplier
// hours, never less than the phase floor.
var (
	phaseMultiplier = map[domain.Phase]float64{
		domain.PhaseDesign:     0.5,
		domain.PhaseCutting:    0.2,
		domain.PhaseProduction: 0.8,
	}
	phaseMinimumHours = map[domain.Phase]float64{
		domain.PhaseDesign:     2,
		domain.PhaseCutting:    1,
		domain.PhaseProduction: 2,
	}
)

// PhaseDuration converts a tile's labor cost into the length of a phase
// event in hours. Negative and NaN labor costs count as 0. An unknown phase
// yields 0, which the auto scheduler reports as an advisory failure.
func PhaseDuration(laborCost float64, phase domain.Phase) float64 {
	mult, ok := phaseMultiplier[phase]
	if !ok {
		return 0
	}
	if math.IsNaN(laborCost) || laborCost < 0 {
		laborCost = 0
	}
	return math.Max(laborCost*mult, phaseMinimumHours[phase])
}

// MinimumHours returns the floor applied to phase, or 0 for an unknown phase.
func MinimumHours(phase domain.Phase) float64 {
	return phaseMinimumHours[phase]
}
