package scheduler

import (
	"math"
	"testing"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPhaseDuration_Examples(t *testing.T) {
	assert.Equal(t, 1.0, PhaseDuration(0, domain.PhaseCutting), "floor applies at zero labor")
	assert.Equal(t, 8.0, PhaseDuration(10, domain.PhaseProduction), "10 * 0.8 exceeds floor of 2")
	assert.Equal(t, 5.0, PhaseDuration(10, domain.PhaseDesign))
	assert.Equal(t, 2.0, PhaseDuration(10, domain.PhaseCutting))
	assert.Equal(t, 2.0, PhaseDuration(1, domain.PhaseDesign), "0.5h is below the design floor")
}

func TestPhaseDuration_NeverBelowFloor(t *testing.T) {
	for _, phase := range domain.Phases {
		for _, labor := range []float64{0, 0.1, 1, 2.5, 4, 9.99, 40, 1000} {
			got := PhaseDuration(labor, phase)
			assert.GreaterOrEqual(t, got, MinimumHours(phase), "labor=%v phase=%s", labor, phase)
			assert.Greater(t, got, 0.0)
		}
	}
}

func TestPhaseDuration_NegativeAndNaNClampToZero(t *testing.T) {
	for _, phase := range domain.Phases {
		assert.Equal(t, MinimumHours(phase), PhaseDuration(-50, phase))
		assert.Equal(t, MinimumHours(phase), PhaseDuration(math.NaN(), phase))
	}
}

func TestPhaseDuration_UnknownPhase(t *testing.T) {
	assert.Equal(t, 0.0, PhaseDuration(10, domain.Phase("malowanie")))
	assert.Equal(t, 0.0, MinimumHours(domain.Phase("malowanie")))
}
