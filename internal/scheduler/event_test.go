package scheduler

import (
	"testing"
	"time"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)

func TestBuildEvent_Fields(t *testing.T) {
	tile := domain.Tile{
		ID:        "t-1",
		Name:      "Panel frontowy",
		Status:    domain.TileDesignInProgress,
		ProjectID: "p-1",
		LaborCost: 10,
	}

	ev, err := BuildEvent(tile, domain.PhaseDesign, anchor, "designer-anna")
	require.NoError(t, err)

	assert.Empty(t, ev.ID, "id is assigned by the calendar store")
	assert.Equal(t, "Projektowanie: Panel frontowy", ev.Title)
	assert.Equal(t, anchor, ev.Start)
	assert.Equal(t, anchor.Add(5*time.Hour), ev.End)
	assert.Equal(t, "designer-anna", ev.ResourceID)
	assert.Equal(t, domain.PhaseDesign, ev.Phase)
	assert.Equal(t, []string{"projektowanie", "W trakcie projektowania"}, ev.Tags)
	assert.Equal(t, domain.EventMeta{TileID: "t-1", ProjectID: "p-1"}, ev.Meta)
}

func TestBuildEvent_EndAfterStart(t *testing.T) {
	for _, phase := range domain.Phases {
		for _, labor := range []float64{-3, 0, 0.01, 7, 123.45} {
			ev, err := BuildEvent(domain.Tile{ID: "t", Name: "x", LaborCost: labor}, phase, anchor, "")
			require.NoError(t, err)
			assert.True(t, ev.End.After(ev.Start), "labor=%v phase=%s", labor, phase)
			assert.NoError(t, ev.Validate())
		}
	}
}

func TestBuildEvent_EmptyStatusTag(t *testing.T) {
	ev, err := BuildEvent(domain.Tile{ID: "t", Name: "x"}, domain.PhaseCutting, anchor, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"wycinanie", ""}, ev.Tags)
	assert.Equal(t, time.Hour, ev.Duration())
}

func TestBuildEvent_UnknownPhase(t *testing.T) {
	_, err := BuildEvent(domain.Tile{ID: "t", Name: "x"}, domain.Phase("malowanie"), anchor, "")
	assert.Error(t, err)
}

func TestTaskFor_MatchesBuildEvent(t *testing.T) {
	tile := domain.Tile{ID: "t-2", Name: "Lada", Status: domain.TileCutting, ProjectID: "p-1", LaborCost: 20}
	task := TaskFor(tile, domain.PhaseCutting)

	res := Schedule(Request{ResourceID: "cnc-1", Anchor: anchor, Tasks: []Task{task}}, nil)
	require.Len(t, res.Placed, 1)

	ev, err := BuildEvent(tile, domain.PhaseCutting, anchor, "cnc-1")
	require.NoError(t, err)
	assert.Equal(t, ev, res.Placed[0])
}
