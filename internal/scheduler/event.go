package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// maxTaskHours bounds a single task so start+duration stays representable.
const maxTaskHours = 24 * 365 * 10

// hoursToDuration rounds hours to whole seconds.
func hoursToDuration(hours float64) time.Duration {
	return time.Duration(math.Round(hours*3600)) * time.Second
}

// EventTitle formats the title of a phase event for a tile.
func EventTitle(phase domain.Phase, tileName string) string {
	return fmt.Sprintf("%s: %s", phase.Label(), tileName)
}

// BuildEvent creates an unsaved calendar event for tile in phase, starting
// at start. The event has no ID until the calendar store persists it.
func BuildEvent(tile domain.Tile, phase domain.Phase, start time.Time, resourceID string) (domain.CalendarEvent, error) {
	if !phase.IsValid() {
		return domain.CalendarEvent{}, fmt.Errorf("building event for tile %s: unknown phase %q", tile.ID, phase)
	}
	hours := PhaseDuration(tile.LaborCost, phase)
	return domain.CalendarEvent{
		Title:      EventTitle(phase, tile.Name),
		Start:      start,
		End:        start.Add(hoursToDuration(hours)),
		ResourceID: resourceID,
		Phase:      phase,
		Tags:       []string{string(phase), string(tile.Status)},
		Meta:       domain.EventMeta{TileID: tile.ID, ProjectID: tile.ProjectID},
	}, nil
}

// TaskFor derives the scheduling request for tile in phase. It carries the
// same title, tags and metadata BuildEvent would produce.
func TaskFor(tile domain.Tile, phase domain.Phase) Task {
	return Task{
		Title:         EventTitle(phase, tile.Name),
		DurationHours: PhaseDuration(tile.LaborCost, phase),
		Phase:         phase,
		Tags:          []string{string(phase), string(tile.Status)},
		Meta:          domain.EventMeta{TileID: tile.ID, ProjectID: tile.ProjectID},
	}
}
