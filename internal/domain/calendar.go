package domain

import (
	"fmt"
	"time"
)

// Resource is a schedulable actor or machine, e.g. a designer or a CNC router.
type Resource struct {
	ID    string
	Title string
	Color string
	Type  ResourceType
}

// EventMeta links an event back to the tile and project it was created for.
// Both ids are lookup references only.
type EventMeta struct {
	TileID    string
	ProjectID string
}

// CalendarEvent is a time block on a resource's calendar. ID is empty until
// the calendar store persists the event.
type CalendarEvent struct {
	ID         string
	Title      string
	Start      time.Time
	End        time.Time
	ResourceID string
	Phase      Phase
	Tags       []string
	Meta       EventMeta
}

// Duration returns End - Start.
func (e CalendarEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// Overlaps reports whether the half-open intervals [Start, End) of e and o intersect.
func (e CalendarEvent) Overlaps(o CalendarEvent) bool {
	return e.Start.Before(o.End) && o.Start.Before(e.End)
}

// Validate checks the invariants every stored event satisfies.
func (e CalendarEvent) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidEvent)
	}
	if !e.End.After(e.Start) {
		return fmt.Errorf("%w: end %s must be after start %s", ErrInvalidEvent,
			e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
	}
	if e.Phase != "" && !e.Phase.IsValid() {
		return fmt.Errorf("%w: unknown phase %q", ErrInvalidEvent, e.Phase)
	}
	return nil
}
