package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrVersionConflict   = errors.New("version conflict: entity was modified concurrently")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidBOMLine    = errors.New("invalid BOM line")
	ErrInvalidEvent      = errors.New("invalid calendar event")
)

// InvalidTransitionError reports a status change that is not in the
// entity's transition table. No mutation happened when it is returned.
type InvalidTransitionError struct {
	Entity   string // "tile" or "project"
	EntityID string
	From     string
	To       string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition for %s: %q -> %q", e.Entity, e.EntityID, e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// SchedulingAdvisoryError describes a task the auto scheduler could not
// place. It is logged by callers and never fails a status change.
type SchedulingAdvisoryError struct {
	TaskIndex int
	Title     string
	Reason    string
}

func (e *SchedulingAdvisoryError) Error() string {
	return fmt.Sprintf("scheduling task %d (%q): %s", e.TaskIndex, e.Title, e.Reason)
}

// MalformedBOMLineError describes a BOM line skipped during aggregation.
type MalformedBOMLineError struct {
	TileID string
	LineID string
	Reason string
}

func (e *MalformedBOMLineError) Error() string {
	return fmt.Sprintf("tile %s: BOM line %q skipped: %s", e.TileID, e.LineID, e.Reason)
}

func (e *MalformedBOMLineError) Unwrap() error {
	return ErrInvalidBOMLine
}
