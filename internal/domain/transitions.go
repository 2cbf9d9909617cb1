package domain

import "fmt"

// TransitionTable maps each known status to the statuses it may move to.
// Tables are built once at package init and expose no mutators.
type TransitionTable[S ~string] struct {
	next map[S][]S
}

func newTransitionTable[S ~string](next map[S][]S) TransitionTable[S] {
	return TransitionTable[S]{next: next}
}

// IsValidTransition reports whether to is an allowed next status for from.
func (t TransitionTable[S]) IsValidTransition(from, to S) bool {
	for _, s := range t.next[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidNextStatuses returns a copy of the allowed next statuses for from.
// An unmapped status is treated as terminal and yields an empty slice.
func (t TransitionTable[S]) ValidNextStatuses(from S) []S {
	allowed := t.next[from]
	out := make([]S, len(allowed))
	copy(out, allowed)
	return out
}

// Known reports whether s is a key of the table.
func (t TransitionTable[S]) Known(s S) bool {
	_, ok := t.next[s]
	return ok
}

// IsTerminal reports whether s is known and has no outgoing transitions.
func (t TransitionTable[S]) IsTerminal(s S) bool {
	allowed, ok := t.next[s]
	return ok && len(allowed) == 0
}

// TileTransitions is the tile workflow.
var TileTransitions = newTransitionTable(map[TileStatus][]TileStatus{
	TileQueued:           {TileDesign, TileOnHold},
	TileDesign:           {TileDesignInProgress, TileOnHold},
	TileDesignInProgress: {TileAwaitingApproval, TileOnHold},
	TileAwaitingApproval: {TileApproved, TileNeedsRework},
	TileApproved:         {TileCutting, TileOnHold},
	TileCutting:          {TileCut, TileOnHold},
	TileCut:              {TileReadyForAssembly, TileOnHold},
	TileOnHold: {
		TileQueued, TileDesign, TileDesignInProgress, TileAwaitingApproval,
		TileApproved, TileCutting, TileCut,
	},
	TileNeedsRework:      {TileDesign, TileDesignInProgress},
	TileReadyForAssembly: {TileDone},
	TileDone:             {},
})

// ProjectTransitions is the project lifecycle.
var ProjectTransitions = newTransitionTable(map[ProjectStatus][]ProjectStatus{
	ProjectNew:        {ProjectInProgress, ProjectOnHold, ProjectCancelled},
	ProjectInProgress: {ProjectOnHold, ProjectDone, ProjectCancelled},
	ProjectOnHold:     {ProjectInProgress, ProjectCancelled},
	ProjectDone:       {},
	ProjectCancelled:  {},
})

// TileStatusOrder is the workflow order used for listings.
var TileStatusOrder = []TileStatus{
	TileQueued, TileDesign, TileDesignInProgress, TileAwaitingApproval,
	TileNeedsRework, TileApproved, TileCutting, TileCut,
	TileReadyForAssembly, TileDone, TileOnHold,
}

// ProjectStatusOrder is the lifecycle order used for listings.
var ProjectStatusOrder = []ProjectStatus{
	ProjectNew, ProjectInProgress, ProjectOnHold, ProjectDone, ProjectCancelled,
}

// ParseTileStatus converts user input into a TileStatus known to the workflow.
func ParseTileStatus(s string) (TileStatus, error) {
	st := TileStatus(s)
	if !TileTransitions.Known(st) {
		return "", fmt.Errorf("unknown tile status %q", s)
	}
	return st, nil
}

// ParseProjectStatus converts user input into a ProjectStatus known to the lifecycle.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	st := ProjectStatus(s)
	if !ProjectTransitions.Known(st) {
		return "", fmt.Errorf("unknown project status %q", s)
	}
	return st, nil
}

// PhaseEntry returns the phase whose scheduling starts when a tile enters
// status s. ok is false for statuses that do not open a phase.
func PhaseEntry(s TileStatus) (phase Phase, ok bool) {
	switch s {
	case TileDesignInProgress:
		return PhaseDesign, true
	case TileCutting:
		return PhaseCutting, true
	case TileReadyForAssembly:
		return PhaseProduction, true
	default:
		return "", false
	}
}

// ConsumesMaterial reports whether entering s triggers BOM processing
// against stock.
func ConsumesMaterial(s TileStatus) bool {
	return s == TileCutting || s == TileCut
}
