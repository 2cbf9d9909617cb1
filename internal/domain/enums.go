package domain

import "fmt"

type TileStatus string

const (
	TileQueued           TileStatus = "W KOLEJCE"
	TileDesign           TileStatus = "Projektowanie"
	TileDesignInProgress TileStatus = "W trakcie projektowania"
	TileAwaitingApproval TileStatus = "Do akceptacji"
	TileApproved         TileStatus = "Zaakceptowane"
	TileCutting          TileStatus = "W TRAKCIE CIĘCIA"
	TileCut              TileStatus = "WYCIĘTE"
	TileOnHold           TileStatus = "Wstrzymany"
	TileNeedsRework      TileStatus = "Wymagają poprawek"
	TileReadyForAssembly TileStatus = "Gotowy do montażu"
	TileDone             TileStatus = "Zakończony"
)

type ProjectStatus string

const (
	ProjectNew        ProjectStatus = "Nowy"
	ProjectInProgress ProjectStatus = "W realizacji"
	ProjectOnHold     ProjectStatus = "Wstrzymany"
	ProjectDone       ProjectStatus = "Zakończony"
	ProjectCancelled  ProjectStatus = "Anulowany"
)

// Phase is a production stage used to derive scheduled durations.
type Phase string

const (
	PhaseDesign     Phase = "projektowanie"
	PhaseCutting    Phase = "wycinanie"
	PhaseProduction Phase = "produkcja"
)

// Phases lists every phase in production order.
var Phases = []Phase{PhaseDesign, PhaseCutting, PhaseProduction}

var phaseLabels = map[Phase]string{
	PhaseDesign:     "Projektowanie",
	PhaseCutting:    "Wycinanie",
	PhaseProduction: "Produkcja",
}

// Label returns the display label used in event titles, or "" for an unknown phase.
func (p Phase) Label() string {
	return phaseLabels[p]
}

// IsValid reports whether p is one of the known phases.
func (p Phase) IsValid() bool {
	_, ok := phaseLabels[p]
	return ok
}

// ParsePhase converts user input into a Phase.
func ParsePhase(s string) (Phase, error) {
	p := Phase(s)
	if !p.IsValid() {
		return "", fmt.Errorf("unknown phase %q (want projektowanie, wycinanie or produkcja)", s)
	}
	return p, nil
}

type Priority string

const (
	PriorityHigh   Priority = "Wysoki"
	PriorityMedium Priority = "Średni"
	PriorityLow    Priority = "Niski"
)

// Rank returns a sort key (lower = more urgent). Unset priorities sort last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// ParsePriority converts user input into a Priority. Empty input leaves the
// priority unset.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(s); p {
	case "", PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	default:
		return "", fmt.Errorf("unknown priority %q (want Wysoki, Średni or Niski)", s)
	}
}

type BOMLineType string

const (
	BOMRawMaterial       BOMLineType = "Materiał surowy"
	BOMFinishedComponent BOMLineType = "Komponent gotowy"
	BOMService           BOMLineType = "Usługa"
)

type BOMLineStatus string

const (
	BOMInStock BOMLineStatus = "Na stanie"
	BOMToOrder BOMLineStatus = "Do zamówienia"
	BOMOrdered BOMLineStatus = "Zamówione"
	BOMUnknown BOMLineStatus = "Nieznany"
)

type ResourceType string

const (
	ResourceProject  ResourceType = "project"
	ResourceDesigner ResourceType = "designer"
	ResourceTeam     ResourceType = "team"
)

// ValidResourceTypes is the canonical set of accepted resource type strings.
var ValidResourceTypes = map[string]bool{
	"project": true, "designer": true, "team": true,
}

// ParseResourceType converts user input into a ResourceType.
func ParseResourceType(s string) (ResourceType, error) {
	if !ValidResourceTypes[s] {
		return "", fmt.Errorf("unknown resource type %q (want project, designer or team)", s)
	}
	return ResourceType(s), nil
}
