package domain

import (
	"fmt"
	"time"
)

// BOMLine is one material, component or service requirement of a tile.
type BOMLine struct {
	ID         string
	Type       BOMLineType
	Name       string
	Quantity   float64
	Unit       string
	UnitCost   *float64
	Status     BOMLineStatus
	Supplier   string
	MaterialID string // optional link to stock
}

// Cost returns quantity × unit cost, treating a missing unit cost as 0.
func (l BOMLine) Cost() float64 {
	if l.UnitCost == nil {
		return 0
	}
	return l.Quantity * *l.UnitCost
}

// Validate checks the constraints enforced on BOM edits.
func (l BOMLine) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidBOMLine)
	}
	if l.Unit == "" {
		return fmt.Errorf("%w: unit is required", ErrInvalidBOMLine)
	}
	if !IsFinite(l.Quantity) || l.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %g", ErrInvalidBOMLine, l.Quantity)
	}
	if l.UnitCost != nil && (!IsFinite(*l.UnitCost) || *l.UnitCost < 0) {
		return fmt.Errorf("%w: unit cost must not be negative, got %g", ErrInvalidBOMLine, *l.UnitCost)
	}
	return nil
}

// Tile is an individually tracked production element.
type Tile struct {
	ID         string
	Name       string
	Status     TileStatus
	ProjectID  string // optional
	LaborCost  float64
	BOM        []BOMLine
	Priority   Priority
	Designer   string // assigned designer, optional
	Technology string
	Deadline   *time.Time

	// Dependencies are ids of tiles that must be finished before this one.
	Dependencies []string

	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal reports whether the tile has reached the end of its workflow.
func (t *Tile) IsTerminal() bool {
	return TileTransitions.IsTerminal(t.Status)
}

// ValidNextStatuses lists the statuses the tile may move to from its current one.
func (t *Tile) ValidNextStatuses() []TileStatus {
	return TileTransitions.ValidNextStatuses(t.Status)
}

// TransitionTo moves the tile to status to if the tile workflow allows it.
// The tile is left untouched on failure.
func (t *Tile) TransitionTo(to TileStatus, now time.Time) error {
	if !TileTransitions.IsValidTransition(t.Status, to) {
		return &InvalidTransitionError{
			Entity:   "tile",
			EntityID: t.ID,
			From:     string(t.Status),
			To:       string(to),
		}
	}
	t.Status = to
	t.UpdatedAt = now
	return nil
}

// MaterialCost sums the cost of every BOM line.
func (t *Tile) MaterialCost() float64 {
	var total float64
	for _, l := range t.BOM {
		total += l.Cost()
	}
	return total
}

// TileDependency records that TileID cannot finish before DependsOnID.
type TileDependency struct {
	TileID      string
	DependsOnID string
}
