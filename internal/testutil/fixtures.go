package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

var testProjectCounter atomic.Int64

// now is truncated to whole seconds so fixtures survive the RFC3339 round trip.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Project options
type ProjectOption func(*domain.Project)

func WithDeadline(d time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.Deadline = &d
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithNumber(n string) ProjectOption {
	return func(p *domain.Project) {
		p.Number = n
	}
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	ts := now()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Number:    fmt.Sprintf("P-%03d", testProjectCounter.Add(1)),
		Name:      name,
		Client:    "Test Client",
		Status:    domain.ProjectNew,
		Version:   1,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tile options
type TileOption func(*domain.Tile)

func WithProject(projectID string) TileOption {
	return func(t *domain.Tile) {
		t.ProjectID = projectID
	}
}

func WithStatus(s domain.TileStatus) TileOption {
	return func(t *domain.Tile) {
		t.Status = s
	}
}

func WithLaborCost(c float64) TileOption {
	return func(t *domain.Tile) {
		t.LaborCost = c
	}
}

func WithPriority(p domain.Priority) TileOption {
	return func(t *domain.Tile) {
		t.Priority = p
	}
}

func WithDesigner(d string) TileOption {
	return func(t *domain.Tile) {
		t.Designer = d
	}
}

func WithTileDeadline(d time.Time) TileOption {
	return func(t *domain.Tile) {
		t.Deadline = &d
	}
}

func WithDependencies(ids ...string) TileOption {
	return func(t *domain.Tile) {
		t.Dependencies = append(t.Dependencies, ids...)
	}
}

func WithBOM(lines ...domain.BOMLine) TileOption {
	return func(t *domain.Tile) {
		t.BOM = append(t.BOM, lines...)
	}
}

func NewTestTile(name string, opts ...TileOption) *domain.Tile {
	ts := now()
	t := &domain.Tile{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    domain.TileQueued,
		LaborCost: 10,
		Priority:  domain.PriorityMedium,
		Version:   1,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestBOMLine returns a raw-material line with the given unit cost.
func NewTestBOMLine(name, unit string, qty, unitCost float64) domain.BOMLine {
	return domain.BOMLine{
		Type:     domain.BOMRawMaterial,
		Name:     name,
		Quantity: qty,
		Unit:     unit,
		UnitCost: &unitCost,
		Status:   domain.BOMInStock,
	}
}

func NewTestResource(id string, typ domain.ResourceType) *domain.Resource {
	return &domain.Resource{ID: id, Title: "Resource " + id, Color: "#3b82f6", Type: typ}
}
