package repository

import (
	"context"
	"time"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByNumber(ctx context.Context, number string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	// UpdateStatus persists p.Status if the stored version still equals
	// p.Version, then increments p.Version. ErrVersionConflict otherwise.
	UpdateStatus(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

// TileFilter narrows List. Zero values match everything.
type TileFilter struct {
	ProjectID string
	Status    domain.TileStatus
}

type TileRepo interface {
	// Create inserts the tile with its BOM lines and dependencies.
	Create(ctx context.Context, t *domain.Tile) error
	GetByID(ctx context.Context, id string) (*domain.Tile, error)
	List(ctx context.Context, filter TileFilter) ([]*domain.Tile, error)
	// UpdateStatus persists t.Status if the stored version still equals
	// t.Version, then increments t.Version. ErrVersionConflict otherwise.
	UpdateStatus(ctx context.Context, t *domain.Tile) error
	// ReplaceBOM rewrites the tile's BOM lines and bumps its version.
	ReplaceBOM(ctx context.Context, t *domain.Tile) error
	Delete(ctx context.Context, id string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, d domain.TileDependency) error
	Delete(ctx context.Context, tileID, dependsOnID string) error
	ListPrerequisites(ctx context.Context, tileID string) ([]domain.TileDependency, error)
	ListDependents(ctx context.Context, tileID string) ([]domain.TileDependency, error)
	HasUnfinishedPrerequisites(ctx context.Context, tileID string) (bool, error)
}

type ResourceRepo interface {
	Create(ctx context.Context, r *domain.Resource) error
	GetByID(ctx context.Context, id string) (*domain.Resource, error)
	List(ctx context.Context) ([]*domain.Resource, error)
}

// EventFilter narrows List. Zero values match everything; From/To select
// events overlapping [From, To).
type EventFilter struct {
	ResourceID string
	ProjectID  string
	TileID     string
	From       time.Time
	To         time.Time
}

type EventRepo interface {
	// Create assigns e.ID when empty and stores the event.
	Create(ctx context.Context, e *domain.CalendarEvent) error
	GetByID(ctx context.Context, id string) (*domain.CalendarEvent, error)
	List(ctx context.Context, filter EventFilter) ([]domain.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}

type StockRepo interface {
	Upsert(ctx context.Context, m *domain.StockMaterial) error
	GetByID(ctx context.Context, id string) (*domain.StockMaterial, error)
	List(ctx context.Context) ([]*domain.StockMaterial, error)
	SetStock(ctx context.Context, id string, stock float64) error
}

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.StockReservation) error
	ListByTile(ctx context.Context, tileID string) ([]*domain.StockReservation, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.StockReservation, error)
}

type PurchaseRequestRepo interface {
	Create(ctx context.Context, r *domain.PurchaseRequest) error
	ListByTile(ctx context.Context, tileID string) ([]*domain.PurchaseRequest, error)
	List(ctx context.Context, status domain.PurchaseRequestStatus) ([]*domain.PurchaseRequest, error)
}
