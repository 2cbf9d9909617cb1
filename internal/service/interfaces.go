package service

import (
	"context"
	"time"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/importer"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/materials"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/repository"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/scheduler"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	// Resolve looks a project up by its P-NNN number first, then by id.
	Resolve(ctx context.Context, ref string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	RequestTransition(ctx context.Context, projectID string, to domain.ProjectStatus) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}

// ImportResult summarizes a project created from an import file.
type ImportResult struct {
	Project         *domain.Project
	TileCount       int
	BOMLineCount    int
	DependencyCount int
}

type ImportService interface {
	ImportProject(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type TileService interface {
	Create(ctx context.Context, t *domain.Tile) error
	GetByID(ctx context.Context, id string) (*domain.Tile, error)
	List(ctx context.Context, filter repository.TileFilter) ([]*domain.Tile, error)
	AddBOMLine(ctx context.Context, tileID string, line domain.BOMLine) (*domain.Tile, error)
	ReplaceBOM(ctx context.Context, tileID string, lines []domain.BOMLine) (*domain.Tile, error)
	AddDependency(ctx context.Context, tileID, dependsOnID string) error
	// Blocked reports whether any prerequisite of the tile is not yet done.
	Blocked(ctx context.Context, tileID string) (bool, error)
	Delete(ctx context.Context, id string) error
}

// TransitionResult is the outcome of an accepted tile status change.
// Scheduling and production side effects are best-effort: an empty Placed
// or Production never means the status change failed.
type TransitionResult struct {
	Tile       *domain.Tile
	From       domain.TileStatus
	Phase      domain.Phase
	ResourceID string
	Placed     []domain.CalendarEvent
	Production *materials.ProductionPlan
}

type WorkflowService interface {
	RequestTransition(ctx context.Context, tileID string, to domain.TileStatus) (*TransitionResult, error)
}

type CalendarService interface {
	AddResource(ctx context.Context, r *domain.Resource) error
	ListResources(ctx context.Context) ([]*domain.Resource, error)
	AddEvent(ctx context.Context, e *domain.CalendarEvent) error
	ListEvents(ctx context.Context, filter repository.EventFilter) ([]domain.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	// AutoSchedule places req.Tasks against the stored calendar of
	// req.ResourceID and persists the placed events in one transaction.
	// A zero Anchor means now.
	AutoSchedule(ctx context.Context, req scheduler.Request) (*scheduler.Result, error)
	ScheduleProject(ctx context.Context, projectID string, phase domain.Phase, resourceID string) (*scheduler.Result, error)
	ExportWeek(ctx context.Context, weekStart time.Time, resourceID string) (string, error)
}

type MaterialsService interface {
	// Summary aggregates the BOM lines of a project's tiles, or of all
	// tiles when projectID is empty.
	Summary(ctx context.Context, projectID string) ([]domain.MaterialSummary, error)
	EstimateCosts(ctx context.Context, projectID string, opts materials.CostOptions) (*materials.CostEstimate, error)
	SetStock(ctx context.Context, m *domain.StockMaterial) error
	ListStock(ctx context.Context) ([]*domain.StockMaterial, error)
	ListPurchaseRequests(ctx context.Context, status domain.PurchaseRequestStatus) ([]*domain.PurchaseRequest, error)
	ListReservations(ctx context.Context, projectID string) ([]*domain.StockReservation, error)
	ProcessProduction(ctx context.Context, tileID string) (*materials.ProductionPlan, error)
}
