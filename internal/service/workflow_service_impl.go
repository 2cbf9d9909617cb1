package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/materials"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/repository"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/scheduler"
)

// workflowService validates tile status changes and runs their side
// effects. The status change is authoritative: once it is stored, calendar
// and stock failures are logged and never returned.
type workflowService struct {
	tiles     repository.TileRepo
	calendar  CalendarService
	materials MaterialsService
	targets   SchedulingTargets
	logger    *zap.Logger
	observer  UseCaseObserver
	now       func() time.Time
}

func NewWorkflowService(
	tiles repository.TileRepo,
	calendar CalendarService,
	materials MaterialsService,
	targets SchedulingTargets,
	logger *zap.Logger,
	observers ...UseCaseObserver,
) WorkflowService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &workflowService{
		tiles:     tiles,
		calendar:  calendar,
		materials: materials,
		targets:   targets,
		logger:    logger.Named("workflow"),
		observer:  useCaseObserverOrNoop(observers),
		now:       systemNow,
	}
}

// RequestTransition moves a tile to status to. An invalid transition returns
// an *domain.InvalidTransitionError and leaves the stored tile unchanged; a
// concurrent writer surfaces as domain.ErrVersionConflict.
func (s *workflowService) RequestTransition(ctx context.Context, tileID string, to domain.TileStatus) (res *TransitionResult, err error) {
	fields := map[string]any{"tile_id": tileID, "to": string(to)}
	defer observe(ctx, s.observer, "workflow.request_transition", time.Now(), &err, fields)

	tile, err := s.tiles.GetByID(ctx, tileID)
	if err != nil {
		return nil, err
	}
	from := tile.Status
	fields["from"] = string(from)

	now := s.now()
	if err = tile.TransitionTo(to, now); err != nil {
		return nil, err
	}
	if err = s.tiles.UpdateStatus(ctx, tile); err != nil {
		return nil, fmt.Errorf("persisting tile %s status: %w", tile.ID, err)
	}

	res = &TransitionResult{Tile: tile, From: from}
	if phase, ok := domain.PhaseEntry(to); ok {
		res.Phase = phase
		res.ResourceID = s.targets.ResourceFor(tile, phase)
		res.Placed = s.schedulePhase(ctx, tile, phase, res.ResourceID, now)
		fields["placed"] = len(res.Placed)
	}
	if domain.ConsumesMaterial(to) {
		res.Production = s.processProduction(ctx, tile)
	}
	return res, nil
}

func (s *workflowService) schedulePhase(ctx context.Context, tile *domain.Tile, phase domain.Phase, resourceID string, anchor time.Time) []domain.CalendarEvent {
	log := s.logger.With(
		zap.String("tile_id", tile.ID),
		zap.String("phase", string(phase)),
		zap.String("resource_id", resourceID),
	)
	if resourceID == "" {
		log.Info("no resource configured for phase, skipping scheduling")
		return nil
	}

	result, err := s.calendar.AutoSchedule(ctx, scheduler.Request{
		ResourceID: resourceID,
		Anchor:     anchor,
		Tasks:      []scheduler.Task{scheduler.TaskFor(*tile, phase)},
	})
	if err != nil {
		log.Warn("phase scheduling failed", zap.Error(err))
		return nil
	}
	for _, f := range result.Failures {
		log.Warn("phase event not placed", zap.String("reason", f.Reason))
	}
	return result.Placed
}

func (s *workflowService) processProduction(ctx context.Context, tile *domain.Tile) *materials.ProductionPlan {
	plan, err := s.materials.ProcessProduction(ctx, tile.ID)
	if err != nil {
		s.logger.Warn("BOM processing failed",
			zap.String("tile_id", tile.ID),
			zap.String("status", string(tile.Status)),
			zap.Error(err),
		)
		return nil
	}
	return plan
}
