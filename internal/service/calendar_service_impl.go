package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/repository"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/scheduler"
)

// WeekExportHeader is the first line of a weekly calendar export.
const WeekExportHeader = "Harmonogram tygodniowy"

const exportTimeLayout = "2006-01-02 15:04"

type calendarService struct {
	resources repository.ResourceRepo
	events    repository.EventRepo
	tiles     repository.TileRepo
	uow       db.UnitOfWork
	logger    *zap.Logger
	observer  UseCaseObserver
	now       func() time.Time
}

func NewCalendarService(resources repository.ResourceRepo, events repository.EventRepo, tiles repository.TileRepo, uow db.UnitOfWork, logger *zap.Logger, observers ...UseCaseObserver) CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &calendarService{
		resources: resources,
		events:    events,
		tiles:     tiles,
		uow:       uow,
		logger:    logger.Named("calendar"),
		observer:  useCaseObserverOrNoop(observers),
		now:       systemNow,
	}
}

func (s *calendarService) AddResource(ctx context.Context, r *domain.Resource) error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("resource id is required")
	}
	if r.Title == "" {
		r.Title = r.ID
	}
	if _, err := domain.ParseResourceType(string(r.Type)); err != nil {
		return err
	}
	return s.resources.Create(ctx, r)
}

func (s *calendarService) ListResources(ctx context.Context) ([]*domain.Resource, error) {
	return s.resources.List(ctx)
}

func (s *calendarService) AddEvent(ctx context.Context, e *domain.CalendarEvent) error {
	e.Start = e.Start.UTC().Truncate(time.Second)
	e.End = e.End.UTC().Truncate(time.Second)
	return s.events.Create(ctx, e)
}

func (s *calendarService) ListEvents(ctx context.Context, filter repository.EventFilter) ([]domain.CalendarEvent, error) {
	return s.events.List(ctx, filter)
}

func (s *calendarService) DeleteEvent(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}

func (s *calendarService) AutoSchedule(ctx context.Context, req scheduler.Request) (result *scheduler.Result, err error) {
	fields := map[string]any{"resource_id": req.ResourceID, "tasks": len(req.Tasks)}
	defer observe(ctx, s.observer, "calendar.auto_schedule", time.Now(), &err, fields)

	if req.Anchor.IsZero() {
		req.Anchor = s.now()
	} else {
		req.Anchor = req.Anchor.UTC().Truncate(time.Second)
	}

	var res scheduler.Result
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEvents := repository.NewSQLiteEventRepo(tx)
		existing, err := txEvents.List(ctx, repository.EventFilter{ResourceID: req.ResourceID, From: req.Anchor})
		if err != nil {
			return err
		}
		res = scheduler.Schedule(req, existing)
		for i := range res.Placed {
			if err := txEvents.Create(ctx, &res.Placed[i]); err != nil {
				return fmt.Errorf("storing %q: %w", res.Placed[i].Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, f := range res.Failures {
		s.logger.Warn("task not scheduled",
			zap.String("resource_id", req.ResourceID),
			zap.Int("task", f.TaskIndex),
			zap.String("title", f.Title),
			zap.String("reason", f.Reason),
		)
	}
	fields["placed"] = len(res.Placed)
	fields["failed"] = len(res.Failures)
	return &res, nil
}

func (s *calendarService) ScheduleProject(ctx context.Context, projectID string, phase domain.Phase, resourceID string) (*scheduler.Result, error) {
	if !phase.IsValid() {
		return nil, fmt.Errorf("unknown phase %q", phase)
	}
	if resourceID == "" {
		return nil, fmt.Errorf("a resource is required to schedule project %s", projectID)
	}
	stored, err := s.tiles.List(ctx, repository.TileFilter{ProjectID: projectID})
	if err != nil {
		return nil, err
	}

	open := make([]domain.Tile, 0, len(stored))
	for _, t := range tileSnapshots(stored) {
		if !t.IsTerminal() {
			open = append(open, t)
		}
	}

	ordered := scheduler.OrderTiles(open)
	tasks := make([]scheduler.Task, 0, len(ordered))
	for _, t := range ordered {
		tasks = append(tasks, scheduler.TaskFor(t, phase))
	}
	return s.AutoSchedule(ctx, scheduler.Request{
		ResourceID: resourceID,
		Anchor:     s.now(),
		Tasks:      tasks,
	})
}

// ExportWeek renders the events that lie entirely inside the seven days
// starting at weekStart as plain text, one line per event. Times are shown in
// weekStart's location. An empty resourceID exports every resource.
func (s *calendarService) ExportWeek(ctx context.Context, weekStart time.Time, resourceID string) (string, error) {
	weekEnd := weekStart.AddDate(0, 0, 7)
	events, err := s.events.List(ctx, repository.EventFilter{ResourceID: resourceID, From: weekStart, To: weekEnd})
	if err != nil {
		return "", err
	}
	resources, err := s.resources.List(ctx)
	if err != nil {
		return "", err
	}
	titles := make(map[string]string, len(resources))
	for _, r := range resources {
		titles[r.ID] = r.Title
	}

	loc := weekStart.Location()
	lines := []string{WeekExportHeader, ""}
	for _, e := range events {
		if e.Start.Before(weekStart) || e.End.After(weekEnd) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s - %s | %s | %s",
			e.Start.In(loc).Format(exportTimeLayout),
			e.End.In(loc).Format(exportTimeLayout),
			e.Title,
			domain.CoalesceStr(titles[e.ResourceID], e.ResourceID),
		))
	}
	return strings.Join(lines, "\n"), nil
}
