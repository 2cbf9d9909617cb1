package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	observer UseCaseObserver
	now      func() time.Time
}

func NewProjectService(projects repository.ProjectRepo, observers ...UseCaseObserver) ProjectService {
	return &projectService{
		projects: projects,
		observer: useCaseObserverOrNoop(observers),
		now:      systemNow,
	}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("project name is required")
	}
	if err := p.ValidateNumber(); err != nil {
		return err
	}
	if !domain.IsFinite(p.Budget) || p.Budget < 0 {
		return fmt.Errorf("budget must be a non-negative number, got %g", p.Budget)
	}
	if p.Status == "" {
		p.Status = domain.ProjectNew
	}
	if !domain.ProjectTransitions.Known(p.Status) {
		return fmt.Errorf("unknown project status %q", p.Status)
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	now := s.now()
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Version = 1
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) Resolve(ctx context.Context, ref string) (*domain.Project, error) {
	probe := domain.Project{Number: ref}
	if ref != "" && probe.ValidateNumber() == nil {
		p, err := s.projects.GetByNumber(ctx, ref)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return s.projects.GetByID(ctx, ref)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) RequestTransition(ctx context.Context, projectID string, to domain.ProjectStatus) (p *domain.Project, err error) {
	fields := map[string]any{"project_id": projectID, "to": string(to)}
	defer observe(ctx, s.observer, "project.request_transition", time.Now(), &err, fields)

	p, err = s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	fields["from"] = string(p.Status)

	if err = p.TransitionTo(to, s.now()); err != nil {
		return nil, err
	}
	if err = s.projects.UpdateStatus(ctx, p); err != nil {
		return nil, fmt.Errorf("persisting project %s status: %w", p.DisplayID(), err)
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
