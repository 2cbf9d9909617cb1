package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/repository"
)

type tileService struct {
	tiles    repository.TileRepo
	deps     repository.DependencyRepo
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewTileService(tiles repository.TileRepo, deps repository.DependencyRepo, projects repository.ProjectRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TileService {
	return &tileService{
		tiles:    tiles,
		deps:     deps,
		projects: projects,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      systemNow,
	}
}

func (s *tileService) Create(ctx context.Context, t *domain.Tile) (err error) {
	defer observe(ctx, s.observer, "tile.create", time.Now(), &err, map[string]any{"project_id": t.ProjectID})

	if err = validateNewTile(t); err != nil {
		return err
	}
	if t.ProjectID != "" {
		if _, err = s.projects.GetByID(ctx, t.ProjectID); err != nil {
			return err
		}
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	for _, dep := range t.Dependencies {
		if dep == t.ID {
			return fmt.Errorf("tile %s cannot depend on itself", t.ID)
		}
	}
	now := s.now()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.Version = 1

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTiles := repository.NewSQLiteTileRepo(tx)
		for _, dep := range t.Dependencies {
			if _, err := txTiles.GetByID(ctx, dep); err != nil {
				return fmt.Errorf("dependency %s: %w", dep, err)
			}
		}
		return txTiles.Create(ctx, t)
	})
}

func validateNewTile(t *domain.Tile) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("tile name is required")
	}
	if t.Status == "" {
		t.Status = domain.TileQueued
	}
	if !domain.TileTransitions.Known(t.Status) {
		return fmt.Errorf("unknown tile status %q", t.Status)
	}
	if !domain.IsFinite(t.LaborCost) || t.LaborCost < 0 {
		return fmt.Errorf("labor cost must be a non-negative number, got %g", t.LaborCost)
	}
	if _, err := domain.ParsePriority(string(t.Priority)); err != nil {
		return err
	}
	for i, line := range t.BOM {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("BOM line %d: %w", i+1, err)
		}
	}
	return nil
}

func (s *tileService) GetByID(ctx context.Context, id string) (*domain.Tile, error) {
	return s.tiles.GetByID(ctx, id)
}

func (s *tileService) List(ctx context.Context, filter repository.TileFilter) ([]*domain.Tile, error) {
	return s.tiles.List(ctx, filter)
}

func (s *tileService) AddBOMLine(ctx context.Context, tileID string, line domain.BOMLine) (*domain.Tile, error) {
	if err := line.Validate(); err != nil {
		return nil, err
	}
	t, err := s.tiles.GetByID(ctx, tileID)
	if err != nil {
		return nil, err
	}
	lines := append(append([]domain.BOMLine(nil), t.BOM...), line)
	return s.replaceBOM(ctx, t, lines)
}

func (s *tileService) ReplaceBOM(ctx context.Context, tileID string, lines []domain.BOMLine) (*domain.Tile, error) {
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, fmt.Errorf("BOM line %d: %w", i+1, err)
		}
	}
	t, err := s.tiles.GetByID(ctx, tileID)
	if err != nil {
		return nil, err
	}
	return s.replaceBOM(ctx, t, lines)
}

func (s *tileService) replaceBOM(ctx context.Context, t *domain.Tile, lines []domain.BOMLine) (_ *domain.Tile, err error) {
	defer observe(ctx, s.observer, "tile.replace_bom", time.Now(), &err, map[string]any{"tile_id": t.ID, "lines": len(lines)})

	t.BOM = lines
	t.UpdatedAt = s.now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteTileRepo(tx).ReplaceBOM(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (s *tileService) AddDependency(ctx context.Context, tileID, dependsOnID string) error {
	if tileID == dependsOnID {
		return fmt.Errorf("tile %s cannot depend on itself", tileID)
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTiles := repository.NewSQLiteTileRepo(tx)
		txDeps := repository.NewSQLiteDependencyRepo(tx)
		if _, err := txTiles.GetByID(ctx, tileID); err != nil {
			return err
		}
		if _, err := txTiles.GetByID(ctx, dependsOnID); err != nil {
			return err
		}
		cyclic, err := reaches(ctx, txDeps, dependsOnID, tileID)
		if err != nil {
			return err
		}
		if cyclic {
			return fmt.Errorf("dependency %s -> %s would create a cycle", tileID, dependsOnID)
		}
		return txDeps.Create(ctx, domain.TileDependency{TileID: tileID, DependsOnID: dependsOnID})
	})
}

// reaches reports whether target is a transitive prerequisite of from.
func reaches(ctx context.Context, deps repository.DependencyRepo, from, target string) (bool, error) {
	seen := map[string]bool{from: true}
	stack := []string{from}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		prereqs, err := deps.ListPrerequisites(ctx, id)
		if err != nil {
			return false, err
		}
		for _, d := range prereqs {
			if d.DependsOnID == target {
				return true, nil
			}
			if !seen[d.DependsOnID] {
				seen[d.DependsOnID] = true
				stack = append(stack, d.DependsOnID)
			}
		}
	}
	return false, nil
}

func (s *tileService) Blocked(ctx context.Context, tileID string) (bool, error) {
	return s.deps.HasUnfinishedPrerequisites(ctx, tileID)
}

func (s *tileService) Delete(ctx context.Context, id string) error {
	return s.tiles.Delete(ctx, id)
}
