package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/db"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/importer"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

// NewImportService creates projects with their tiles from import files.
// Everything is written in one transaction through tx-scoped repositories.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      systemNow,
	}
}

func (s *importService) ImportProject(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.importSchema(ctx, schema)
}

func (s *importService) ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error) {
	return s.importSchema(ctx, schema)
}

func (s *importService) importSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	fields := map[string]any{"tiles": len(schema.Tiles)}
	defer observe(ctx, s.observer, "project.import", time.Now(), &err, fields)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	generated, err := importer.Convert(schema, s.now())
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	result = &ImportResult{Project: generated.Project, TileCount: len(generated.Tiles)}
	for _, t := range generated.Tiles {
		result.BOMLineCount += len(t.BOM)
		result.DependencyCount += len(t.Dependencies)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteProjectRepo(tx).Create(ctx, generated.Project); err != nil {
			return fmt.Errorf("creating project: %w", err)
		}
		txTiles := repository.NewSQLiteTileRepo(tx)
		for _, t := range generated.Tiles {
			if err := txTiles.Create(ctx, t); err != nil {
				return fmt.Errorf("creating tile %q: %w", t.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["project_id"] = generated.Project.ID
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
