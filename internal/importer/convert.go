package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// GeneratedProject holds the domain objects an import file produces.
// Tiles are ordered so that every tile follows its prerequisites.
type GeneratedProject struct {
	Project *domain.Project
	Tiles   []*domain.Tile
}

// Convert transforms a validated ImportSchema into domain objects ready for persistence.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema, now time.Time) (*GeneratedProject, error) {
	deadline, err := parseOptionalDate(schema.Project.Deadline)
	if err != nil {
		return nil, fmt.Errorf("parsing project deadline: %w", err)
	}

	project := &domain.Project{
		ID:        uuid.New().String(),
		Number:    schema.Project.Number,
		Name:      schema.Project.Name,
		Client:    schema.Project.Client,
		Manager:   schema.Project.Manager,
		Budget:    schema.Project.Budget,
		Deadline:  deadline,
		Status:    domain.ProjectNew,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	refMap := make(map[string]string) // ref -> UUID
	tiles := make([]*domain.Tile, 0, len(schema.Tiles))
	for _, ti := range schema.Tiles {
		id := uuid.New().String()
		refMap[ti.Ref] = id

		tileDeadline, err := parseOptionalDate(ti.Deadline)
		if err != nil {
			return nil, fmt.Errorf("parsing deadline of tile %q: %w", ti.Ref, err)
		}

		status := domain.TileStatus(ti.Status)
		if status == "" {
			status = domain.TileQueued
		}

		deps := make([]string, 0, len(ti.DependsOn))
		for _, ref := range ti.DependsOn {
			depID, ok := refMap[ref]
			if !ok {
				return nil, fmt.Errorf("tile %q depends on unknown ref %q", ti.Ref, ref)
			}
			deps = append(deps, depID)
		}

		bom := make([]domain.BOMLine, 0, len(ti.BOM))
		for _, line := range ti.BOM {
			bom = append(bom, bomLine(line))
		}

		tiles = append(tiles, &domain.Tile{
			ID:           id,
			Name:         ti.Name,
			Status:       status,
			ProjectID:    project.ID,
			LaborCost:    ti.LaborCost,
			BOM:          bom,
			Priority:     domain.Priority(ti.Priority),
			Designer:     ti.Designer,
			Technology:   ti.Technology,
			Deadline:     tileDeadline,
			Dependencies: deps,
			Version:      1,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	return &GeneratedProject{Project: project, Tiles: tiles}, nil
}

func bomLine(l BOMLineImport) domain.BOMLine {
	typ := domain.BOMLineType(l.Type)
	if typ == "" {
		typ = domain.BOMRawMaterial
	}
	return domain.BOMLine{
		Type:       typ,
		Name:       l.Name,
		Quantity:   l.Quantity,
		Unit:       l.Unit,
		UnitCost:   l.UnitCost,
		Status:     domain.BOMUnknown,
		Supplier:   l.Supplier,
		MaterialID: l.MaterialID,
	}
}

func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, *s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
