package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

const dateLayout = "2006-01-02"

var validBOMTypes = map[domain.BOMLineType]bool{
	"":                          true,
	domain.BOMRawMaterial:       true,
	domain.BOMFinishedComponent: true,
	domain.BOMService:           true,
}

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	errs = append(errs, validateProject(&schema.Project)...)
	errs = append(errs, validateTiles(schema.Tiles)...)
	return errs
}

func validateProject(p *ProjectImport) []error {
	var errs []error

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	if err := (&domain.Project{Number: p.Number}).ValidateNumber(); err != nil {
		errs = append(errs, fmt.Errorf("project.number: %w", err))
	}
	if !domain.IsFinite(p.Budget) || p.Budget < 0 {
		errs = append(errs, fmt.Errorf("project.budget must be a non-negative number"))
	}
	if p.Deadline != nil {
		if _, err := time.Parse(dateLayout, *p.Deadline); err != nil {
			errs = append(errs, fmt.Errorf("project.deadline: invalid date format %q (expected YYYY-MM-DD)", *p.Deadline))
		}
	}

	return errs
}

// validateTiles requires unique refs and dependencies on tiles declared
// earlier in the file, which rules out cycles.
func validateTiles(tiles []TileImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, t := range tiles {
		prefix := fmt.Sprintf("tiles[%d]", i)

		if t.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if seen[t.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, t.Ref))
		}
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if t.Status != "" {
			if _, err := domain.ParseTileStatus(t.Status); err != nil {
				errs = append(errs, fmt.Errorf("%s.status: %w", prefix, err))
			}
		}
		if _, err := domain.ParsePriority(t.Priority); err != nil {
			errs = append(errs, fmt.Errorf("%s.priority: %w", prefix, err))
		}
		if !domain.IsFinite(t.LaborCost) || t.LaborCost < 0 {
			errs = append(errs, fmt.Errorf("%s.labor_cost must be a non-negative number", prefix))
		}
		if t.Deadline != nil {
			if _, err := time.Parse(dateLayout, *t.Deadline); err != nil {
				errs = append(errs, fmt.Errorf("%s.deadline: invalid date format %q (expected YYYY-MM-DD)", prefix, *t.Deadline))
			}
		}

		for _, dep := range t.DependsOn {
			switch {
			case dep == t.Ref:
				errs = append(errs, fmt.Errorf("%s.depends_on: tile cannot depend on itself", prefix))
			case !seen[dep]:
				errs = append(errs, fmt.Errorf("%s.depends_on: ref %q must name a tile declared earlier", prefix, dep))
			}
		}

		for j, line := range t.BOM {
			linePrefix := fmt.Sprintf("%s.bom[%d]", prefix, j)
			if !validBOMTypes[domain.BOMLineType(line.Type)] {
				errs = append(errs, fmt.Errorf("%s.type: invalid value %q", linePrefix, line.Type))
			}
			if err := bomLine(line).Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", linePrefix, err))
			}
		}

		if t.Ref != "" {
			seen[t.Ref] = true
		}
	}

	return errs
}
