package importer

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

var importedAt = time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestConvert_MinimalProject(t *testing.T) {
	gen, err := Convert(validMinimalSchema(), importedAt)
	require.NoError(t, err)

	assert.NotEmpty(t, gen.Project.ID)
	assert.Equal(t, "P-001", gen.Project.Number)
	assert.Equal(t, domain.ProjectNew, gen.Project.Status)
	assert.Equal(t, 1, gen.Project.Version)
	assert.Equal(t, importedAt, gen.Project.CreatedAt)
	assert.Nil(t, gen.Project.Deadline)

	require.Len(t, gen.Tiles, 1)
	tile := gen.Tiles[0]
	assert.NotEmpty(t, tile.ID)
	assert.Equal(t, gen.Project.ID, tile.ProjectID)
	assert.Equal(t, domain.TileQueued, tile.Status)
	assert.Empty(t, tile.Dependencies)
}

func TestConvert_ResolvesRefsAndBOM(t *testing.T) {
	schema := &ImportSchema{
		Project: ProjectImport{Name: "Scenografia", Deadline: ptrStr("2025-09-01")},
		Tiles: []TileImport{
			{Ref: "podest", Name: "Podest"},
			{Ref: "sciana", Name: "Ściana", Status: "Projektowanie", Priority: "Wysoki", DependsOn: []string{"podest"},
				BOM: []BOMLineImport{
					{Name: "MDF", Quantity: 4, Unit: "m2", UnitCost: ptrFloat(50), MaterialID: "mdf"},
					{Type: "Usługa", Name: "Transport", Quantity: 1, Unit: "kurs"},
				}},
		},
	}

	gen, err := Convert(schema, importedAt)
	require.NoError(t, err)

	require.NotNil(t, gen.Project.Deadline)
	assert.Equal(t, "2025-09-01", gen.Project.Deadline.Format("2006-01-02"))

	require.Len(t, gen.Tiles, 2)
	podest, sciana := gen.Tiles[0], gen.Tiles[1]
	assert.NotEqual(t, podest.ID, sciana.ID)
	assert.Equal(t, []string{podest.ID}, sciana.Dependencies)
	assert.Equal(t, domain.TileDesign, sciana.Status)
	assert.Equal(t, domain.PriorityHigh, sciana.Priority)

	require.Len(t, sciana.BOM, 2)
	assert.Equal(t, domain.BOMRawMaterial, sciana.BOM[0].Type, "type defaults to raw material")
	assert.Equal(t, "mdf", sciana.BOM[0].MaterialID)
	assert.InDelta(t, 200.0, sciana.MaterialCost(), 1e-9)
	assert.Equal(t, domain.BOMService, sciana.BOM[1].Type)
	assert.Nil(t, sciana.BOM[1].UnitCost)
}

func TestConvert_UnknownRef(t *testing.T) {
	schema := &ImportSchema{
		Project: ProjectImport{Name: "X"},
		Tiles:   []TileImport{{Ref: "a", Name: "A", DependsOn: []string{"b"}}},
	}
	_, err := Convert(schema, importedAt)
	assert.ErrorContains(t, err, `unknown ref "b"`)
}
