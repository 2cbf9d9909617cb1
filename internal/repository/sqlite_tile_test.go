package repository

import (
	"context"
	"testing"
	"time"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteTileRepo(db)
	ctx := context.Background()

	proj := testutil.NewTestProject("Stoisko")
	require.NoError(t, projects.Create(ctx, proj))

	deadline := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	noCost := domain.BOMLine{Type: domain.BOMService, Name: "Lakierowanie", Unit: "m2", Quantity: 4}
	tile := testutil.NewTestTile("Lada",
		testutil.WithProject(proj.ID),
		testutil.WithLaborCost(24),
		testutil.WithPriority(domain.PriorityHigh),
		testutil.WithDesigner("anna"),
		testutil.WithTileDeadline(deadline),
		testutil.WithBOM(testutil.NewTestBOMLine("MDF", "m2", 3, 50), noCost),
	)
	tile.Technology = "CNC"
	require.NoError(t, repo.Create(ctx, tile))

	fetched, err := repo.GetByID(ctx, tile.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lada", fetched.Name)
	assert.Equal(t, proj.ID, fetched.ProjectID)
	assert.Equal(t, domain.TileQueued, fetched.Status)
	assert.Equal(t, 24.0, fetched.LaborCost)
	assert.Equal(t, domain.PriorityHigh, fetched.Priority)
	assert.Equal(t, "anna", fetched.Designer)
	assert.Equal(t, "CNC", fetched.Technology)
	require.NotNil(t, fetched.Deadline)
	assert.True(t, deadline.Equal(*fetched.Deadline))

	require.Len(t, fetched.BOM, 2)
	assert.NotEmpty(t, fetched.BOM[0].ID, "line ids are assigned on insert")
	assert.Equal(t, "MDF", fetched.BOM[0].Name)
	require.NotNil(t, fetched.BOM[0].UnitCost)
	assert.Equal(t, 50.0, *fetched.BOM[0].UnitCost)
	assert.Nil(t, fetched.BOM[1].UnitCost, "missing unit cost stays missing")
	assert.Equal(t, 150.0, fetched.MaterialCost())
}

func TestTileRepo_WithoutProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTileRepo(db)
	ctx := context.Background()

	tile := testutil.NewTestTile("Luźny")
	require.NoError(t, repo.Create(ctx, tile))

	fetched, err := repo.GetByID(ctx, tile.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.ProjectID)
	assert.Empty(t, fetched.BOM)
}

func TestTileRepo_Dependencies(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTileRepo(db)
	ctx := context.Background()

	frame := testutil.NewTestTile("Rama")
	require.NoError(t, repo.Create(ctx, frame))
	panel := testutil.NewTestTile("Panel", testutil.WithDependencies(frame.ID))
	require.NoError(t, repo.Create(ctx, panel))

	fetched, err := repo.GetByID(ctx, panel.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{frame.ID}, fetched.Dependencies)
}

func TestTileRepo_ListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	repo := NewSQLiteTileRepo(db)
	ctx := context.Background()

	p1 := testutil.NewTestProject("P1")
	p2 := testutil.NewTestProject("P2")
	require.NoError(t, projects.Create(ctx, p1))
	require.NoError(t, projects.Create(ctx, p2))

	require.NoError(t, repo.Create(ctx, testutil.NewTestTile("A", testutil.WithProject(p1.ID),
		testutil.WithBOM(testutil.NewTestBOMLine("MDF", "m2", 1, 10)))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTile("B", testutil.WithProject(p1.ID), testutil.WithStatus(domain.TileDesign))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTile("C", testutil.WithProject(p2.ID))))

	all, err := repo.List(ctx, TileFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	inP1, err := repo.List(ctx, TileFilter{ProjectID: p1.ID})
	require.NoError(t, err)
	require.Len(t, inP1, 2)

	var withBOM int
	for _, tile := range inP1 {
		withBOM += len(tile.BOM)
	}
	assert.Equal(t, 1, withBOM, "list hydrates BOM lines")

	design, err := repo.List(ctx, TileFilter{ProjectID: p1.ID, Status: domain.TileDesign})
	require.NoError(t, err)
	require.Len(t, design, 1)
	assert.Equal(t, "B", design[0].Name)
}

func TestTileRepo_UpdateStatus_VersionCheck(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTileRepo(db)
	ctx := context.Background()

	tile := testutil.NewTestTile("Panel")
	require.NoError(t, repo.Create(ctx, tile))
	stale := *tile

	tile.Status = domain.TileDesign
	require.NoError(t, repo.UpdateStatus(ctx, tile))
	assert.Equal(t, 2, tile.Version)

	stale.Status = domain.TileOnHold
	err := repo.UpdateStatus(ctx, &stale)
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	assert.Equal(t, 1, stale.Version, "version is unchanged on conflict")

	fetched, err := repo.GetByID(ctx, tile.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TileDesign, fetched.Status)
}

func TestTileRepo_UpdateStatus_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTileRepo(db)

	err := repo.UpdateStatus(context.Background(), &domain.Tile{ID: "missing", Version: 1, Status: domain.TileDesign})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTileRepo_ReplaceBOM(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTileRepo(db)
	ctx := context.Background()

	tile := testutil.NewTestTile("Panel", testutil.WithBOM(testutil.NewTestBOMLine("MDF", "m2", 1, 10)))
	require.NoError(t, repo.Create(ctx, tile))

	tile.BOM = []domain.BOMLine{
		testutil.NewTestBOMLine("Sklejka", "m2", 2, 80),
		testutil.NewTestBOMLine("Klej", "l", 1, 30),
	}
	require.NoError(t, repo.ReplaceBOM(ctx, tile))
	assert.Equal(t, 2, tile.Version)

	fetched, err := repo.GetByID(ctx, tile.ID)
	require.NoError(t, err)
	require.Len(t, fetched.BOM, 2)
	assert.Equal(t, "Sklejka", fetched.BOM[0].Name)
	assert.Equal(t, "Klej", fetched.BOM[1].Name)
}

func TestTileRepo_InvalidStatusRejectedByStore(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTileRepo(db)

	tile := testutil.NewTestTile("Panel", testutil.WithStatus("W produkcji"))
	assert.Error(t, repo.Create(context.Background(), tile))
}

func TestTileRepo_Delete(t *testing.T) {
	repo := NewSQLiteTileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	tile := testutil.NewTestTile("Podest", testutil.WithBOM(testutil.NewTestBOMLine("MDF", "m2", 1, 50)))
	require.NoError(t, repo.Create(ctx, tile))

	require.NoError(t, repo.Delete(ctx, tile.ID))
	_, err := repo.GetByID(ctx, tile.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, tile.ID), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "missing"), domain.ErrNotFound)
}
