package repository

import (
	"context"
	"testing"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// depTestSetup creates two tiles for dependency tests.
func depTestSetup(t *testing.T) (*SQLiteDependencyRepo, *SQLiteTileRepo, *domain.Tile, *domain.Tile) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	tileRepo := NewSQLiteTileRepo(db)
	depRepo := NewSQLiteDependencyRepo(db)

	frame := testutil.NewTestTile("Rama")
	require.NoError(t, tileRepo.Create(ctx, frame))

	panel := testutil.NewTestTile("Panel")
	require.NoError(t, tileRepo.Create(ctx, panel))

	return depRepo, tileRepo, frame, panel
}

func TestDependencyRepo_CreateAndList(t *testing.T) {
	depRepo, _, frame, panel := depTestSetup(t)
	ctx := context.Background()

	require.NoError(t, depRepo.Create(ctx, domain.TileDependency{TileID: panel.ID, DependsOnID: frame.ID}))

	prereqs, err := depRepo.ListPrerequisites(ctx, panel.ID)
	require.NoError(t, err)
	require.Len(t, prereqs, 1)
	assert.Equal(t, frame.ID, prereqs[0].DependsOnID)

	dependents, err := depRepo.ListDependents(ctx, frame.ID)
	require.NoError(t, err)
	require.Len(t, dependents, 1)
	assert.Equal(t, panel.ID, dependents[0].TileID)
}

func TestDependencyRepo_CreateIsIdempotent(t *testing.T) {
	depRepo, _, frame, panel := depTestSetup(t)
	ctx := context.Background()

	dep := domain.TileDependency{TileID: panel.ID, DependsOnID: frame.ID}
	require.NoError(t, depRepo.Create(ctx, dep))
	require.NoError(t, depRepo.Create(ctx, dep))

	prereqs, err := depRepo.ListPrerequisites(ctx, panel.ID)
	require.NoError(t, err)
	assert.Len(t, prereqs, 1)
}

func TestDependencyRepo_SelfDependencyRejected(t *testing.T) {
	depRepo, _, frame, _ := depTestSetup(t)
	ctx := context.Background()
	err := depRepo.Create(ctx, domain.TileDependency{TileID: frame.ID, DependsOnID: frame.ID})
	assert.ErrorContains(t, err, "inserting dependency")

	prereqs, err := depRepo.ListPrerequisites(ctx, frame.ID)
	require.NoError(t, err)
	assert.Empty(t, prereqs)
}

func TestDependencyRepo_Delete(t *testing.T) {
	depRepo, _, frame, panel := depTestSetup(t)
	ctx := context.Background()

	require.NoError(t, depRepo.Create(ctx, domain.TileDependency{TileID: panel.ID, DependsOnID: frame.ID}))
	require.NoError(t, depRepo.Delete(ctx, panel.ID, frame.ID))

	prereqs, err := depRepo.ListPrerequisites(ctx, panel.ID)
	require.NoError(t, err)
	assert.Empty(t, prereqs)
}

func TestDependencyRepo_HasUnfinishedPrerequisites(t *testing.T) {
	depRepo, tileRepo, frame, panel := depTestSetup(t)
	ctx := context.Background()

	require.NoError(t, depRepo.Create(ctx, domain.TileDependency{TileID: panel.ID, DependsOnID: frame.ID}))

	blocked, err := depRepo.HasUnfinishedPrerequisites(ctx, panel.ID)
	require.NoError(t, err)
	assert.True(t, blocked, "frame is still queued")

	frame.Status = domain.TileDone
	require.NoError(t, tileRepo.UpdateStatus(ctx, frame))

	blocked, err = depRepo.HasUnfinishedPrerequisites(ctx, panel.ID)
	require.NoError(t, err)
	assert.False(t, blocked)
}
