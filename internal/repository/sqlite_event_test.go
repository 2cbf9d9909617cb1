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

func hour(h int) time.Time {
	return time.Date(2025, 6, 16, h, 0, 0, 0, time.UTC)
}

func newEvent(resource string, start, end int) *domain.CalendarEvent {
	return &domain.CalendarEvent{
		Title:      "Wycinanie: Panel",
		Start:      hour(start),
		End:        hour(end),
		ResourceID: resource,
		Phase:      domain.PhaseCutting,
		Tags:       []string{"wycinanie", "W TRAKCIE CIĘCIA"},
		Meta:       domain.EventMeta{TileID: "t-1", ProjectID: "p-1"},
	}
}

func TestEventRepo_CreateAssignsID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	ev := newEvent("cnc-1", 10, 12)
	require.NoError(t, repo.Create(ctx, ev))
	assert.NotEmpty(t, ev.ID)

	fetched, err := repo.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, ev.Title, fetched.Title)
	assert.True(t, ev.Start.Equal(fetched.Start))
	assert.True(t, ev.End.Equal(fetched.End))
	assert.Equal(t, "cnc-1", fetched.ResourceID)
	assert.Equal(t, domain.PhaseCutting, fetched.Phase)
	assert.Equal(t, []string{"wycinanie", "W TRAKCIE CIĘCIA"}, fetched.Tags)
	assert.Equal(t, domain.EventMeta{TileID: "t-1", ProjectID: "p-1"}, fetched.Meta)
}

func TestEventRepo_CreateRejectsInvalid(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)

	ev := newEvent("cnc-1", 12, 12)
	err := repo.Create(context.Background(), ev)
	assert.ErrorIs(t, err, domain.ErrInvalidEvent)
	assert.Empty(t, ev.ID)
}

func TestEventRepo_ListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	late := newEvent("cnc-1", 14, 15)
	early := newEvent("cnc-1", 8, 9)
	other := newEvent("team-1", 10, 11)
	other.Meta = domain.EventMeta{TileID: "t-2", ProjectID: "p-2"}
	for _, e := range []*domain.CalendarEvent{late, early, other} {
		require.NoError(t, repo.Create(ctx, e))
	}

	byResource, err := repo.List(ctx, EventFilter{ResourceID: "cnc-1"})
	require.NoError(t, err)
	require.Len(t, byResource, 2)
	assert.Equal(t, early.ID, byResource[0].ID, "ordered by start")

	byProject, err := repo.List(ctx, EventFilter{ProjectID: "p-2"})
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	assert.Equal(t, other.ID, byProject[0].ID)

	byTile, err := repo.List(ctx, EventFilter{TileID: "t-1"})
	require.NoError(t, err)
	assert.Len(t, byTile, 2)

	// [9:00, 14:00) overlaps only the 10-11 event; touching ends do not count.
	inRange, err := repo.List(ctx, EventFilter{From: hour(9), To: hour(14)})
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, other.ID, inRange[0].ID)
}

func TestEventRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	ev := newEvent("cnc-1", 10, 11)
	require.NoError(t, repo.Create(ctx, ev))
	require.NoError(t, repo.Delete(ctx, ev.ID))

	_, err := repo.GetByID(ctx, ev.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, ev.ID), domain.ErrNotFound)
}

func TestResourceRepo_CreateGetList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteResourceRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestResource("team-1", domain.ResourceTeam)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestResource("anna", domain.ResourceDesigner)))

	got, err := repo.GetByID(ctx, "anna")
	require.NoError(t, err)
	assert.Equal(t, domain.ResourceDesigner, got.Type)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "anna", all[0].ID, "designers sort before teams")

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bad := testutil.NewTestResource("x", "machine")
	assert.Error(t, repo.Create(ctx, bad), "unknown resource type is rejected")
}
