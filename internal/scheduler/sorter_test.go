package scheduler

import (
	"testing"
	"time"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
)

func makeTile(id string, p domain.Priority, deps ...string) domain.Tile {
	return domain.Tile{ID: id, Name: "tile " + id, Priority: p, Dependencies: deps}
}

func ids(tiles []domain.Tile) []string {
	out := make([]string, len(tiles))
	for i, t := range tiles {
		out[i] = t.ID
	}
	return out
}

func TestCanonicalSort_Priority(t *testing.T) {
	tiles := []domain.Tile{
		makeTile("a", ""),
		makeTile("b", domain.PriorityLow),
		makeTile("c", domain.PriorityHigh),
		makeTile("d", domain.PriorityMedium),
	}

	CanonicalSort(tiles)

	assert.Equal(t, []string{"c", "d", "b", "a"}, ids(tiles))
}

func TestCanonicalSort_DeadlineTiebreak(t *testing.T) {
	early := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	late := early.AddDate(0, 1, 0)
	a := makeTile("a", domain.PriorityMedium)
	b := makeTile("b", domain.PriorityMedium)
	c := makeTile("c", domain.PriorityMedium)
	a.Deadline = &late
	c.Deadline = &early
	tiles := []domain.Tile{a, b, c}

	CanonicalSort(tiles)

	assert.Equal(t, []string{"c", "a", "b"}, ids(tiles), "earlier deadline first, nil last")
}

func TestOrderTiles_DependenciesFirst(t *testing.T) {
	tiles := []domain.Tile{
		makeTile("assembly", domain.PriorityHigh, "frame", "panel"),
		makeTile("frame", domain.PriorityLow),
		makeTile("panel", domain.PriorityMedium, "frame"),
		makeTile("sign", domain.PriorityMedium),
	}

	got := OrderTiles(tiles)

	assert.Equal(t, []string{"frame", "panel", "assembly", "sign"}, ids(got))
	assert.Equal(t, "assembly", tiles[0].ID, "input is not modified")
}

func TestOrderTiles_CycleIsBroken(t *testing.T) {
	tiles := []domain.Tile{
		makeTile("a", domain.PriorityHigh, "b"),
		makeTile("b", domain.PriorityLow, "a"),
	}

	got := OrderTiles(tiles)

	assert.Len(t, got, 2)
	assert.Equal(t, []string{"b", "a"}, ids(got))
}

func TestOrderTiles_UnknownDependencyIgnored(t *testing.T) {
	got := OrderTiles([]domain.Tile{makeTile("a", "", "missing")})
	assert.Equal(t, []string{"a"}, ids(got))
}
