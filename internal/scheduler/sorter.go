package scheduler

import (
	"sort"

	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
)

// CanonicalSort sorts tiles by the deterministic scheduling rules:
// 1. Priority: Wysoki > Średni > Niski > unset
// 2. Deadline: earliest first (nil last)
// 3. Name: lexical ascending
// 4. Tile ID: lexical ascending
func CanonicalSort(tiles []domain.Tile) {
	sort.SliceStable(tiles, func(i, j int) bool {
		a, b := tiles[i], tiles[j]

		// 1. Priority
		if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
			return ra < rb
		}

		// 2. Deadline (earliest first, nil last)
		if (a.Deadline == nil) != (b.Deadline == nil) {
			return a.Deadline != nil
		}
		if a.Deadline != nil && b.Deadline != nil && !a.Deadline.Equal(*b.Deadline) {
			return a.Deadline.Before(*b.Deadline)
		}

		// 3. Name
		if a.Name != b.Name {
			return a.Name < b.Name
		}

		// 4. ID
		return a.ID < b.ID
	})
}

// OrderTiles returns tiles in scheduling order: canonical order, adjusted so
// every tile comes after the tiles it depends on. Dependencies outside the
// given set are ignored, and a dependency cycle is broken at the edge that
// closes it. The input slice is not modified.
func OrderTiles(tiles []domain.Tile) []domain.Tile {
	sorted := make([]domain.Tile, len(tiles))
	copy(sorted, tiles)
	CanonicalSort(sorted)

	index := make(map[string]int, len(sorted))
	for i, t := range sorted {
		index[t.ID] = i
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(sorted))
	out := make([]domain.Tile, 0, len(sorted))

	var visit func(i int)
	visit = func(i int) {
		if state[i] != unvisited {
			return
		}
		state[i] = visiting
		deps := make([]int, 0, len(sorted[i].Dependencies))
		for _, id := range sorted[i].Dependencies {
			if j, ok := index[id]; ok {
				deps = append(deps, j)
			}
		}
		sort.Ints(deps)
		for _, j := range deps {
			visit(j)
		}
		state[i] = done
		out = append(out, sorted[i])
	}

	for i := range sorted {
		visit(i)
	}
	return out
}
