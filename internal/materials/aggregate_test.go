package materials

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kamilarndt/fabmanagenew-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cost(v float64) *float64 { return &v }

func mdfTiles() []domain.Tile {
	return []domain.Tile{
		{
			ID: "t-1", ProjectID: "p-1",
			BOM: []domain.BOMLine{
				{ID: "b-1", Type: domain.BOMRawMaterial, Name: "MDF", Unit: "m2", Quantity: 3, UnitCost: cost(50), Status: domain.BOMInStock},
			},
		},
		{
			ID: "t-2", ProjectID: "p-1",
			BOM: []domain.BOMLine{
				{ID: "b-2", Type: domain.BOMRawMaterial, Name: "MDF", Unit: "m2", Quantity: 2, UnitCost: cost(50), Status: domain.BOMToOrder},
				{ID: "b-3", Type: domain.BOMService, Name: "Lakierowanie", Unit: "m2", Quantity: 5},
			},
		},
	}
}

func find(t *testing.T, got []domain.MaterialSummary, name, unit string) domain.MaterialSummary {
	t.Helper()
	for _, s := range got {
		if s.Name == name && s.Unit == unit {
			return s
		}
	}
	t.Fatalf("no summary for (%s, %s)", name, unit)
	return domain.MaterialSummary{}
}

func TestAggregate_SumsSameKey(t *testing.T) {
	got, skipped := Aggregate(mdfTiles())
	require.Empty(t, skipped)
	require.Len(t, got, 2)

	mdf := find(t, got, "MDF", "m2")
	assert.Equal(t, 5.0, mdf.TotalQuantity)
	assert.Equal(t, 250.0, mdf.TotalCost)
	assert.Equal(t, 50.0, mdf.UnitCost)
	assert.Len(t, mdf.Tiles, 2)
	assert.Equal(t, []string{"p-1"}, mdf.Projects)
}

func TestAggregate_FirstSeenStatusWins(t *testing.T) {
	got, _ := Aggregate(mdfTiles())
	assert.Equal(t, domain.BOMInStock, find(t, got, "MDF", "m2").Status)
}

func TestAggregate_MissingCostAndStatus(t *testing.T) {
	got, _ := Aggregate(mdfTiles())
	lak := find(t, got, "Lakierowanie", "m2")
	assert.Equal(t, 0.0, lak.TotalCost)
	assert.Equal(t, domain.BOMUnknown, lak.Status)
}

func TestAggregate_DifferentUnitsAreSeparate(t *testing.T) {
	tiles := []domain.Tile{{ID: "t-1", BOM: []domain.BOMLine{
		{Name: "Sklejka", Unit: "m2", Quantity: 1},
		{Name: "Sklejka", Unit: "szt", Quantity: 4},
	}}}

	got, _ := Aggregate(tiles)

	require.Len(t, got, 2)
	assert.Equal(t, "m2", got[0].Unit)
	assert.Equal(t, "szt", got[1].Unit)
	assert.Empty(t, got[0].Projects, "tile without project contributes no project id")
}

func TestAggregate_SkipsMalformedLines(t *testing.T) {
	tiles := []domain.Tile{{ID: "t-1", BOM: []domain.BOMLine{
		{ID: "no-name", Unit: "m2", Quantity: 1},
		{ID: "no-unit", Name: "MDF", Quantity: 1},
		{ID: "ok", Name: "MDF", Unit: "m2", Quantity: 1},
	}}}

	got, skipped := Aggregate(tiles)

	require.Len(t, got, 1)
	assert.Equal(t, 1.0, got[0].TotalQuantity)
	require.Len(t, skipped, 2)
	assert.Equal(t, "no-name", skipped[0].LineID)
	assert.Equal(t, "missing unit", skipped[1].Reason)
	assert.True(t, errors.Is(skipped[0], domain.ErrInvalidBOMLine))
}

func TestAggregate_SkipsNonFiniteLines(t *testing.T) {
	inf := math.Inf(1)
	tiles := []domain.Tile{{ID: "t-1", BOM: []domain.BOMLine{
		{ID: "nan", Name: "MDF", Unit: "m2", Quantity: math.NaN()},
		{ID: "inf-cost", Name: "MDF", Unit: "m2", Quantity: 1, UnitCost: &inf},
		{ID: "ok", Name: "MDF", Unit: "m2", Quantity: 2},
	}}}

	got, skipped := Aggregate(tiles)

	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got[0].TotalQuantity)
	require.Len(t, skipped, 2)
	assert.Equal(t, "quantity is not a finite number", skipped[0].Reason)
	assert.Equal(t, "unit cost is not a finite number", skipped[1].Reason)
}

func TestAggregate_Pure(t *testing.T) {
	tiles := mdfTiles()
	first, _ := Aggregate(tiles)
	second, _ := Aggregate(tiles)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second call differs (-first +second):\n%s", diff)
	}
	assert.Equal(t, mdfTiles(), tiles, "input tiles are not modified")
}

func TestAggregate_OrderIndependentTotalsAndSets(t *testing.T) {
	tiles := []domain.Tile{
		{ID: "t-1", ProjectID: "p-2", BOM: []domain.BOMLine{{Name: "MDF", Unit: "m2", Quantity: 1, UnitCost: cost(10)}}},
		{ID: "t-2", ProjectID: "p-1", BOM: []domain.BOMLine{{Name: "MDF", Unit: "m2", Quantity: 2, UnitCost: cost(10)}}},
		{ID: "t-3", ProjectID: "p-1", BOM: []domain.BOMLine{{Name: "Klej", Unit: "l", Quantity: 4, UnitCost: cost(5)}}},
	}
	reversed := []domain.Tile{tiles[2], tiles[1], tiles[0]}

	a, _ := Aggregate(tiles)
	b, _ := Aggregate(reversed)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("input order changed the result (-forward +reversed):\n%s", diff)
	}
	assert.Equal(t, []string{"p-1", "p-2"}, find(t, a, "MDF", "m2").Projects)
}

func TestAggregate_Empty(t *testing.T) {
	got, skipped := Aggregate(nil)
	assert.Empty(t, got)
	assert.Empty(t, skipped)
}
