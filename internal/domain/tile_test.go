package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func costPtr(v float64) *float64 { return &v }

func TestBOMLineValidate(t *testing.T) {
	valid := BOMLine{Name: "MDF 18mm", Unit: "m2", Quantity: 2, UnitCost: costPtr(50)}
	assert.NoError(t, valid.Validate())

	noCost := valid
	noCost.UnitCost = nil
	assert.NoError(t, noCost.Validate())

	cases := map[string]BOMLine{
		"missing name":       {Unit: "m2", Quantity: 1},
		"missing unit":       {Name: "MDF", Quantity: 1},
		"zero quantity":      {Name: "MDF", Unit: "m2", Quantity: 0},
		"negative quantity":  {Name: "MDF", Unit: "m2", Quantity: -1},
		"NaN quantity":       {Name: "MDF", Unit: "m2", Quantity: math.NaN()},
		"infinite quantity":  {Name: "MDF", Unit: "m2", Quantity: math.Inf(1)},
		"negative unit cost": {Name: "MDF", Unit: "m2", Quantity: 1, UnitCost: costPtr(-5)},
		"NaN unit cost":      {Name: "MDF", Unit: "m2", Quantity: 1, UnitCost: costPtr(math.NaN())},
		"infinite unit cost": {Name: "MDF", Unit: "m2", Quantity: 1, UnitCost: costPtr(math.Inf(-1))},
	}
	for name, line := range cases {
		err := line.Validate()
		assert.True(t, errors.Is(err, ErrInvalidBOMLine), "%s: got %v", name, err)
	}
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0))
	assert.True(t, IsFinite(-12.5))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "anna", CoalesceStr("", "anna", "piotr"))
	assert.Equal(t, "", CoalesceStr("", ""))
}
