// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportOfConstant(t *testing.T) {
	set := Support(Zero())
	assert.Equal(t, uint(0), set.Count())

	set = Support(One())
	assert.Equal(t, uint(0), set.Count())
}

func TestSupportOfSingleVariable(t *testing.T) {
	set := Support(Var(3))
	assert.Equal(t, uint(1), set.Count())
	assert.True(t, set.Test(3))
}

func TestSupportOfCombinedFunction(t *testing.T) {
	x, y, z := Var(0), Var(1), Var(2)
	f := Or(And(x, y), z)
	set := Support(f)
	assert.True(t, set.Test(0))
	assert.True(t, set.Test(1))
	assert.True(t, set.Test(2))
	assert.Equal(t, uint(3), set.Count())
}

func TestSupportIgnoresUnreachableVariable(t *testing.T) {
	// x0 AND (x0 OR x1) collapses to just x0; x1 never appears in the
	// result even though the second input mentions it, so support must
	// reflect the reduced function, not the inputs' union.
	x, y := Var(0), Var(1)
	f := And(x, Or(x, y))
	set := Support(f)
	assert.True(t, set.Test(0))
	assert.False(t, set.Test(1))
}
