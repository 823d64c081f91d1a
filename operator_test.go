// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperatorString(t *testing.T) {
	cases := map[Operator]string{
		OpAnd:    "and",
		OpOr:     "or",
		OpXor:    "xor",
		OpIff:    "iff",
		OpImp:    "imp",
		OpAndNot: "and_not",
	}
	for op, want := range cases {
		assert.Equal(t, want, op.String())
	}
}

// nonTerminal is a NodeId that is not ZeroNode or OneNode, standing in for a
// node belonging to some other Bdd's array. A terminal shortcut must never
// return this value (or anything derived from it) as a result: doing so
// would bake a foreign-array address into the freshly built result Bdd.
const nonTerminal = NodeId(5)

func TestAndTerminal(t *testing.T) {
	r, ok := andTerminal(ZeroNode, nonTerminal)
	assert.True(t, ok)
	assert.Equal(t, ZeroNode, r)

	r, ok = andTerminal(OneNode, OneNode)
	assert.True(t, ok)
	assert.Equal(t, OneNode, r)

	// ONE AND x for a non-terminal x cannot resolve without inspecting x's
	// own structure, so it must recurse rather than pass x through.
	_, ok = andTerminal(OneNode, nonTerminal)
	assert.False(t, ok)

	_, ok = andTerminal(nonTerminal, nonTerminal)
	assert.False(t, ok)
}

func TestOrTerminal(t *testing.T) {
	r, ok := orTerminal(OneNode, nonTerminal)
	assert.True(t, ok)
	assert.Equal(t, OneNode, r)

	r, ok = orTerminal(ZeroNode, ZeroNode)
	assert.True(t, ok)
	assert.Equal(t, ZeroNode, r)

	_, ok = orTerminal(ZeroNode, nonTerminal)
	assert.False(t, ok)

	_, ok = orTerminal(nonTerminal, nonTerminal)
	assert.False(t, ok)
}

func TestXorTerminal(t *testing.T) {
	r, ok := xorTerminal(ZeroNode, OneNode)
	assert.True(t, ok)
	assert.Equal(t, OneNode, r)

	r, ok = xorTerminal(OneNode, OneNode)
	assert.True(t, ok)
	assert.Equal(t, ZeroNode, r)

	_, ok = xorTerminal(ZeroNode, nonTerminal)
	assert.False(t, ok)

	_, ok = xorTerminal(OneNode, nonTerminal)
	assert.False(t, ok)
}

func TestIffTerminal(t *testing.T) {
	r, ok := iffTerminal(OneNode, OneNode)
	assert.True(t, ok)
	assert.Equal(t, OneNode, r)

	r, ok = iffTerminal(ZeroNode, OneNode)
	assert.True(t, ok)
	assert.Equal(t, ZeroNode, r)

	_, ok = iffTerminal(OneNode, nonTerminal)
	assert.False(t, ok)

	_, ok = iffTerminal(ZeroNode, nonTerminal)
	assert.False(t, ok)
}

func TestImpTerminal(t *testing.T) {
	r, ok := impTerminal(ZeroNode, nonTerminal)
	assert.True(t, ok)
	assert.Equal(t, OneNode, r)

	r, ok = impTerminal(nonTerminal, OneNode)
	assert.True(t, ok)
	assert.Equal(t, OneNode, r)

	r, ok = impTerminal(OneNode, ZeroNode)
	assert.True(t, ok)
	assert.Equal(t, ZeroNode, r)

	// ONE -> x for a non-terminal x is NOT x, which needs x's structure.
	_, ok = impTerminal(OneNode, nonTerminal)
	assert.False(t, ok)
}

func TestAndNotTerminal(t *testing.T) {
	r, ok := andNotTerminal(ZeroNode, nonTerminal)
	assert.True(t, ok)
	assert.Equal(t, ZeroNode, r)

	r, ok = andNotTerminal(nonTerminal, OneNode)
	assert.True(t, ok)
	assert.Equal(t, ZeroNode, r)

	r, ok = andNotTerminal(OneNode, ZeroNode)
	assert.True(t, ok)
	assert.Equal(t, OneNode, r)

	_, ok = andNotTerminal(nonTerminal, ZeroNode)
	assert.False(t, ok)
}

func TestPickTerminalFuncPanicsOnUnknownOperator(t *testing.T) {
	assert.Panics(t, func() {
		pickTerminalFunc(Operator(255))
	})
}
