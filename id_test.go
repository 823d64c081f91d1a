// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeIdAddr(t *testing.T) {
	assert.Equal(t, uint64(0), ZeroNode.Addr())
	assert.Equal(t, uint64(1), OneNode.Addr())

	tagged := NodeId(uint64(42) | (uint64(0xBEEF) << idAddressBits))
	assert.Equal(t, uint64(42), tagged.Addr())
}

func TestNodeIdIsTerminal(t *testing.T) {
	assert.True(t, ZeroNode.IsTerminal())
	assert.True(t, OneNode.IsTerminal())
	assert.False(t, NodeId(2).IsTerminal())
}

func TestUndefinedVariableIsMaximal(t *testing.T) {
	assert.Greater(t, uint64(UndefinedVariable), uint64(0))
	assert.Greater(t, UndefinedVariable, VariableId(1<<20))
}
