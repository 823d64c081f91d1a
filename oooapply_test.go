// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReorderBufferAllocReleaseResolve(t *testing.T) {
	r := newReorderBuffer(4)
	require.True(t, r.hasFreeSlot())

	a := r.alloc()
	_, ok := r.get(a)
	assert.False(t, ok)

	r.resolve(a, NodeId(7))
	v, ok := r.get(a)
	assert.True(t, ok)
	assert.Equal(t, NodeId(7), v)

	r.release(a)
	b := r.alloc()
	assert.Equal(t, a, b, "a freed slot should be reused before a fresh one")
}

func TestReorderBufferExhaustion(t *testing.T) {
	r := newReorderBuffer(2)
	r.alloc()
	r.alloc()
	assert.False(t, r.hasFreeSlot())
}

func TestExecutionQueuePushAndDrainOrder(t *testing.T) {
	q := newExecutionQueue(4)
	assert.True(t, q.empty())

	q.push(oooTask{left: NodeId(1)})
	q.push(oooTask{left: NodeId(2)})
	assert.False(t, q.empty())
	assert.True(t, q.hasFreeSlot())

	assert.Equal(t, NodeId(1), q.atExec().left)
	q.execHead++
	assert.Equal(t, NodeId(2), q.atExec().left)

	assert.Equal(t, NodeId(1), q.atRetire().left)
	q.retireHead++
	assert.Equal(t, NodeId(2), q.atRetire().left)
	q.retireHead++
	assert.True(t, q.empty())
}

func TestExecutionQueueWrapsAroundCircularBuffer(t *testing.T) {
	q := newExecutionQueue(2)
	q.push(oooTask{left: NodeId(1)})
	q.push(oooTask{left: NodeId(2)})
	assert.False(t, q.hasFreeSlot())

	q.execHead++
	q.retireHead++
	assert.True(t, q.hasFreeSlot())

	q.push(oooTask{left: NodeId(3)})
	assert.Equal(t, NodeId(2), q.atExec().left)
}

func TestRobSlotUnsetPendingResolved(t *testing.T) {
	assert.True(t, robUnsetSlot.isUnset())

	pending := robPending(3)
	assert.False(t, pending.isUnset())
	assert.True(t, pending.isPending())
	assert.Equal(t, uint32(3), pending.slot())

	resolved := robResolved(NodeId(9))
	assert.False(t, resolved.isUnset())
	assert.False(t, resolved.isPending())
	assert.Equal(t, NodeId(9), resolved.resolved())
}

func TestApplyPipelinedAgainstDisjointVariables(t *testing.T) {
	x, y := Var(0), Var(1)
	result := ApplyPipelined(x, y, OpAnd)
	for _, a := range allAssignments([]VariableId{0, 1}) {
		assert.Equal(t, a[0] && a[1], evalBdd(t, result, a))
	}
}

func TestApplyPipelinedHandlesConstantShortcut(t *testing.T) {
	x := Var(0)
	assert.True(t, ApplyPipelined(x, Zero(), OpAnd).IsZero())
	assert.True(t, ApplyPipelined(x, One(), OpOr).IsOne())
}
