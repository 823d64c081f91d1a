// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskCacheMissThenHit(t *testing.T) {
	c := newTaskCache(8, 4)
	left, right := NodeId(2), NodeId(3)

	result, slot := c.Read(left, right)
	assert.Equal(t, UndefinedNode, result)
	assert.GreaterOrEqual(t, slot, 0)

	c.Write(slot, left, right, NodeId(9))

	result, slot = c.Read(left, right)
	assert.Equal(t, NodeId(9), result)
	assert.Equal(t, -1, slot)
}

func TestTaskCacheZeroZeroNeverHits(t *testing.T) {
	c := newTaskCache(8, 4)
	_, slot := c.Read(ZeroNode, ZeroNode)
	c.Write(slot, ZeroNode, ZeroNode, NodeId(7))

	// (ZERO, ZERO) must never report as a hit: apply's terminal shortcuts
	// always intercept it before the cache is consulted.
	result, missSlot := c.Read(ZeroNode, ZeroNode)
	assert.Equal(t, UndefinedNode, result)
	assert.Equal(t, slot, missSlot)
}

func TestTaskCacheIndexStaysWithinOverprovisionedTable(t *testing.T) {
	c := newTaskCache(8, 4)
	for left := NodeId(0); left < 20; left++ {
		for right := NodeId(0); right < 20; right++ {
			idx := c.index(left, right)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, len(c.table))
		}
	}
}
