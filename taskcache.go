// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

// taskMixer is S, the odd multiplicative mixing constant used by both the
// task cache and the node cache's locality-sensitive hash (spec.md §4.3,
// §4.4).
const taskMixer = 0x517cc1b727220a95

// taskPair is the (left, right) key of a memoized apply sub-call.
type taskPair struct {
	left, right NodeId
}

// taskEntry is one slot of the leaky task cache.
type taskEntry struct {
	key    taskPair
	result NodeId
}

// taskCache is the leaky hash map of spec.md §4.3: a fixed-size array of
// ((NodeId,NodeId) -> NodeId) entries where writes may overwrite on
// collision. There is no chaining, and the sentinel key (ZeroNode,ZeroNode)
// marks an empty slot; this is safe because the pair (ZERO,ZERO) always
// resolves through a terminal shortcut in apply before it would ever reach
// the cache, so it is never a real key.
//
// The hash is "locality sensitive": with the left-hand BDD pre-sorted into
// DFS pre-order, the sequence of `left` ids apply produces is mostly
// decreasing, so consecutive lookups land in a small, shifting B-sized
// window of the table rather than scattering across the whole address
// space. The table is over-provisioned by B extra slots so that
// block_base + block_offset never needs to wrap: block_base is at most
// capacity-1 and block_offset is always < B, so their sum is always a valid
// index into a capacity+B slot array without a modulo or bounds check.
type taskCache struct {
	table    []taskEntry
	capacity int // the logical capacity the hash folds into; len(table) == capacity+B
	block    int // B

	hits, misses int // debugEnabled-gated; owned by this call, never shared
}

func newTaskCache(capacity, block int) *taskCache {
	if capacity < 1 {
		capacity = 1
	}
	return &taskCache{
		table:    make([]taskEntry, capacity+block),
		capacity: capacity,
		block:    block,
	}
}

func (c *taskCache) index(left, right NodeId) int {
	blockOffset := int((uint64(right) * taskMixer) % uint64(c.block))
	blockBase := int(left)
	if blockBase >= c.capacity {
		// Defensive fallback: the scheme assumes block_base < capacity,
		// which holds as long as left addresses a node of the left-hand
		// input BDD and capacity was sized by max(size(L), size(R)). A
		// caller that violates that assumption still gets a correct,
		// merely slower, lookup.
		return (blockBase + blockOffset) % len(c.table)
	}
	return blockBase + blockOffset
}

// Read looks up (left, right). On a hit it returns (result, -1). On a miss
// it returns (UndefinedNode, slot), where slot is the candidate write
// location for a subsequent Write.
func (c *taskCache) Read(left, right NodeId) (NodeId, int) {
	slot := c.index(left, right)
	e := &c.table[slot]
	if e.key.left == left && e.key.right == right && !(left == ZeroNode && right == ZeroNode) {
		if debugEnabled {
			c.hits++
		}
		return e.result, -1
	}
	if debugEnabled {
		c.misses++
	}
	return UndefinedNode, slot
}

// Write unconditionally overwrites slot with the memoized result for
// (left, right). It never fails and never evicts cooperatively; correctness
// of apply does not depend on completeness of this cache.
func (c *taskCache) Write(slot int, left, right, result NodeId) {
	c.table[slot] = taskEntry{key: taskPair{left: left, right: right}, result: result}
}
