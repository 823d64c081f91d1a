// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

// cacheSlot is one entry of the node cache's backing array: a candidate
// result node plus the next link of its collision chain. This is the same
// "array of (node, next)" shape rudd's BuDDy-style backend uses for its
// unicity table (bkernel.go: buddynode{level,low,high,next,hash}), adapted
// to the two-part table/chain layout spec.md §4.4 calls for.
type cacheSlot struct {
	node packedNode
	next NodeId // UndefinedNode marks the end of a chain
}

// nodeCache is the chained hash map of spec.md §4.4: it both de-duplicates
// result nodes (the uniqueness invariant of spec.md §3) and owns the result
// Bdd's node array while it is being built. Nodes 0 and 1 are pre-populated
// with the ZERO and ONE terminals.
//
// table[h] holds the id of the first node in the chain whose node hashes to
// h, or UndefinedNode if that chain is empty. nodes[id].next chains further
// candidates. The hash ignores the variable field: a node's children are
// drawn from the already-materialized portion of the result Bdd, and
// max(low, high) grows roughly monotonically with insertion order, so using
// it as the block base keeps the hot hash-table footprint small and
// growing, mirroring the task cache's locality-sensitive design without
// needing the Bdd's own variable order at all (rationale, spec.md §4.4).
type nodeCache struct {
	table    []NodeId
	capacity int // logical capacity; len(table) == capacity+block
	nodes    []cacheSlot
	block    int // B

	hits, misses, chainWalks int // debugEnabled-gated
}

func newNodeCache(capacity, initialNodes, block int) *nodeCache {
	if capacity < 1 {
		capacity = 1
	}
	// Over-provisioned by block slots so block_base+block_offset never
	// needs to wrap, mirroring the task cache's table (spec.md §4.3); the
	// node hash has the same "mostly-monotonic block base" shape (§4.4).
	table := make([]NodeId, capacity+block)
	for i := range table {
		table[i] = UndefinedNode
	}
	nodes := make([]cacheSlot, 2, initialNodes)
	nodes[0] = cacheSlot{node: zeroPackedNode, next: UndefinedNode}
	nodes[1] = cacheSlot{node: onePackedNode, next: UndefinedNode}
	return &nodeCache{table: table, capacity: capacity, nodes: nodes, block: block}
}

func (c *nodeCache) index(low, high NodeId) int {
	mixed := (uint64(low) * taskMixer) ^ (uint64(high) * taskMixer)
	blockOffset := int(mixed % uint64(c.block))
	blockBase := int(low)
	if high > low {
		blockBase = int(high)
	}
	if blockBase >= c.capacity {
		return (blockBase + blockOffset) % len(c.table)
	}
	return blockBase + blockOffset
}

// ensure begins interning node. If the node's hash bucket is empty, it
// allocates and returns a fresh chain head immediately (ok=true). Otherwise
// it returns the existing chain head as a candidate to walk (ok=false); the
// caller must continue with ensureAt(node, candidate) until one of them
// returns ok=true, per the loop in spec.md §4.4:
//
//	r := ensure(node)
//	for !r.ok { r = ensureAt(node, r.id) }
func (c *nodeCache) ensure(node packedNode) (id NodeId, ok bool) {
	if len(c.nodes) >= c.capacity {
		// The insertion cursor has reached the table's logical capacity
		// (spec.md §4.5, failure semantics (b)). Growing here, before the
		// index is computed, keeps the slot we are about to write
		// consistent with the table we just resized; growing inside push
		// would invalidate a slot already computed against the old size.
		c.grow()
	}
	if debugEnabled {
		c.misses++ // provisional; corrected to a hit below on a fast match
	}
	slot := c.index(node.Low(), node.High())
	head := c.table[slot]
	if head == UndefinedNode {
		id = c.push(node)
		c.table[slot] = id
		return id, true
	}
	return head, false
}

// ensureAt inspects the candidate node at id. If it equals node, interning
// is done. Otherwise, if its chain continues, that next id is the new
// candidate; if the chain ends here, a fresh entry is appended and linked.
func (c *nodeCache) ensureAt(node packedNode, candidate NodeId) (id NodeId, ok bool) {
	if debugEnabled {
		c.chainWalks++
	}
	slot := &c.nodes[candidate.Addr()]
	if slot.node == node {
		if debugEnabled {
			c.hits++
			c.misses--
		}
		return candidate, true
	}
	if slot.next != UndefinedNode {
		return slot.next, false
	}
	id = c.push(node)
	slot.next = id
	return id, true
}

// Intern is the convenience wrapper most callers want: it drives the
// ensure/ensureAt loop to completion and returns the final NodeId. The
// out-of-order pipeline (oooapply.go) instead calls ensure and ensureAt
// directly, one step per pipeline tick, so it can interleave the walk with
// other work.
func (c *nodeCache) Intern(node packedNode) NodeId {
	id, ok := c.ensure(node)
	for !ok {
		id, ok = c.ensureAt(node, id)
	}
	return id
}

func (c *nodeCache) push(node packedNode) NodeId {
	id := NodeId(len(c.nodes))
	c.nodes = append(c.nodes, cacheSlot{node: node, next: UndefinedNode})
	return id
}

// grow doubles the table's logical capacity and rehashes every interned
// node into the new table. Per spec.md §4.5, this is an O(N) rebuild that
// apply falls back to only when it has genuinely outgrown the capacity
// estimate taken from max(size(L), size(R)); it never fails, and it is
// never reported to the caller (spec.md §7, "capacity exhaustion").
func (c *nodeCache) grow() {
	c.capacity *= 2
	c.table = make([]NodeId, c.capacity+c.block)
	for i := range c.table {
		c.table[i] = UndefinedNode
	}
	for i := range c.nodes {
		c.nodes[i].next = UndefinedNode
	}
	for i := 2; i < len(c.nodes); i++ {
		n := c.nodes[i].node
		slot := c.index(n.Low(), n.High())
		head := c.table[slot]
		c.table[slot] = NodeId(i)
		c.nodes[i].next = head
	}
}

// Len returns the number of nodes currently interned, terminals included.
func (c *nodeCache) Len() int {
	return len(c.nodes)
}

// intoBdd truncates the cache's backing array to its current length and
// hands it over as the node array of a freshly built Bdd, as specified by
// spec.md §4.4 ("ownership"): "the node cache *is* the in-construction
// result BDD". A ZERO root yields the one-entry constant-false Bdd: no node
// is ever interned on the way to a terminal result. Once called, c must not
// be used again.
func (c *nodeCache) intoBdd(root NodeId) *Bdd {
	if root.Addr() == uint64(ZeroNode) {
		return Zero()
	}
	nodes := make([]packedNode, len(c.nodes))
	for i, s := range c.nodes {
		nodes[i] = s.node
	}
	return &Bdd{nodes: nodes, height: computeHeightBFS(nodes, root)}
}
