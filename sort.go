// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

// SortPreorder returns a Bdd isomorphic to b whose node array is laid out in
// DFS pre-order (low visited before high): every non-terminal node's index
// is assigned, counting downward from size-1, the first time an explicit
// LIFO depth-first walk from the root reaches it (spec.md §4.1).
func (b *Bdd) SortPreorder() *Bdd {
	n := b.Size()
	if b.RootId().Addr() < 2 {
		return b.shallowCopy()
	}

	newID := newIdentityTerminals(n)
	cursor := n - 1
	walk := []NodeId{b.RootId()}
	for len(walk) > 0 {
		id := walk[len(walk)-1]
		walk = walk[:len(walk)-1]
		if id.Addr() < 2 || newID[id.Addr()] != UndefinedNode {
			continue
		}
		newID[id.Addr()] = NodeId(cursor)
		cursor--
		node := b.nodeAt(id)
		// High pushed first so low is the next one popped, matching the
		// low-before-high convention apply's own coupled-DFS uses.
		walk = append(walk, node.High(), node.Low())
	}
	if debugEnabled && cursor != 1 {
		panic("robdd: sort_preorder did not consume every slot")
	}
	return permute(b, newID)
}

// SortPostorder returns a Bdd isomorphic to b whose node array is laid out
// in DFS post-order: a non-terminal node's index is assigned, counting
// upward from 2, the second time the walk reaches it — after both of its
// children have already been assigned (spec.md §4.1).
func (b *Bdd) SortPostorder() *Bdd {
	n := b.Size()
	if b.RootId().Addr() < 2 {
		return b.shallowCopy()
	}

	newID := newIdentityTerminals(n)
	cursor := 2
	type frame struct {
		id       NodeId
		expanded bool
	}
	walk := []frame{{id: b.RootId()}}
	for len(walk) > 0 {
		f := walk[len(walk)-1]
		walk = walk[:len(walk)-1]
		if f.id.Addr() < 2 || newID[f.id.Addr()] != UndefinedNode {
			continue
		}
		if !f.expanded {
			node := b.nodeAt(f.id)
			walk = append(walk, frame{id: f.id, expanded: true}, frame{id: node.High()}, frame{id: node.Low()})
			continue
		}
		newID[f.id.Addr()] = NodeId(cursor)
		cursor++
	}
	if debugEnabled && cursor != n {
		panic("robdd: sort_postorder did not consume every slot")
	}
	return permute(b, newID)
}

// newIdentityTerminals allocates a size-n relabeling table with the two
// terminal slots pre-filled to their fixed positions and every other slot
// marked UndefinedNode ("not yet visited").
func newIdentityTerminals(n int) []NodeId {
	newID := make([]NodeId, n)
	for i := range newID {
		newID[i] = UndefinedNode
	}
	newID[0] = ZeroNode
	if n > 1 {
		newID[1] = OneNode
	}
	return newID
}

// shallowCopy returns a Bdd with the same contents as b, for the trivial
// ZERO/ONE cases where sorting has nothing to permute.
func (b *Bdd) shallowCopy() *Bdd {
	nodes := make([]packedNode, len(b.nodes))
	copy(nodes, b.nodes)
	return &Bdd{nodes: nodes, height: b.height}
}

// permute rebuilds b's node array under the relabeling newID, remapping
// every child link through the same table. The represented function and the
// cached height are unaffected by relabeling; only physical layout changes.
func permute(b *Bdd, newID []NodeId) *Bdd {
	n := b.Size()
	nodes := make([]packedNode, n)
	nodes[0] = zeroPackedNode
	if n > 1 {
		nodes[1] = onePackedNode
	}
	for old := 2; old < n; old++ {
		node := b.nodeAt(NodeId(old))
		nodes[newID[old]] = makePackedNode(node.Variable(), remapChild(newID, node.Low()), remapChild(newID, node.High()))
	}
	return &Bdd{nodes: nodes, height: b.height}
}

func remapChild(newID []NodeId, id NodeId) NodeId {
	if id.Addr() < 2 {
		return id
	}
	return newID[id.Addr()]
}
