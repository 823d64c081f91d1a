// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import "github.com/pkg/errors"

// Bdd is an immutable Reduced Ordered Binary Decision Diagram: a contiguous
// array of packedNode plus a cached upper bound on the longest root-to-
// terminal path. The first two entries are always the terminal nodes; the
// root, when the Bdd is not one of the two constants, is always the last
// entry (invariants 1-2 of spec.md §3).
//
// A Bdd is created by a constant constructor, by Parse, or as the result of
// Apply/ApplyPipelined. Once returned it is never mutated in place except by
// the two sort passes, SortPreorder and SortPostorder, which rewrite the
// node array but preserve the represented function.
type Bdd struct {
	nodes  []packedNode
	height uint32
}

// Zero returns the Bdd representing the constant function false.
func Zero() *Bdd {
	return &Bdd{nodes: []packedNode{zeroPackedNode}, height: 0}
}

// One returns the Bdd representing the constant function true.
func One() *Bdd {
	return &Bdd{nodes: []packedNode{zeroPackedNode, onePackedNode}, height: 0}
}

// Var returns a single-variable Bdd: the function that is true exactly when
// variable v is true.
func Var(v VariableId) *Bdd {
	b := &Bdd{nodes: make([]packedNode, 3), height: 1}
	b.nodes[0] = zeroPackedNode
	b.nodes[1] = onePackedNode
	b.nodes[2] = makePackedNode(v, ZeroNode, OneNode)
	return b
}

// Size returns the number of entries in the node array, terminals included.
func (b *Bdd) Size() int {
	return len(b.nodes)
}

// Height returns the cached upper bound on the longest root-to-terminal
// path. It is exact for Bdds produced by Parse or Apply.
func (b *Bdd) Height() uint32 {
	return b.height
}

// IsZero reports whether b is the constant-false Bdd.
func (b *Bdd) IsZero() bool {
	return len(b.nodes) == 1
}

// IsOne reports whether b is the constant-true Bdd.
func (b *Bdd) IsOne() bool {
	return len(b.nodes) == 2
}

// RootId returns the NodeId of the root node: the last entry of the node
// array, or ZeroNode/OneNode for the two constants.
func (b *Bdd) RootId() NodeId {
	return NodeId(len(b.nodes) - 1)
}

// Node returns the (variable, low, high) triple for id, after bounds
// checking. It returns an error if id does not index the node array.
func (b *Bdd) Node(id NodeId) (variable VariableId, low, high NodeId, err error) {
	a := id.Addr()
	if a >= uint64(len(b.nodes)) {
		return 0, 0, 0, errors.Errorf("robdd: node id %d out of bounds (size %d)", a, len(b.nodes))
	}
	n := b.nodes[a]
	return n.Variable(), n.Low(), n.High(), nil
}

// nodeAt is the unchecked counterpart of Node, used on hot paths where id is
// already known to be in range (e.g. every access inside apply).
func (b *Bdd) nodeAt(id NodeId) packedNode {
	return b.nodes[id.Addr()]
}

// IsTerminalId reports whether id addresses one of b's two terminal slots.
// Unlike NodeId.IsTerminal, which only looks at the numeric value, this is
// the check callers should use when walking an arbitrary Bdd: terminals are
// always nodes 0 and 1 by invariant 1, so the two checks agree for
// well-formed Bdds, but this form documents the invariant being relied on.
func (b *Bdd) IsTerminalId(id NodeId) bool {
	return id.Addr() < 2
}

// appendNode appends a new, already-deduplicated node to the end of b's node
// array and returns its id. It is "unsafe" in the sense that it performs no
// uniqueness or ordering check; a caller is responsible for upholding the
// structural invariants of spec.md §3. The node cache and the sort passes
// build their node arrays directly and do not call it.
func (b *Bdd) appendNode(n packedNode) NodeId {
	id := NodeId(len(b.nodes))
	b.nodes = append(b.nodes, n)
	return id
}

// computeHeightBFS computes an exact upper bound on the longest root-to-
// terminal path by a breadth-first pass over the node array, used by Parse
// (spec.md §6: "height is computed by BFS") and by Apply/ApplyPipelined once
// the result array is final.
func computeHeightBFS(nodes []packedNode, root NodeId) uint32 {
	if root.Addr() < 2 {
		return 0
	}
	depth := make([]uint32, len(nodes))
	queue := make([]NodeId, 0, len(nodes))
	queue = append(queue, root)
	depth[root.Addr()] = 1
	var maxDepth uint32 = 1
	for head := 0; head < len(queue); head++ {
		id := queue[head]
		if id.Addr() < 2 {
			continue
		}
		n := nodes[id.Addr()]
		d := depth[id.Addr()] + 1
		for _, child := range [2]NodeId{n.Low(), n.High()} {
			ca := child.Addr()
			if ca < 2 {
				continue
			}
			// Re-enqueue on any longer path, so depth ends as the longest
			// distance from the root rather than the first one found.
			if d > depth[ca] {
				depth[ca] = d
				if d > maxDepth {
					maxDepth = d
				}
				queue = append(queue, child)
			}
		}
	}
	return maxDepth
}
