// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import "github.com/bits-and-blooms/bitset"

// Support returns the set of variables that actually appear on some node
// reachable from b's root. It is computed by a DFS over the reachable
// subgraph rather than a linear scan of the node array, so that a Bdd
// carrying unreachable entries (a legal, if unusual, parse result: spec.md
// §3 and §6 never require a node array to be fully reachable) does not
// inflate the reported support.
func Support(b *Bdd) *bitset.BitSet {
	set := bitset.New(0)
	if b.RootId().Addr() < 2 {
		return set
	}
	visited := make([]bool, b.Size())
	walk := []NodeId{b.RootId()}
	for len(walk) > 0 {
		id := walk[len(walk)-1]
		walk = walk[:len(walk)-1]
		if id.Addr() < 2 || visited[id.Addr()] {
			continue
		}
		visited[id.Addr()] = true
		n := b.nodeAt(id)
		set.Set(uint(n.Variable()))
		walk = append(walk, n.Low(), n.High())
	}
	return set
}
