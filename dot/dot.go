// Copyright (c) 2024 The robdd Authors
//
// MIT License

// Package dot renders a robdd.Bdd as a Graphviz graph. It is a visualization
// aid layered on top of the core engine, not part of it — spec.md explicitly
// excludes any graphical front-end from the core's scope, so this lives in
// its own subpackage and is never imported by the core.
package dot

import (
	"fmt"
	"strconv"

	godot "github.com/emicklei/dot"

	"github.com/latticebdd/robdd"
)

// Render walks every node reachable from b's root and returns a Graphviz
// graph: one node per decision node, labelled with its variable, box-shaped
// terminals, a dotted edge for each low
// branch and a solid edge for each high branch, in the same visual
// convention rudd's hand-rolled PrintDot used (stdio.go). Edges into the
// ZERO terminal are omitted, also matching rudd, since a dense BDD makes
// the false branch visual noise far more often than it makes it useful.
func Render(b *robdd.Bdd) *godot.Graph {
	g := godot.NewGraph(godot.Directed)
	if b.RootId().Addr() < 2 {
		g.Node(terminalLabel(b.RootId())).Box()
		return g
	}

	nodes := make(map[uint64]godot.Node, b.Size())
	nodes[uint64(robdd.OneNode)] = g.Node(terminalLabel(robdd.OneNode)).
		Attr("style", "filled").
		Box()

	visited := make(map[uint64]bool)
	var visit func(id robdd.NodeId)
	visit = func(id robdd.NodeId) {
		addr := id.Addr()
		if addr < 2 || visited[addr] {
			return
		}
		visited[addr] = true

		variable, low, high, err := b.Node(id)
		if err != nil {
			return
		}
		n, ok := nodes[addr]
		if !ok {
			n = g.Node(strconv.FormatUint(addr, 10)).
				Attr("label", fmt.Sprintf("x%d", variable))
			nodes[addr] = n
		}

		visit(low)
		visit(high)

		if low.Addr() != uint64(robdd.ZeroNode) {
			g.Edge(n, lookup(g, nodes, low)).Attr("style", "dotted")
		}
		if high.Addr() != uint64(robdd.ZeroNode) {
			g.Edge(n, lookup(g, nodes, high)).Attr("style", "filled")
		}
	}
	visit(b.RootId())
	return g
}

func lookup(g *godot.Graph, nodes map[uint64]godot.Node, id robdd.NodeId) godot.Node {
	if n, ok := nodes[id.Addr()]; ok {
		return n
	}
	n := g.Node(terminalLabel(id)).Box()
	nodes[id.Addr()] = n
	return n
}

func terminalLabel(id robdd.NodeId) string {
	if id.Addr() == uint64(robdd.OneNode) {
		return "1"
	}
	return "0"
}
