// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import "fmt"

// Stats reports a human-readable summary of b's shape, in the same
// multi-line, labelled-field style rudd's own Stats() uses (stdio.go).
func (b *Bdd) Stats() string {
	return fmt.Sprintf("Size:    %d\nHeight:  %d\nIsZero:  %t\nIsOne:   %t\n",
		b.Size(), b.Height(), b.IsZero(), b.IsOne())
}

// ApplyStats reports cache effectiveness for a single Apply call. Its
// cache counters are only ever incremented in a debug build (debug.go); in a
// release build every counter field reads zero, since the increments they
// would otherwise report are compiled away entirely. ResultSize is filled in
// by both builds.
type ApplyStats struct {
	TaskCacheHits   int
	TaskCacheMisses int
	NodeCacheHits   int
	NodeCacheMisses int
	NodeCacheWalks  int
	ResultSize      int
}

func (s ApplyStats) String() string {
	return fmt.Sprintf(
		"Task cache:  %d hits, %d misses\nNode cache:  %d hits, %d misses, %d chain walks\nResult size: %d\n",
		s.TaskCacheHits, s.TaskCacheMisses, s.NodeCacheHits, s.NodeCacheMisses, s.NodeCacheWalks, s.ResultSize)
}

// ApplyWithStats behaves exactly like Apply, but also returns a snapshot of
// the call's cache statistics — useful in debug builds for tuning
// WithTaskCacheBlock against a real workload.
func ApplyWithStats(left, right *Bdd, op Operator, opts ...ApplyOption) (*Bdd, ApplyStats) {
	cfg := defaultApplyConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	e := newApplyEngine(left, right, op, cfg)
	root := e.run()
	result := e.nodes.intoBdd(root)
	stats := ApplyStats{
		TaskCacheHits:   e.tasks.hits,
		TaskCacheMisses: e.tasks.misses,
		NodeCacheHits:   e.nodes.hits,
		NodeCacheMisses: e.nodes.misses,
		NodeCacheWalks:  e.nodes.chainWalks,
		ResultSize:      result.Size(),
	}
	return result, stats
}
