// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

// applyConfig collects the tunable parameters of a single Apply or
// ApplyPipelined call, in the same functional-options shape rudd uses for
// New's configs (config.go: Nodesize, Cachesize, Cacheratio, ...). None of
// these affect correctness — spec.md §9 notes the task cache's growth
// policy and the out-of-order variant's ROB sizing are both open questions
// where "either is acceptable" — they only affect memory use and hit rates.
type applyConfig struct {
	// taskCacheBlock is B, the compile-time block size of the task cache's
	// and node cache's locality-sensitive hash (spec.md §4.3). Defaults to
	// 2^13, "roughly half of a conservative L1 footprint for the entry
	// type". Exposed mainly for testing with a smaller block against small
	// fixtures.
	taskCacheBlock int

	// execQueueLength is the fixed length of ApplyPipelined's in-flight
	// execution/retire queue (spec.md §4.6, "typical length 32-64").
	execQueueLength int

	// robOverprovision multiplies height(L)+height(R) to size the reorder
	// buffer; the task stack is sized independently of it. spec.md §9 notes the source varies between 1x
	// and 2x and "mandates the larger size for safety margin"; we default
	// to that but allow callers to shrink it for memory-constrained tests.
	robOverprovision int
}

func defaultApplyConfig() *applyConfig {
	return &applyConfig{
		taskCacheBlock:   1 << 13,
		execQueueLength:  48,
		robOverprovision: 2,
	}
}

// ApplyOption configures a single call to Apply or ApplyPipelined.
type ApplyOption func(*applyConfig)

// WithTaskCacheBlock overrides B, the locality-sensitive hash's block size.
// It must be a power of two; non-power-of-two values are rounded down to the
// nearest power of two.
func WithTaskCacheBlock(b int) ApplyOption {
	return func(c *applyConfig) {
		if b <= 0 {
			return
		}
		c.taskCacheBlock = floorPow2(b)
	}
}

// WithExecQueueLength overrides the out-of-order pipeline's execution/retire
// queue length. Only meaningful for ApplyPipelined.
func WithExecQueueLength(n int) ApplyOption {
	return func(c *applyConfig) {
		if n > 0 {
			c.execQueueLength = n
		}
	}
}

// WithROBOverprovision overrides the reorder buffer's over-provisioning
// factor relative to height(L)+height(R). Only meaningful for
// ApplyPipelined.
func WithROBOverprovision(factor int) ApplyOption {
	return func(c *applyConfig) {
		if factor >= 1 {
			c.robOverprovision = factor
		}
	}
}

func floorPow2(n int) int {
	p := 1
	for p*2 <= n {
		p *= 2
	}
	return p
}
