// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

// robSlot is a tagged 64-bit handle used only by the out-of-order apply
// pipeline (see oooapply.go). It discriminates between a final, resolved
// NodeId and a still-pending reorder-buffer slot id. Node addresses are
// bounded by 2^48 (idAddressBits), so the top bit of a 64-bit word is always
// free to use as the discriminator; every bit of tagging logic for this
// pipeline is centralized here rather than scattered through the pipeline
// stages, per the recommendation in spec.md §9.
type robSlot uint64

const robPendingBit = uint64(1) << 63

// robUnsetSlot marks a coupled-DFS frame's results slot as not yet written
// by either the resolved-value or the pending-ROB-reference path. It reuses
// the "pending" shape with an index no real ROB is ever sized to reach, so
// isPending/slot/resolved never need a third branch — only frame-propagation
// code checks isUnset, and only before a slot has been written at all.
const robUnsetSlot = robSlot(^uint64(0))

// isUnset reports whether s is the sentinel "nothing written here yet"
// value, as opposed to a real pending or resolved reference.
func (s robSlot) isUnset() bool {
	return s == robUnsetSlot
}

// robPending wraps a reorder-buffer slot id into a pending robSlot.
func robPending(slot uint32) robSlot {
	return robSlot(robPendingBit | uint64(slot))
}

// robResolved wraps a final NodeId into a resolved robSlot.
func robResolved(id NodeId) robSlot {
	return robSlot(uint64(id) & idAddressMask)
}

// isPending reports whether s still refers to a reorder-buffer slot.
func (s robSlot) isPending() bool {
	return uint64(s)&robPendingBit != 0
}

// slot returns the reorder-buffer slot id. Only valid when isPending is true.
func (s robSlot) slot() uint32 {
	return uint32(uint64(s) &^ robPendingBit)
}

// resolved returns the final NodeId. Only valid when isPending is false.
func (s robSlot) resolved() NodeId {
	return NodeId(uint64(s) & idAddressMask)
}
