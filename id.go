// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

// VariableId identifies a decision variable in a totally ordered set.
// Variables that are topologically closer to the root of a Bdd have smaller
// values. The maximal value, UndefinedVariable, marks the (non-existent)
// variable of a terminal node.
type VariableId uint32

// UndefinedVariable is the sentinel VariableId carried by ZERO and ONE.
const UndefinedVariable VariableId = 1<<32 - 1

// NodeId is an opaque handle into the node array of a Bdd. Only the low 48
// bits are address bits, giving a hard ceiling of 2^48-1 nodes per Bdd; the
// top 16 bits are free for derived handle types to pack metadata into (see
// robSlot in ooslot.go). A well-formed NodeId, once masked, is always a
// valid index into the owning Bdd's node array.
type NodeId uint64

const (
	// idAddressBits is the width, in bits, of the address portion of a NodeId.
	idAddressBits = 48
	// idAddressMask isolates the address bits of a NodeId, discarding any
	// metadata packed into the high bits by a derived handle type.
	idAddressMask = (uint64(1) << idAddressBits) - 1

	// ZeroNode is the address of the constant-false terminal. It is always
	// the first entry of every Bdd's node array.
	ZeroNode NodeId = 0
	// OneNode is the address of the constant-true terminal. It is always the
	// second entry of every Bdd's node array, when the Bdd is not constant
	// false.
	OneNode NodeId = 1
	// UndefinedNode is the sentinel used for "no node" (an empty cache slot,
	// a not-yet-executed task result, an end-of-chain marker).
	UndefinedNode NodeId = NodeId(idAddressMask)
)

// Addr returns the address bits of id, discarding any packed metadata.
func (id NodeId) Addr() uint64 {
	return uint64(id) & idAddressMask
}

// IsTerminal reports whether id addresses one of the two terminal nodes.
func (id NodeId) IsTerminal() bool {
	a := id.Addr()
	return a == uint64(ZeroNode) || a == uint64(OneNode)
}
