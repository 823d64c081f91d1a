// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

// packedNode is the fixed-size record for a single Bdd node: the triple
// (variable, low, high). Earlier drafts packed the variable into the spare
// high bits of the high-link word, but VariableId is a full 32-bit type
// (id.go) and the link fields need all 48 of their own address bits, so
// there is no spare room to fold one into the other without truncating real
// variables above 65535. Instead the variable gets its own word, matching
// the three-word layout original_source uses for its packed node record:
//
//	low  = low_link  (48 address bits, in a dedicated 64-bit word)
//	high = high_link (48 address bits, in a dedicated 64-bit word)
//	variable = the full 32-bit VariableId
//
// low and high are kept pre-masked to idAddressMask so a hot-path reader can
// compare or hash either word directly without re-masking.
type packedNode struct {
	low      uint64
	high     uint64
	variable VariableId
}

func makePackedNode(variable VariableId, low, high NodeId) packedNode {
	return packedNode{
		low:      uint64(low) & idAddressMask,
		high:     uint64(high) & idAddressMask,
		variable: variable,
	}
}

// Low returns the false-branch child without touching the variable field.
func (n packedNode) Low() NodeId {
	return NodeId(n.low)
}

// High returns the true-branch child without touching the variable field.
func (n packedNode) High() NodeId {
	return NodeId(n.high)
}

// Variable returns the decision variable of n. Terminal nodes carry
// UndefinedVariable here.
func (n packedNode) Variable() VariableId {
	return n.variable
}

// Links returns both children in one call, still without decoding the
// variable field; used by callers that need both but not the level, e.g. the
// node cache's equality check.
func (n packedNode) Links() (low, high NodeId) {
	return n.Low(), n.High()
}

func (n packedNode) isTerminalRecord() bool {
	return n.Low() == n.High()
}

var zeroPackedNode = packedNode{low: 0, high: 0, variable: UndefinedVariable}
var onePackedNode = packedNode{low: 1, high: 1, variable: UndefinedVariable}
