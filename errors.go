// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError is returned by Parse when the textual format (spec.md §6) is
// malformed or the resulting Bdd violates a structural invariant. It is
// fatal for the input text only; it never poisons any shared state, since
// apply's caches and the Bdd under construction are both local to the call
// that produced them.
type ParseError struct {
	// Kind names which error condition was hit; compare or switch on Kind
	// to distinguish them programmatically.
	Kind ParseErrorKind
	// Detail is a human-readable description, often echoing the offending
	// substring of the input line.
	Detail string
	// Cause, when non-nil, is the lower-level error this one wraps (e.g. a
	// strconv error while parsing a field).
	Cause error
}

// ParseErrorKind enumerates the error taxonomy of spec.md §6.
type ParseErrorKind int

const (
	// MalformedNode: a node entry does not have exactly three comma
	// separated fields.
	MalformedNode ParseErrorKind = iota
	// InvalidVariable: a variable field does not fit in 32 bits.
	InvalidVariable
	// InvalidNodeId: a low/high field does not fit in 48 bits or is not a
	// valid decimal integer.
	InvalidNodeId
	// StructuralViolation: the parsed node array fails the validator.
	StructuralViolation
)

func (k ParseErrorKind) String() string {
	switch k {
	case MalformedNode:
		return "malformed node"
	case InvalidVariable:
		return "invalid variable"
	case InvalidNodeId:
		return "invalid node id"
	case StructuralViolation:
		return "structural violation"
	default:
		return "unknown parse error"
	}
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("robdd: %s: %s: %v", e.Kind, e.Detail, e.Cause)
	}
	return fmt.Sprintf("robdd: %s: %s", e.Kind, e.Detail)
}

// Unwrap lets errors.Is / errors.As (both the standard library's and
// github.com/pkg/errors', which defers to the standard library's Unwrap
// protocol) see through to Cause.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

func newParseError(kind ParseErrorKind, detail string) *ParseError {
	return &ParseError{Kind: kind, Detail: detail}
}

func wrapParseError(kind ParseErrorKind, detail string, cause error) *ParseError {
	return &ParseError{Kind: kind, Detail: detail, Cause: errors.Wrapf(cause, "robdd: %s", detail)}
}

// StructuralViolationReason enumerates the specific structural check a
// well-formedness violation failed, per spec.md §6's error taxonomy.
type StructuralViolationReason int

const (
	LinkOutOfBounds StructuralViolationReason = iota
	VariableOrderViolationLow
	VariableOrderViolationHigh
	SelfLoopOnNonTerminal
	NonSelfLoopOnTerminal
	TerminalNotAtFront
)

func (r StructuralViolationReason) String() string {
	switch r {
	case LinkOutOfBounds:
		return "link out of bounds"
	case VariableOrderViolationLow:
		return "variable-order violation on low edge"
	case VariableOrderViolationHigh:
		return "variable-order violation on high edge"
	case SelfLoopOnNonTerminal:
		return "self-loop on non-terminal"
	case NonSelfLoopOnTerminal:
		return "non-self-loop on terminal"
	case TerminalNotAtFront:
		return "terminal not at front of array"
	default:
		return "unknown reason"
	}
}

// validate checks the structural invariants of spec.md §3 against b's node
// array, assuming it is laid out in general memory order (invariant 3's
// weaker form: children have strictly greater variables than their parent,
// not necessarily strictly smaller indices). It is called by Parse after
// loading a textual Bdd.
func validate(nodes []packedNode) error {
	if len(nodes) == 0 {
		return &ParseError{Kind: StructuralViolation, Detail: TerminalNotAtFront.String()}
	}
	if nodes[0] != zeroPackedNode {
		return &ParseError{Kind: StructuralViolation, Detail: TerminalNotAtFront.String()}
	}
	if nodes[0].Low() != ZeroNode || nodes[0].High() != ZeroNode {
		return &ParseError{Kind: StructuralViolation, Detail: NonSelfLoopOnTerminal.String()}
	}
	if len(nodes) > 1 {
		if nodes[1] != onePackedNode {
			return &ParseError{Kind: StructuralViolation, Detail: TerminalNotAtFront.String()}
		}
		if nodes[1].Low() != OneNode || nodes[1].High() != OneNode {
			return &ParseError{Kind: StructuralViolation, Detail: NonSelfLoopOnTerminal.String()}
		}
	}
	seen := make(map[[3]uint64]NodeId, len(nodes))
	for i := 2; i < len(nodes); i++ {
		n := nodes[i]
		low, high := n.Links()
		if low == high {
			return &ParseError{Kind: StructuralViolation, Detail: SelfLoopOnNonTerminal.String()}
		}
		if low.Addr() >= uint64(len(nodes)) || high.Addr() >= uint64(len(nodes)) {
			return &ParseError{Kind: StructuralViolation, Detail: LinkOutOfBounds.String()}
		}
		v := n.Variable()
		if low.Addr() >= 2 {
			if nodes[low.Addr()].Variable() <= v {
				return &ParseError{Kind: StructuralViolation, Detail: VariableOrderViolationLow.String()}
			}
		}
		if high.Addr() >= 2 {
			if nodes[high.Addr()].Variable() <= v {
				return &ParseError{Kind: StructuralViolation, Detail: VariableOrderViolationHigh.String()}
			}
		}
		key := [3]uint64{uint64(v), uint64(low), uint64(high)}
		if dup, ok := seen[key]; ok {
			return &ParseError{
				Kind:   StructuralViolation,
				Detail: fmt.Sprintf("duplicate node (%d,%d,%d) at %d and %d", v, low, high, dup, i),
			}
		}
		seen[key] = NodeId(i)
	}
	return nil
}
