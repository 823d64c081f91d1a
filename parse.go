// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

import (
	"strconv"
	"strings"
)

// Parse decodes the textual BDD format of spec.md §6: a single line of
// comma- and pipe-separated decimal integers, one `variable,low,high` triple
// per node, in topological order with the root last. It validates the
// result against the structural invariants of §3 and computes its height by
// BFS before returning it.
func Parse(text string) (*Bdd, error) {
	if strings.ContainsAny(text, " \t\n\r") {
		return nil, newParseError(MalformedNode, "whitespace is not permitted in the textual format")
	}

	var nodes []packedNode
	for _, entry := range strings.Split(text, "|") {
		if entry == "" {
			// Consecutive "|" (or a leading/trailing one) denotes a skipped
			// empty node entry, not an error.
			continue
		}
		fields := strings.Split(entry, ",")
		if len(fields) != 3 {
			return nil, newParseError(MalformedNode, entry)
		}
		variable, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, wrapParseError(InvalidVariable, fields[0], err)
		}
		low, err := strconv.ParseUint(fields[1], 10, idAddressBits)
		if err != nil {
			return nil, wrapParseError(InvalidNodeId, fields[1], err)
		}
		high, err := strconv.ParseUint(fields[2], 10, idAddressBits)
		if err != nil {
			return nil, wrapParseError(InvalidNodeId, fields[2], err)
		}
		nodes = append(nodes, makePackedNode(VariableId(variable), NodeId(low), NodeId(high)))
	}
	if len(nodes) == 0 {
		return nil, newParseError(MalformedNode, "input has no node entries")
	}

	// Older files encode the terminals as "0,0,0" / "0,1,1" with a real
	// variable id in the first field; the canonical encoding is imposed here
	// regardless of what was actually parsed, per spec.md §6.
	nodes[0] = zeroPackedNode
	if len(nodes) > 1 {
		nodes[1] = onePackedNode
	}

	if err := validate(nodes); err != nil {
		return nil, err
	}

	root := NodeId(len(nodes) - 1)
	return &Bdd{nodes: nodes, height: computeHeightBFS(nodes, root)}, nil
}

// Format encodes b into the textual BDD format of spec.md §6, the inverse of
// Parse. The terminals are always emitted as "0,0,0" and "1,1,1": the
// variable field of each holds the terminal's own index, not
// UndefinedVariable.
func Format(b *Bdd) string {
	var sb strings.Builder
	for i, n := range b.nodes {
		if i > 0 {
			sb.WriteByte('|')
		}
		variable := uint64(n.Variable())
		if i < 2 {
			variable = uint64(i)
		}
		sb.WriteString(strconv.FormatUint(variable, 10))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatUint(uint64(n.Low()), 10))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatUint(uint64(n.High()), 10))
	}
	return sb.String()
}
