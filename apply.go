// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

// frameState is the one-bit state of an applyFrame: a task that has not yet
// been decoded, or one whose decision variable and child tasks are known and
// whose results are being awaited.
type frameState uint8

const (
	frameNew frameState = iota
	frameDecoded
)

// applyFrame is one entry of the explicit coupled-DFS stack (spec.md §4.5).
// offset says which results slot of the frame at parentIndex this frame's
// eventual result belongs in: 0 marks the root task, whose result is written
// to an out-of-band holder instead of a parent frame. parentIndex is an
// absolute stack slot, not a relative one: once a frame decodes, its own
// children may nest arbitrarily deep above it before either of them
// retires, so "the slot now on top of the stack" is not in general this
// frame's parent — only its most recently pushed, not-yet-retired sibling
// subtree. Addressing the parent by a stable absolute index sidesteps that.
type applyFrame struct {
	state       frameState
	offset      uint8
	parentIndex int
	left        NodeId
	right       NodeId
	variable    VariableId
	results     [2]NodeId
	taskSlot    int
}

func newApplyFrame(left, right NodeId, offset uint8, parentIndex int) applyFrame {
	return applyFrame{
		offset:      offset,
		parentIndex: parentIndex,
		left:        left,
		right:       right,
		results:     [2]NodeId{UndefinedNode, UndefinedNode},
	}
}

// decisionVariable returns the variable apply.go's main loop should branch on
// for a node with packed record n at id within its owning Bdd: UndefinedVariable
// if id is one of the two terminals, n.Variable() otherwise. The check goes
// through the NodeId rather than trusting n.Variable() alone so a terminal's
// sentinel value is never mistaken for a genuine decision variable.
func decisionVariable(id NodeId, n packedNode) VariableId {
	if id.Addr() < 2 {
		return UndefinedVariable
	}
	return n.Variable()
}

func minVariable(a, b VariableId) VariableId {
	if a < b {
		return a
	}
	return b
}

// applyEngine holds the caches and stack owned by a single Apply call. It is
// never shared across calls and never retained past Apply's return, per the
// no-global-state design note (spec.md §9).
type applyEngine struct {
	left, right *Bdd
	f           terminalFunc
	tasks       *taskCache
	nodes       *nodeCache
	stack       *stack[applyFrame]
}

func newApplyEngine(left, right *Bdd, op Operator, cfg *applyConfig) *applyEngine {
	capacity := left.Size()
	if right.Size() > capacity {
		capacity = right.Size()
	}
	if capacity < 1 {
		capacity = 1
	}
	// Each decode pushes two frames and a path holds at most
	// height(L)+height(R) decodes, plus the root frame.
	stackCapacity := 2*int(left.Height()+right.Height()) + 1
	if stackCapacity < 2 {
		stackCapacity = 2
	}
	return &applyEngine{
		left:  left,
		right: right,
		f:     pickTerminalFunc(op),
		tasks: newTaskCache(capacity, cfg.taskCacheBlock),
		nodes: newNodeCache(capacity, 2*capacity, cfg.taskCacheBlock),
		stack: newStack[applyFrame](stackCapacity),
	}
}

// run drives the coupled-DFS main loop of spec.md §4.5 to completion and
// returns the id of the root of the result, addressed into e.nodes.
func (e *applyEngine) run() NodeId {
	var final NodeId
	e.stack.Push(newApplyFrame(e.left.RootId(), e.right.RootId(), 0, -1))

	for !e.stack.Empty() {
		top := e.stack.Peek()

		if top.state == frameNew {
			if result, ok := e.f(top.left, top.right); ok {
				e.retire(result, &final)
				continue
			}

			result, slot := e.tasks.Read(top.left, top.right)
			if slot < 0 {
				e.retire(result, &final)
				continue
			}
			top.taskSlot = slot

			e.decode(top)
			continue
		}

		// A DECODED frame only ever becomes the stack top again once both of
		// its children have retired: they are pushed directly above it and,
		// however deep their own subtrees nest, must fully unwind before the
		// cursor can return to this index.
		if debugEnabled && (top.results[0] == UndefinedNode || top.results[1] == UndefinedNode) {
			panic("robdd: decoded frame resurfaced with a pending child")
		}
		low, high := top.results[1], top.results[0]
		var result NodeId
		if low == high {
			result = low
		} else {
			result = e.nodes.Intern(makePackedNode(top.variable, low, high))
		}
		e.tasks.Write(top.taskSlot, top.left, top.right, result)
		e.retire(result, &final)
	}

	return final
}

// decode loads the current nodes of top's task, computes the decision
// variable and cofactors, marks top DECODED, and pushes its two child
// frames: high first (offset 1), then low (offset 2), so that low is the
// next one popped.
func (e *applyEngine) decode(top *applyFrame) {
	ln := e.left.nodeAt(top.left)
	rn := e.right.nodeAt(top.right)
	leftVar := decisionVariable(top.left, ln)
	rightVar := decisionVariable(top.right, rn)
	decision := minVariable(leftVar, rightVar)

	leftLow, leftHigh := top.left, top.left
	if leftVar == decision {
		leftLow, leftHigh = ln.Low(), ln.High()
	}
	rightLow, rightHigh := top.right, top.right
	if rightVar == decision {
		rightLow, rightHigh = rn.Low(), rn.High()
	}

	top.state = frameDecoded
	top.variable = decision
	parentIndex := e.stack.Index()
	e.stack.Push(newApplyFrame(leftHigh, rightHigh, 1, parentIndex))
	e.stack.Push(newApplyFrame(leftLow, rightLow, 2, parentIndex))
}

// retire pops the stack's top frame and propagates result to whatever
// consumes it: the out-of-band holder if the popped frame was the root
// (offset 0), or its parent's results slot otherwise. The parent is
// addressed by the absolute index recorded at push time, not by stack
// adjacency: by the time a frame retires, its immediate neighbour on the
// stack may be an unrelated, not-yet-retired sibling subtree.
func (e *applyEngine) retire(result NodeId, final *NodeId) {
	frame := e.stack.Pop()
	if frame.offset == 0 {
		*final = result
		return
	}
	parent := e.stack.At(frame.parentIndex)
	parent.results[frame.offset-1] = result
}

// Apply computes the Bdd for op(left, right): the central operation of the
// package. All named specializations (And, Or, Xor, Iff, Imp, AndNot) are
// thin wrappers around this call.
func Apply(left, right *Bdd, op Operator, opts ...ApplyOption) *Bdd {
	cfg := defaultApplyConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	e := newApplyEngine(left, right, op, cfg)
	root := e.run()
	return e.nodes.intoBdd(root)
}

// And returns the Bdd for left AND right.
func And(left, right *Bdd, opts ...ApplyOption) *Bdd {
	return Apply(left, right, OpAnd, opts...)
}

// Or returns the Bdd for left OR right.
func Or(left, right *Bdd, opts ...ApplyOption) *Bdd {
	return Apply(left, right, OpOr, opts...)
}

// Xor returns the Bdd for left XOR right.
func Xor(left, right *Bdd, opts ...ApplyOption) *Bdd {
	return Apply(left, right, OpXor, opts...)
}

// Iff returns the Bdd for left <-> right.
func Iff(left, right *Bdd, opts ...ApplyOption) *Bdd {
	return Apply(left, right, OpIff, opts...)
}

// Imp returns the Bdd for left -> right.
func Imp(left, right *Bdd, opts ...ApplyOption) *Bdd {
	return Apply(left, right, OpImp, opts...)
}

// AndNot returns the Bdd for left AND NOT right.
func AndNot(left, right *Bdd, opts ...ApplyOption) *Bdd {
	return Apply(left, right, OpAndNot, opts...)
}
