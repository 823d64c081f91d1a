// Copyright (c) 2024 The robdd Authors
//
// MIT License

package robdd

// reorderBuffer is a freelist-backed pool of slots that each eventually hold
// a synthesized node's final NodeId (spec.md §4.6). The source keeps the
// freelist threaded through the same 64-bit words the resolved ids occupy;
// here the freelist is a plain index stack instead; it is a pure
// memory-layout micro-optimization and spec.md §9 treats packing choices
// like it as an implementation detail; a separate slice is materially
// clearer without changing any observable behaviour.
type reorderBuffer struct {
	values   []NodeId
	freeList []uint32
}

func newReorderBuffer(capacity int) *reorderBuffer {
	if capacity < 1 {
		capacity = 1
	}
	values := make([]NodeId, capacity)
	freeList := make([]uint32, capacity)
	for i := range values {
		values[i] = UndefinedNode
		freeList[i] = uint32(capacity - 1 - i)
	}
	return &reorderBuffer{values: values, freeList: freeList}
}

func (r *reorderBuffer) hasFreeSlot() bool {
	return len(r.freeList) > 0
}

func (r *reorderBuffer) alloc() uint32 {
	n := len(r.freeList)
	id := r.freeList[n-1]
	r.freeList = r.freeList[:n-1]
	r.values[id] = UndefinedNode
	return id
}

func (r *reorderBuffer) release(id uint32) {
	r.freeList = append(r.freeList, id)
}

func (r *reorderBuffer) resolve(id uint32, result NodeId) {
	r.values[id] = result
}

// get returns (result, true) if slot id has been resolved, (_, false) if it
// is still pending.
func (r *reorderBuffer) get(id uint32) (NodeId, bool) {
	v := r.values[id]
	return v, v != UndefinedNode
}

// oooTask is one in-flight entry of the execution/retire queue: a decoded
// task awaiting its children's results and, once it has them, awaiting a
// node-cache commit.
type oooTask struct {
	left, right NodeId
	variable    VariableId

	lowRef, highRef robSlot // resolved once both children report in

	resolvedLow, resolvedHigh NodeId // set once lowRef/highRef both resolve
	resultSlot                uint32 // this task's own ROB slot
	taskSlot                  int    // task cache write-back slot
	retired                   bool   // set by execute on the low==high shortcut

	nodeCacheCandidate NodeId
	nodeCacheOk        bool
}

// executionQueue is the fixed-length circular buffer of spec.md §4.6, with
// its three monotonic cursors. Indexing wraps via modulo; the cursors
// themselves never wrap, so tail - head is always the live count.
type executionQueue struct {
	entries    []oooTask
	length     int
	retireHead uint64
	execHead   uint64
	execTail   uint64
}

func newExecutionQueue(length int) *executionQueue {
	if length < 1 {
		length = 1
	}
	return &executionQueue{entries: make([]oooTask, length), length: length}
}

func (q *executionQueue) idx(cursor uint64) int {
	return int(cursor % uint64(q.length))
}

func (q *executionQueue) hasFreeSlot() bool {
	return q.execTail-q.retireHead < uint64(q.length)
}

func (q *executionQueue) push(t oooTask) {
	q.entries[q.idx(q.execTail)] = t
	q.execTail++
}

func (q *executionQueue) atExec() *oooTask {
	return &q.entries[q.idx(q.execHead)]
}

func (q *executionQueue) atRetire() *oooTask {
	return &q.entries[q.idx(q.retireHead)]
}

func (q *executionQueue) empty() bool {
	return q.retireHead == q.execTail
}

// oooFrame mirrors applyFrame, but its results slots hold robSlot references
// instead of final NodeIds: a child that resolved immediately (terminal or
// task-cache hit) reports a real value, while a child that had to decode
// reports only a pending ROB slot id the moment it is dispatched to the
// execution queue — long before that slot actually holds a value. Both
// count as "reported" for the purpose of the parent becoming dispatchable.
type oooFrame struct {
	state       frameState
	offset      uint8
	parentIndex int
	left        NodeId
	right       NodeId
	variable    VariableId
	results     [2]robSlot
	taskSlot    int
}

func newOooFrame(left, right NodeId, offset uint8, parentIndex int) oooFrame {
	return oooFrame{
		offset:      offset,
		parentIndex: parentIndex,
		left:        left,
		right:       right,
		results:     [2]robSlot{robUnsetSlot, robUnsetSlot},
	}
}

// oooEngine holds the caches, stack, reorder buffer and execution queue
// owned by a single ApplyPipelined call.
type oooEngine struct {
	left, right *Bdd
	f           terminalFunc
	tasks       *taskCache
	nodes       *nodeCache
	stack       *stack[oooFrame]
	rob         *reorderBuffer
	queue       *executionQueue
	final       robSlot
}

func newOooEngine(left, right *Bdd, op Operator, cfg *applyConfig) *oooEngine {
	capacity := left.Size()
	if right.Size() > capacity {
		capacity = right.Size()
	}
	if capacity < 1 {
		capacity = 1
	}
	height := int(left.Height() + right.Height())
	stackCapacity := 2*height + 1
	if stackCapacity < 2 {
		stackCapacity = 2
	}
	robCapacity := cfg.robOverprovision * height
	if robCapacity < 1 {
		robCapacity = 1
	}
	return &oooEngine{
		left:  left,
		right: right,
		f:     pickTerminalFunc(op),
		tasks: newTaskCache(capacity, cfg.taskCacheBlock),
		nodes: newNodeCache(capacity, 2*capacity, cfg.taskCacheBlock),
		stack: newStack[oooFrame](stackCapacity),
		rob:   newReorderBuffer(robCapacity),
		queue: newExecutionQueue(cfg.execQueueLength),
		final: robUnsetSlot,
	}
}

// run drives the three-stage pipeline of spec.md §4.6 — retire, execute,
// issue, in that order each tick — until both the stack and the queue have
// fully drained, then resolves the root's result out of the reorder buffer.
func (e *oooEngine) run() NodeId {
	e.stack.Push(newOooFrame(e.left.RootId(), e.right.RootId(), 0, -1))

	for !e.stack.Empty() || !e.queue.empty() {
		e.retireStep()
		e.executeStep()
		e.issueStep()
	}

	if e.final.isPending() {
		result, _ := e.rob.get(e.final.slot())
		return result
	}
	return e.final.resolved()
}

// retireStep advances the task at retireHead by exactly one node-cache
// chain-walk step, committing and popping it once that walk (or the seed
// ensure call execute already ran) has found a final id.
func (e *oooEngine) retireStep() {
	if e.queue.retireHead == e.queue.execHead {
		return
	}
	task := e.queue.atRetire()
	if task.retired {
		e.queue.retireHead++
		return
	}
	if !task.nodeCacheOk {
		packed := makePackedNode(task.variable, task.resolvedLow, task.resolvedHigh)
		id, ok := e.nodes.ensureAt(packed, task.nodeCacheCandidate)
		task.nodeCacheCandidate = id
		task.nodeCacheOk = ok
		if !ok {
			return
		}
	}
	e.rob.resolve(task.resultSlot, task.nodeCacheCandidate)
	e.tasks.Write(task.taskSlot, task.left, task.right, task.nodeCacheCandidate)
	e.queue.retireHead++
}

// executeStep resolves whichever of execHead's two child references still
// point into the ROB. Once both are resolved it either retires the task on
// the spot (the low == high redundant-decision shortcut) or seeds the
// node-cache lookup and hands the task to the retire stage.
func (e *oooEngine) executeStep() {
	if e.queue.execHead == e.queue.execTail {
		return
	}
	task := e.queue.atExec()
	for _, ref := range [2]*robSlot{&task.lowRef, &task.highRef} {
		if ref.isPending() {
			if id, ok := e.rob.get(ref.slot()); ok {
				e.rob.release(ref.slot())
				*ref = robResolved(id)
			}
		}
	}
	if task.lowRef.isPending() || task.highRef.isPending() {
		return
	}
	low, high := task.lowRef.resolved(), task.highRef.resolved()
	if low == high {
		e.rob.resolve(task.resultSlot, low)
		e.tasks.Write(task.taskSlot, task.left, task.right, low)
		task.retired = true
		e.queue.execHead++
		return
	}
	task.resolvedLow, task.resolvedHigh = low, high
	id, ok := e.nodes.ensure(makePackedNode(task.variable, low, high))
	task.nodeCacheCandidate = id
	task.nodeCacheOk = ok
	e.queue.execHead++
}

// issueStep runs one step of the stack-driven front end: resolve or decode
// the current top if it is NEW, or dispatch it to the execution queue if it
// is DECODED and both its children have reported in.
func (e *oooEngine) issueStep() {
	if e.stack.Empty() {
		return
	}
	top := e.stack.Peek()

	if top.state == frameNew {
		if result, ok := e.f(top.left, top.right); ok {
			e.issuePropagate(robResolved(result))
			return
		}
		result, slot := e.tasks.Read(top.left, top.right)
		if slot < 0 {
			e.issuePropagate(robResolved(result))
			return
		}
		top.taskSlot = slot
		e.decodeOoo(top)
		return
	}

	if top.results[0].isUnset() || top.results[1].isUnset() {
		return
	}
	if !e.rob.hasFreeSlot() || !e.queue.hasFreeSlot() {
		return
	}
	slot := e.rob.alloc()
	e.queue.push(oooTask{
		left:               top.left,
		right:              top.right,
		variable:           top.variable,
		lowRef:             top.results[1],
		highRef:            top.results[0],
		resultSlot:         slot,
		taskSlot:           top.taskSlot,
		nodeCacheCandidate: UndefinedNode,
	})
	e.issuePropagate(robPending(slot))
}

// issuePropagate pops the stack's current top and writes value either into
// the out-of-band final holder (root task) or the parent frame's results
// slot, addressed by the popped frame's recorded parentIndex — the same
// stable-addressing scheme apply.go's retire uses and for the same reason.
func (e *oooEngine) issuePropagate(value robSlot) {
	frame := e.stack.Pop()
	if frame.offset == 0 {
		e.final = value
		return
	}
	parent := e.stack.At(frame.parentIndex)
	parent.results[frame.offset-1] = value
}

func (e *oooEngine) decodeOoo(top *oooFrame) {
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
	e.stack.Push(newOooFrame(leftHigh, rightHigh, 1, parentIndex))
	e.stack.Push(newOooFrame(leftLow, rightLow, 2, parentIndex))
}

// ApplyPipelined computes the same result as Apply but overlaps cache-miss
// latency across the pipeline described in spec.md §4.6: a reorder buffer
// plus an execution/retire queue decouple issue, execute and retire so that
// a child's pending memory access does not stall sibling work.
func ApplyPipelined(left, right *Bdd, op Operator, opts ...ApplyOption) *Bdd {
	cfg := defaultApplyConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	e := newOooEngine(left, right, op, cfg)
	root := e.run()
	return e.nodes.intoBdd(root)
}
