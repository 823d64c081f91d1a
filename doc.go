// Copyright (c) 2024 The robdd Authors
//
// MIT License

/*
Package robdd implements a Reduced Ordered Binary Decision Diagram (ROBDD)
engine: a canonical DAG representation of Boolean functions over a totally
ordered set of decision variables, and the apply operation that combines two
of them under a binary Boolean operator.

A Bdd is an immutable value once built. It is produced by the constant
constructors (Zero, One, Var), by Parse, or as the result of Apply and its
named specializations (And, Or, Xor, Iff, Imp, AndNot). The only in-place
mutators are the two sort passes, SortPreorder and SortPostorder, which
permute a Bdd's node array without changing the function it represents.

Performance model

The engine is memory-bound: every design choice in the packed node
representation, the task cache and the node cache exists to keep the working
set resident in L2/L3 cache and to avoid stalling on dependent pointer
chases. Apply and ApplyPipelined compute the same result; ApplyPipelined
trades a more complex control structure — a reorder buffer plus an
execution/retire queue — for overlapped, rather than strictly sequential,
cache-miss latency on large inputs.

Concurrency

There is no shared mutable state between calls. A single Apply or
ApplyPipelined call owns its caches and stack for its lifetime; distinct
calls may run concurrently on different goroutines as long as each is given
its own caches, since the input Bdds are read-only and safe to share.

Use of build tags

Compiling with the "debug" build tag turns on cache-hit/miss and chain-walk
counters, surfaced through ApplyWithStats, and routes log output to stdout.
A release build (no build tag) compiles all of that instrumentation away.
*/
package robdd
