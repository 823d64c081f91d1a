// Copyright (c) 2024 The robdd Authors
//
// MIT License

//go:build !debug

package robdd

// debugEnabled and logLevel are the release-build counterparts of debug.go.
// rudd itself only ever defines _DEBUG under the "debug" build tag, which
// means its default (tagless) build does not compile; we keep the same
// compile-time-instrumentation mechanism but also supply this half of the
// pair so a plain `go build` of this package succeeds.
const debugEnabled = false
const logLevel = 0
