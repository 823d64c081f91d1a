// Copyright (c) 2024 The robdd Authors
//
// MIT License

//go:build debug

package robdd

import (
	"log"
	"os"
)

// debugEnabled gates every counter increment and log.Printf in this package,
// exactly as rudd's _DEBUG/_LOGLEVEL pair do (debug.go, cache.go, hkernel.go).
// A release build (no "debug" build tag, see nodebug.go) compiles all of it
// away: the Go compiler dead-code-eliminates every `if debugEnabled { ... }`
// block once debugEnabled is a untyped-const false.
const debugEnabled = true

// logLevel mirrors rudd's _LOGLEVEL. Nothing in this package reads it; the
// apply and sort passes emit no tracing at any level.
const logLevel = 1

func init() {
	log.SetOutput(os.Stdout)
}
