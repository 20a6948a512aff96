// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ffi exposes engine.Generate through the opaque-context-pointer
// callback convention the reference implementation this engine was
// ported from used for its own C bindings (original_source/src/c.rs's
// implicants_generate): instead of closures, each callback is a plain
// function that receives its context pointer explicitly alongside each
// call, so SampleCFunc and ReportCFunc both take a ctx unsafe.Pointer.
// SampleCFunc and ReportCFunc are Go function types and the package has
// no cgo //export, so ImplicantsGenerate is not itself a C symbol.
package ffi

import (
	"unsafe"

	"github.com/benwiederhake/go-implicants/engine"
)

// SampleCFunc is the callback type for a sample oracle: given
// the opaque context pointer it was registered with and a vertex v, it
// reports whether v is in the function's on-set.
type SampleCFunc func(ctx unsafe.Pointer, v uint32) bool

// ReportCFunc is the callback type for an implicant reporter:
// given the opaque context pointer it was registered with, it receives
// one (mask, fixed, isPrime) triple per reported implicant.
type ReportCFunc func(ctx unsafe.Pointer, m, f uint32, isPrime bool)

// ImplicantsGenerate is the bridge's entry point. It
// wraps sampleFn and reportFn as engine.SampleFunc/engine.ReportFunc
// closures over their respective context pointers and delegates to
// engine.Generate, preserving that function's panics for contract
// violations (arity out of range, and so on) exactly as the pure-Go
// entry point does.
func ImplicantsGenerate(sampleFn SampleCFunc, sampleCtx unsafe.Pointer, reportFn ReportCFunc, reportCtx unsafe.Pointer, arity uint32) {
	sample := func(v uint32) bool {
		return sampleFn(sampleCtx, v)
	}
	report := func(m, f uint32, isPrime bool) {
		reportFn(reportCtx, m, f, isPrime)
	}
	engine.Generate(sample, report, arity)
}
