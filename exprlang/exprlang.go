// Copyright 2026 The Go-Implicants Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exprlang

import (
	"fmt"

	"github.com/benwiederhake/go-implicants/engine"
)

// Compile parses src as a boolean expression over the variable v (and
// the constant arity, set to the given arity) and returns an
// engine.SampleFunc that evaluates it for each vertex. The top-level
// expression must evaluate to a bool; a purely arithmetic expression
// like "v & 1" is rejected, since an engine.SampleFunc's contract is to
// answer a yes/no membership question.
//
// Example expressions, taken directly from the oracles used to test the
// reference implementation this engine was ported from:
//
//	v % 3 == 0
//	1 == (1 & (v >> (1 + (v & 1))))
//	popcount(v) > (arity / 2)
func Compile(src string, arity uint32) (engine.SampleFunc, error) {
	tokens, err := NewLexer(src).Tokenize()
	if err != nil {
		return nil, err
	}
	ast, err := NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}

	// Evaluate once against v=0 purely to typecheck the expression ahead
	// of time, so a malformed oracle fails at Compile rather than
	// partway through a Generate run. Operands that short-circuiting
	// skips at v=0 are not checked here; if they turn out ill-typed for
	// some other v, the returned function panics.
	result, err := ast.eval(&env{v: 0, arity: arity})
	if err == nil {
		_, err = result.asBool()
	}
	if err != nil {
		return nil, fmt.Errorf("exprlang: %q: %w", src, err)
	}

	return func(v uint32) bool {
		result, err := ast.eval(&env{v: v, arity: arity})
		if err != nil {
			panic(fmt.Sprintf("exprlang: %q became ill-typed at v=%d: %v", src, v, err))
		}
		b, err := result.asBool()
		if err != nil {
			panic(fmt.Sprintf("exprlang: %q does not evaluate to a bool: %v", src, err))
		}
		return b
	}, nil
}
