// Package emit implements the tick code emitter: it walks a fully
// type-analyzed, lowered AST (internal/ast) and renders two
// textually synchronized C11 translation units — a public header and
// an implementation file — that link against the bundled tick runtime
// (internal/runtime) for saturating/wrapping/checked arithmetic and
// slice operations.
//
// The emitter is a single-threaded, purely cooperative recursive
// descent. It holds no state beyond what Context carries for each
// output sink; the AST is borrowed read-only and never mutated.
package emit

import (
	"io"

	"github.com/tickc/tickc/internal/ast"
)

// Emit walks module and writes a public header to header and the
// corresponding implementation to impl. filename is used in #line
// directives; headerBasename is the name the implementation file
// #includes.
//
// Emit distinguishes two error classes (spec.md §7): a write failure on
// either sink is returned once emission completes, surfaced through
// each sink's sticky-error Writer, while a violation of one of the
// invariants the emitter relies on — an unresolved type, an unhandled
// node kind, a missing union tag, and so on — is raised internally as
// a panic and converted here, exactly once, into a plain error.
// Neither class ever produces partial-but-consistent output: a bug in
// an upstream pass is a bug, not a recoverable condition.
func Emit(module *ast.Module, filename, headerBasename string, header, impl io.Writer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			violation, ok := r.(*InvariantViolation)
			if !ok {
				panic(r)
			}
			err = violation
		}
	}()

	declVis := buildDeclVis(module)
	s := sinks{
		header: NewContext(NewWriter(header), filename, declVis),
		impl:   NewContext(NewWriter(impl), filename, declVis),
	}

	emitPreamble(s, headerBasename)
	emitModule(module, s)

	if s.header.W.Err() != nil {
		return s.header.W.Err()
	}
	if s.impl.W.Err() != nil {
		return s.impl.W.Err()
	}
	return nil
}
