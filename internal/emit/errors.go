package emit

import (
	"github.com/tickc/tickc/internal/ast"
	"github.com/tickc/tickc/internal/diag"
)

// InvariantViolation wraps a diag.Diagnostic describing one of the §3
// invariants the emitter relies on (or an unhandled node kind, §9). It
// is always raised via panic from deep inside the recursive emit
// functions and recovered exactly once, at the top of Emit, per spec.md
// §7: "These abort with a diagnostic... never retried, never surfaced
// as user errors" in the sense that they never masquerade as ordinary
// compile errors on the *source* program — they are bugs in whatever
// produced the tree the emitter was handed.
type InvariantViolation struct {
	Diagnostic diag.Diagnostic
}

func (e *InvariantViolation) Error() string { return e.Diagnostic.Error() }

// fail raises an InvariantViolation for code at span. It never returns.
func fail(code diag.Code, msg string, span ast.Span) {
	panic(&InvariantViolation{Diagnostic: diag.Diagnostic{
		Stage:    diag.StageEmit,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  msg,
		Span: diag.Span{
			Filename: span.Filename,
			Line:     span.Line,
			Column:   span.Column,
			Start:    span.Start,
			End:      span.End,
		},
	}})
}

// unreachable raises CodeUnhandledNodeKind, naming the violating Go
// type, for a type-switch default arm that should be unreachable for a
// well-formed lowered tree (spec.md §9 "a total match; default arms
// should abort with an 'unhandled kind' diagnostic naming the violating
// kind").
func unreachable(kindName string, span ast.Span) {
	fail(diag.CodeUnhandledNodeKind, "unhandled node kind: "+kindName, span)
}
