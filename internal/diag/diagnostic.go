package diag

import "fmt"

// Stage identifies which compiler phase produced the diagnostic. The
// emitter is the only stage implemented in this module; lexing,
// parsing, and analysis are out-of-process collaborators whose outputs
// arrive pre-validated (spec.md §1).
type Stage string

const (
	StageEmit Stage = "emit"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Emit-stage codes for the invariants the emitter checks (spec.md §3,
	// "Invariants the emitter relies on") and the "unhandled kind" catch-all
	// of §9. These are never user-facing: they mark bugs in the passes that
	// feed the emitter, not malformed source.
	CodeUnresolvedType      Code = "EMIT_UNRESOLVED_TYPE"
	CodeUnhandledNodeKind   Code = "EMIT_UNHANDLED_NODE_KIND"
	CodeOptionalSurvived    Code = "EMIT_OPTIONAL_SURVIVED"
	CodeMissingUnionTag     Code = "EMIT_MISSING_UNION_TAG"
	CodeAmbiguousSliceEnd   Code = "EMIT_AMBIGUOUS_SLICE_END"
	CodeNonLiteralInitField Code = "EMIT_NON_LITERAL_INIT_FIELD"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// IsValid reports whether the span refers to an actual source location.
func (s Span) IsValid() bool {
	return s.Line > 0
}

// Diagnostic is a compiler diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
}

// Error renders the diagnostic as a single line, satisfying the error
// interface so a Diagnostic can be wrapped directly in a returned error.
func (d Diagnostic) Error() string {
	if d.Span.IsValid() {
		return fmt.Sprintf("%s: [%s] %s (%s:%d:%d)", d.Stage, d.Code, d.Message, d.Span.Filename, d.Span.Line, d.Span.Column)
	}
	return fmt.Sprintf("%s: [%s] %s", d.Stage, d.Code, d.Message)
}
