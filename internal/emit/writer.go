package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/tickc/tickc/internal/ast"
)

// Writer wraps an io.Writer with the formatted/indented/identifier
// writes the emitter needs, and a sticky first error: once a write
// fails, every subsequent write on that Writer becomes a no-op, and the
// stored error is returned by Err. This lets every recursive emit
// function ignore its own write's return value and have the caller of
// the top-level Emit check once at the end, mirroring the teacher's use
// of an infallible strings.Builder generalized to a fallible sink
// (spec.md §5, §7 "Sink I/O errors").
type Writer struct {
	w           io.Writer
	err         error
	indent      int
	atLineStart bool
}

// NewWriter wraps w for emission. The writer starts at column zero so
// the first Printf call indents correctly.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, atLineStart: true}
}

// Err returns the first write error this Writer has observed, or nil.
func (w *Writer) Err() error { return w.err }

func (w *Writer) raw(s string) {
	if w.err != nil || s == "" {
		return
	}
	_, err := io.WriteString(w.w, s)
	if err != nil {
		w.err = err
	}
}

// indentPrefix returns the current indentation as two-space units
// (spec.md §4.7 "Indentation is two spaces per level").
func (w *Writer) indentPrefix() string {
	if w.indent <= 0 {
		return ""
	}
	return strings.Repeat("  ", w.indent)
}

// WriteString writes s verbatim, with no indentation or trailing
// newline management.
func (w *Writer) WriteString(s string) {
	w.raw(s)
	if len(s) > 0 {
		w.atLineStart = s[len(s)-1] == '\n'
	}
}

// Printf writes a formatted, indented line followed by a newline.
func (w *Writer) Printf(format string, args ...interface{}) {
	if w.atLineStart {
		w.raw(w.indentPrefix())
	}
	w.raw(fmt.Sprintf(format, args...))
	w.raw("\n")
	w.atLineStart = true
}

// PrintfNoIndent writes a formatted line followed by a newline, without
// the current indentation prefix (used for preamble lines and `#line`
// directives, which are always emitted at column zero).
func (w *Writer) PrintfNoIndent(format string, args ...interface{}) {
	w.raw(fmt.Sprintf(format, args...))
	w.raw("\n")
	w.atLineStart = true
}

// Ident writes an identifier fragment inline, without indentation or a
// trailing newline; used when composing a single logical line out of
// several pieces (e.g. a declarator followed by `;`).
func (w *Writer) Ident(s string) {
	w.raw(s)
	w.atLineStart = false
}

// Indent increases the indentation level by one.
func (w *Writer) Indent() { w.indent++ }

// Dedent decreases the indentation level by one. It is a no-op at level
// zero rather than going negative, so a malformed nesting bug surfaces
// as visibly wrong output instead of a panic deep in string handling.
func (w *Writer) Dedent() {
	if w.indent > 0 {
		w.indent--
	}
}

// Context is the small per-sink mutable state the emitter threads
// through recursion (spec.md §3 "Ownership & lifecycle"): the sink
// itself, the source filename used in #line directives, and the line
// number most recently emitted so the statement emitter can lazily skip
// redundant #line directives (spec.md §4.7, §9).
type Context struct {
	W        *Writer
	Filename string
	lastLine int

	// declVis maps every user-defined struct/enum/union name in the
	// module to its declaration's Visibility, so a *reference* to the
	// type elsewhere can apply the private-prefix rule without each
	// Type node having to carry its own resolved visibility. Built once
	// by the top-level driver before either sink is written to.
	declVis map[string]ast.Visibility
}

// NewContext builds a fresh per-sink context. The AST is never stored
// here: it is passed explicitly to every emit call, kept read-only.
func NewContext(w *Writer, filename string, declVis map[string]ast.Visibility) *Context {
	return &Context{W: w, Filename: filename, declVis: declVis}
}

// lineDirective lazily emits `#line N "file"` when line differs from
// the last one emitted on this context (spec.md §4.7, §9 "Source line
// directives").
func (c *Context) lineDirective(line int) {
	if line <= 0 || line == c.lastLine {
		return
	}
	c.lastLine = line
	c.W.PrintfNoIndent("#line %d %q", line, c.Filename)
}
