package diag

import (
	"fmt"
	"os"
	"strings"
)

// Formatter renders a Diagnostic in a Rust-style format: a header line
// followed by the offending source line with a caret underline, when
// the file named by the span is available to read.
type Formatter struct {
	sourceCache map[string]string
}

// NewFormatter creates a new diagnostic formatter.
func NewFormatter() *Formatter {
	return &Formatter{sourceCache: make(map[string]string)}
}

func (f *Formatter) loadSource(filename string) (string, error) {
	if filename == "" {
		return "", nil
	}
	if src, ok := f.sourceCache[filename]; ok {
		return src, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	src := string(data)
	f.sourceCache[filename] = src
	return src, nil
}

// Format writes d to stderr.
func (f *Formatter) Format(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = "error"
	}
	if d.Code != "" {
		fmt.Fprintf(os.Stderr, "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(os.Stderr, "%s: %s\n", severity, d.Message)
	}

	if !d.Span.IsValid() {
		return
	}
	fmt.Fprintf(os.Stderr, "  --> %s:%d:%d\n", d.Span.Filename, d.Span.Line, d.Span.Column)

	src, err := f.loadSource(d.Span.Filename)
	if err != nil || src == "" {
		return
	}
	lines := strings.Split(src, "\n")
	if d.Span.Line < 1 || d.Span.Line > len(lines) {
		return
	}
	line := lines[d.Span.Line-1]
	lineNumWidth := len(fmt.Sprintf("%d", d.Span.Line))
	fmt.Fprintf(os.Stderr, "   %s |\n", strings.Repeat(" ", lineNumWidth))
	fmt.Fprintf(os.Stderr, " %d | %s\n", d.Span.Line, line)

	width := d.Span.End - d.Span.Start
	if width < 1 {
		width = 1
	}
	col := d.Span.Column - 1
	if col < 0 {
		col = 0
	}
	fmt.Fprintf(os.Stderr, "   %s | %s%s\n", strings.Repeat(" ", lineNumWidth), strings.Repeat(" ", col), strings.Repeat("^", width))
}
