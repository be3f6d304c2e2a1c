// Package printer turns the lines of one input into terminal output.
//
// A Printer is driven by the controller: Lines prepares the content, then
// PrintHeader, PrintLine/PrintSnip and PrintFooter are called in order.
package printer

import (
	"bytes"
	"io"
	"strings"
)

// Printer renders one input file
type Printer interface {
	// Lines splits content into the lines PrintLine receives
	Lines(content []byte) ([]string, error)
	PrintHeader(w io.Writer, name string) error
	PrintLine(w io.Writer, lineNumber int, line string) error
	PrintSnip(w io.Writer) error
	PrintFooter(w io.Writer) error
}

// SimplePrinter copies input verbatim. It is used when nothing would be
// decorated or highlighted, typically because stdout is not a terminal.
type SimplePrinter struct{}

// NewSimplePrinter creates a pass-through printer
func NewSimplePrinter() *SimplePrinter {
	return &SimplePrinter{}
}

// Lines keeps line terminators so the output is byte-identical to the input
func (p *SimplePrinter) Lines(content []byte) ([]string, error) {
	return splitLines(content), nil
}

func (p *SimplePrinter) PrintHeader(io.Writer, string) error { return nil }
func (p *SimplePrinter) PrintSnip(io.Writer) error           { return nil }
func (p *SimplePrinter) PrintFooter(io.Writer) error         { return nil }

func (p *SimplePrinter) PrintLine(w io.Writer, _ int, line string) error {
	_, err := io.WriteString(w, line)
	return err
}

// splitLines splits after every '\n', keeping the terminator
func splitLines(content []byte) []string {
	var lines []string
	for len(content) > 0 {
		i := bytes.IndexByte(content, '\n')
		if i < 0 {
			lines = append(lines, string(content))
			break
		}
		lines = append(lines, string(content[:i+1]))
		content = content[i+1:]
	}
	return lines
}

// expandTabs replaces tabs with spaces up to the next multiple of width.
// A width of zero leaves tabs alone.
func expandTabs(content string, width int) string {
	if width <= 0 || !strings.Contains(content, "\t") {
		return content
	}
	var b strings.Builder
	b.Grow(len(content))
	col := 0
	for _, r := range content {
		switch r {
		case '\t':
			n := width - col%width
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}
