// Package decorations renders the side panel printed left of each line.
package decorations

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/tint/pkg/diff"
	"github.com/arthur-debert/tint/pkg/style"
)

// Text is a rendered decoration together with its visible width
type Text struct {
	Width int
	Text  string
}

// Decoration produces the panel cell for one line
type Decoration interface {
	Generate(lineNumber int, palette *style.Palette) Text
	Width() int
}

// LineNumber prints the right-aligned line number
type LineNumber struct {
	width int
}

// NewLineNumber creates a line number column of the default width
func NewLineNumber() *LineNumber {
	return &LineNumber{width: 4}
}

func (d *LineNumber) Generate(lineNumber int, palette *style.Palette) Text {
	plain := fmt.Sprintf("%*d", d.width, lineNumber)
	return Text{Width: len(plain), Text: palette.Render(style.LineNumber, plain)}
}

func (d *LineNumber) Width() int { return d.width }

// LineChanges prints git modification markers
type LineChanges struct {
	changes diff.LineChanges
}

// NewLineChanges creates a marker column for the given changes
func NewLineChanges(changes diff.LineChanges) *LineChanges {
	return &LineChanges{changes: changes}
}

func (d *LineChanges) Generate(lineNumber int, palette *style.Palette) Text {
	change, ok := d.changes[lineNumber]
	if !ok {
		return Text{Width: 1, Text: " "}
	}
	switch change {
	case diff.Added:
		return Text{Width: 1, Text: palette.Render(style.Added, "+")}
	case diff.RemovedAbove:
		return Text{Width: 1, Text: palette.Render(style.Removed, "‾")}
	case diff.RemovedBelow:
		return Text{Width: 1, Text: palette.Render(style.Removed, "_")}
	default:
		return Text{Width: 1, Text: palette.Render(style.Modified, "~")}
	}
}

func (d *LineChanges) Width() int { return 1 }

// GridBorder separates the panel from the content
type GridBorder struct{}

func (GridBorder) Generate(_ int, palette *style.Palette) Text {
	return Text{Width: 1, Text: palette.Render(style.Grid, "│")}
}

func (GridBorder) Width() int { return 1 }

// Panel is an ordered set of decorations
type Panel []Decoration

// Width is the number of columns the panel occupies, including the space
// that separates it from the content. An empty panel has width zero.
func (p Panel) Width() int {
	if len(p) == 0 {
		return 0
	}
	w := 0
	for _, d := range p {
		w += d.Width() + 1
	}
	return w
}

// Render produces the panel for a line, ready to be followed by content
func (p Panel) Render(lineNumber int, palette *style.Palette) string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, d := range p {
		b.WriteString(d.Generate(lineNumber, palette).Text)
		b.WriteByte(' ')
	}
	return b.String()
}
