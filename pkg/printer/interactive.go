package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/tint/pkg/decorations"
	"github.com/arthur-debert/tint/pkg/diff"
	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/style"
)

// Options configure an InteractivePrinter
type Options struct {
	Components  style.OutputComponents
	TermWidth   int
	TabWidth    int
	Lexer       chroma.Lexer
	Theme       *chroma.Style
	Profile     termenv.Profile
	TrueColor   bool
	LineChanges diff.LineChanges
	Palette     *style.Palette
}

// InteractivePrinter highlights content and draws the selected decorations
type InteractivePrinter struct {
	opts      Options
	panel     decorations.Panel
	formatter chroma.Formatter
	theme     *chroma.Style
}

// NewInteractivePrinter builds a printer for one input
func NewInteractivePrinter(opts Options) *InteractivePrinter {
	p := &InteractivePrinter{opts: opts}

	if opts.Components.Numbers() {
		p.panel = append(p.panel, decorations.NewLineNumber())
	}
	if opts.Components.Changes() && opts.LineChanges != nil {
		p.panel = append(p.panel, decorations.NewLineChanges(opts.LineChanges))
	}
	if opts.Components.Grid() && len(p.panel) > 0 {
		p.panel = append(p.panel, decorations.GridBorder{})
	}

	if opts.Lexer != nil && opts.Theme != nil && opts.Profile != termenv.Ascii {
		p.formatter = formatterFor(opts.Profile, opts.TrueColor)
		p.theme = opts.Theme
	}
	return p
}

// formatterFor picks the chroma terminal formatter matching the profile
func formatterFor(profile termenv.Profile, trueColor bool) chroma.Formatter {
	switch {
	case trueColor || profile == termenv.TrueColor:
		return formatters.TTY16m
	case profile == termenv.ANSI256:
		return formatters.TTY256
	default:
		return formatters.TTY16
	}
}

// Lines returns the content as rendered lines without terminators
func (p *InteractivePrinter) Lines(content []byte) ([]string, error) {
	if len(content) == 0 {
		return nil, nil
	}
	text := expandTabs(string(content), p.opts.TabWidth)

	if p.formatter == nil {
		lines := splitLines([]byte(text))
		for i, l := range lines {
			lines[i] = trimEOL(l)
		}
		return lines, nil
	}

	it, err := p.opts.Lexer.Tokenise(nil, text)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrParse, "cannot highlight input")
	}

	var lines []string
	for _, tokens := range chroma.SplitTokensIntoLines(it.Tokens()) {
		if n := len(tokens); n > 0 {
			tokens[n-1].Value = trimEOL(tokens[n-1].Value)
		}
		var b strings.Builder
		if err := p.formatter.Format(&b, p.theme, chroma.Literator(tokens...)); err != nil {
			return nil, errors.Wrap(err, errors.ErrParse, "cannot highlight input")
		}
		lines = append(lines, b.String())
	}
	return lines, nil
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// contentWidth is the number of columns right of the panel
func (p *InteractivePrinter) contentWidth() int {
	w := p.opts.TermWidth - p.panel.Width()
	if w < 1 {
		return 1
	}
	return w
}

// rule draws a horizontal grid line with the given joint below the grid
// border. The border is the panel's last cell, followed by one space.
func (p *InteractivePrinter) rule(joint string) string {
	var line string
	if pw := p.panel.Width(); pw > 0 {
		line = strings.Repeat("─", pw-2) + joint + strings.Repeat("─", p.contentWidth()+1)
	} else {
		line = strings.Repeat("─", p.opts.TermWidth)
	}
	return p.opts.Palette.Render(style.Grid, line)
}

func (p *InteractivePrinter) PrintHeader(w io.Writer, name string) error {
	if !p.opts.Components.Header() {
		return nil
	}
	grid := p.opts.Components.Grid()

	var b strings.Builder
	if grid {
		b.WriteString(p.rule("┬"))
		b.WriteByte('\n')
	}
	if pw := p.panel.Width(); pw > 0 {
		if grid {
			b.WriteString(strings.Repeat(" ", pw-2))
			b.WriteString(p.opts.Palette.Render(style.Grid, "│"))
			b.WriteByte(' ')
		} else {
			b.WriteString(strings.Repeat(" ", pw))
		}
	}
	title := runewidth.Truncate("File: "+name, p.contentWidth()-1, "…")
	b.WriteString(p.opts.Palette.Render(style.Header, title))
	b.WriteByte('\n')
	if grid {
		b.WriteString(p.rule("┼"))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (p *InteractivePrinter) PrintFooter(w io.Writer) error {
	if !p.opts.Components.Grid() || !p.opts.Components.Header() && p.panel.Width() == 0 {
		return nil
	}
	_, err := fmt.Fprintln(w, p.rule("┴"))
	return err
}

func (p *InteractivePrinter) PrintSnip(w io.Writer) error {
	if !p.opts.Components.Snip() {
		return nil
	}
	pw := p.panel.Width()
	marker := " 8< "
	width := p.contentWidth()
	if pw == 0 {
		width = p.opts.TermWidth
	}
	fill := width - runewidth.StringWidth(marker)
	if fill < 2 {
		fill = 2
	}
	left := fill / 2
	line := strings.Repeat(" ", pw) +
		strings.Repeat("─", left) + marker + strings.Repeat("─", fill-left)
	_, err := fmt.Fprintln(w, p.opts.Palette.Render(style.Snip, line))
	return err
}

func (p *InteractivePrinter) PrintLine(w io.Writer, lineNumber int, line string) error {
	_, err := fmt.Fprintf(w, "%s%s\n", p.panel.Render(lineNumber, p.opts.Palette), line)
	return err
}
