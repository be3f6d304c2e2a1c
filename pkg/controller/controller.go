// Package controller renders the inputs of a run to the chosen output.
package controller

import (
	"bytes"
	"io"
	"os"

	"github.com/muesli/termenv"

	"github.com/arthur-debert/tint/pkg/app"
	"github.com/arthur-debert/tint/pkg/assets"
	"github.com/arthur-debert/tint/pkg/diff"
	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/gate"
	"github.com/arthur-debert/tint/pkg/linerange"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/output"
	"github.com/arthur-debert/tint/pkg/printer"
	"github.com/arthur-debert/tint/pkg/style"
	"github.com/arthur-debert/tint/pkg/terminal"
)

// Controller drives one run
type Controller struct {
	cfg    *app.Config
	assets *assets.HighlightingAssets

	stdin  io.Reader
	stderr io.Writer
	// errPalette styles diagnostics written to stderr
	errPalette *style.Palette
	openOutput func() (*output.Output, error)
}

// New creates a controller bound to the process streams
func New(cfg *app.Config, a *assets.HighlightingAssets) *Controller {
	return &Controller{
		cfg:        cfg,
		assets:     a,
		stdin:      os.Stdin,
		stderr:     os.Stderr,
		errPalette: style.NewPalette(os.Stderr, terminal.Profile(os.Stderr, terminal.ColorAuto)),
		openOutput: func() (*output.Output, error) {
			return output.New(cfg.PagingMode, cfg.Pager, os.Stdout)
		},
	}
}

// WithStreams redirects input and output, bypassing any pager
func (c *Controller) WithStreams(stdin io.Reader, stdout, stderr io.Writer, errPalette *style.Palette) *Controller {
	c.stdin = stdin
	c.stderr = stderr
	c.errPalette = errPalette
	c.openOutput = func() (*output.Output, error) { return output.Stdout(stdout), nil }
	return c
}

// Run renders every input. Problems with a single input are reported on
// stderr and make the result false; failing to write the output aborts the
// run with an error.
func (c *Controller) Run() (bool, error) {
	logger := logging.GetLogger("controller")
	done := logging.LogOperationStart(logger, "render")
	defer done()

	var theme *assets.Theme
	if c.cfg.Colored {
		s, ok := c.assets.Theme(c.cfg.Theme)
		if !ok {
			return false, errors.Newf(errors.ErrArgument, "unknown theme '%s', see 'tint --list-themes'", c.cfg.Theme)
		}
		theme = &assets.Theme{Name: c.cfg.Theme, Style: s}
	}

	out, err := c.openOutput()
	if err != nil {
		return false, err
	}
	w := &trackingWriter{w: out.Writer()}

	ok := true
	for _, input := range c.cfg.Files {
		logger.Debug().Str("input", input.Name()).Msg("Rendering input")
		err := c.renderInput(w, input, theme)
		if w.err != nil {
			_ = out.Close()
			return false, errors.FromIO(w.err)
		}
		if err != nil {
			gate.Report(c.stderr, c.errPalette, input.Name()+": "+err.Error())
			ok = false
		}
	}

	if err := out.Close(); err != nil {
		return false, err
	}
	return ok, nil
}

func (c *Controller) read(input app.InputFile) ([]byte, error) {
	switch input.Kind {
	case app.Stdin:
		data, err := io.ReadAll(c.stdin)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrIO, "cannot read standard input")
		}
		return data, nil
	case app.ThemePreview:
		return assets.ThemePreview(), nil
	default:
		info, err := os.Stat(input.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.New(errors.ErrIO, "no such file or directory").WithDetail("path", input.Path)
			}
			return nil, errors.Wrap(err, errors.ErrIO, "cannot open file")
		}
		if info.IsDir() {
			return nil, errors.New(errors.ErrIO, "is a directory").WithDetail("path", input.Path)
		}
		data, err := os.ReadFile(input.Path)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrIO, "cannot read file")
		}
		return data, nil
	}
}

func (c *Controller) printerFor(input app.InputFile, content []byte, theme *assets.Theme) (printer.Printer, error) {
	if !c.cfg.Colored && c.cfg.OutputComponents.Plain() {
		return printer.NewSimplePrinter(), nil
	}

	path := input.Path
	if input.Kind == app.ThemePreview {
		path = assets.ThemePreviewName
	}
	opts := printer.Options{
		Components: c.cfg.OutputComponents,
		TermWidth:  c.cfg.TermWidth,
		TabWidth:   c.cfg.TabWidth,
		Profile:    termenv.Ascii,
		Palette:    style.NewPalette(io.Discard, c.cfg.Profile),
	}

	if theme != nil {
		lexer, err := c.assets.SyntaxFor(path, firstLine(content), c.cfg.Language)
		if err != nil {
			return nil, err
		}
		opts.Lexer = lexer
		opts.Theme = theme.Style
		opts.Profile = c.cfg.Profile
		opts.TrueColor = c.cfg.TrueColor
	}

	if input.Kind == app.Ordinary && c.cfg.OutputComponents.Changes() {
		if changes, ok := diff.GetGitDiff(input.Path); ok {
			opts.LineChanges = changes
		}
	}
	return printer.NewInteractivePrinter(opts), nil
}

func (c *Controller) renderInput(w io.Writer, input app.InputFile, theme *assets.Theme) error {
	content, err := c.read(input)
	if err != nil {
		return err
	}
	p, err := c.printerFor(input, content, theme)
	if err != nil {
		return err
	}
	lines, err := p.Lines(content)
	if err != nil {
		return err
	}

	name := input.Name()
	if input.Kind == app.ThemePreview {
		name = assets.ThemePreviewName
	}
	if err := p.PrintHeader(w, name); err != nil {
		return err
	}

	printed, gap := false, false
loop:
	for i, line := range lines {
		n := i + 1
		switch c.cfg.LineRanges.Check(n) {
		case linerange.InRange:
			if gap {
				if err := p.PrintSnip(w); err != nil {
					return err
				}
				gap = false
			}
			if err := p.PrintLine(w, n, line); err != nil {
				return err
			}
			printed = true
		case linerange.BeforeOrBetween:
			gap = printed
		case linerange.AfterLastRange:
			break loop
		}
	}

	return p.PrintFooter(w)
}

func firstLine(content []byte) string {
	if i := bytes.IndexByte(content, '\n'); i >= 0 {
		content = content[:i]
	}
	return string(content)
}

// trackingWriter remembers the first write error so output failures can be
// told apart from problems with an input
type trackingWriter struct {
	w   io.Writer
	err error
}

func (t *trackingWriter) Write(p []byte) (int, error) {
	if t.err != nil {
		return 0, t.err
	}
	n, err := t.w.Write(p)
	if err != nil {
		t.err = err
	}
	return n, err
}
