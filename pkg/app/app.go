// Package app turns command line options and persistent settings into the
// immutable Config a run works from.
package app

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/arthur-debert/tint/pkg/config"
	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/linerange"
	"github.com/arthur-debert/tint/pkg/output"
	"github.com/arthur-debert/tint/pkg/style"
	"github.com/arthur-debert/tint/pkg/terminal"
)

// DefaultTheme is used when neither flags nor settings name a theme
const DefaultTheme = "monokai"

// Config is everything a run needs to know. It is not modified once built;
// derive variants with Clone.
type Config struct {
	Files            []InputFile
	Theme            string
	OutputComponents style.OutputComponents
	TermWidth        int
	Colored          bool
	TrueColor        bool
	Profile          termenv.Profile
	PagingMode       output.PagingMode
	Pager            string
	LineRanges       linerange.LineRanges
	Language         string
	TabWidth         int
}

// Clone returns a deep copy of the config
func (c *Config) Clone() *Config {
	out := *c
	out.Files = append([]InputFile(nil), c.Files...)
	out.OutputComponents = c.OutputComponents.Clone()
	out.LineRanges = append(linerange.LineRanges(nil), c.LineRanges...)
	return &out
}

// Options are the raw command line values. Empty strings and negative
// numbers mean the option was not given.
type Options struct {
	Files         []string
	Theme         string
	Style         string
	Plain         bool
	TerminalWidth string
	LineRanges    []string
	Paging        string
	Pager         string
	Color         string
	Language      string
	Tabs          int

	// Listing is set for --list-languages and --list-themes, which need
	// no input files
	Listing bool
}

// Env describes the terminal the run happens in
type Env struct {
	StdinTTY  bool
	StdoutTTY bool
	Width     int
	TrueColor bool
	Profile   func(terminal.ColorMode) termenv.Profile
}

// DetectEnv probes the real process streams
func DetectEnv() Env {
	return Env{
		StdinTTY:  terminal.IsTerminal(os.Stdin),
		StdoutTTY: terminal.IsTerminal(os.Stdout),
		Width:     terminal.Width(),
		TrueColor: terminal.IsTrueColor(),
		Profile: func(mode terminal.ColorMode) termenv.Profile {
			return terminal.Profile(os.Stdout, mode)
		},
	}
}

// New builds the run configuration. Command line options win over settings.
func New(opts Options, settings *config.Config, env Env) (*Config, error) {
	if settings == nil {
		settings = &config.Config{}
	}
	cfg := &Config{
		Theme:    pick(opts.Theme, settings.Theme, DefaultTheme),
		Pager:    pick(opts.Pager, settings.Pager),
		Language: opts.Language,
	}

	files, err := inputFiles(opts, env)
	if err != nil {
		return nil, err
	}
	cfg.Files = files

	if cfg.OutputComponents, err = outputComponents(opts, settings, env); err != nil {
		return nil, err
	}

	if cfg.TermWidth, err = termWidth(opts.TerminalWidth, env.Width); err != nil {
		return nil, err
	}

	mode := terminal.ColorMode(strings.ToLower(pick(opts.Color, settings.Color, string(terminal.ColorAuto))))
	switch mode {
	case terminal.ColorAuto, terminal.ColorAlways, terminal.ColorNever:
	default:
		return nil, errors.Newf(errors.ErrArgument, "invalid color mode '%s'", mode)
	}
	cfg.Profile = termenv.Ascii
	if env.Profile != nil {
		cfg.Profile = env.Profile(mode)
	}
	cfg.Colored = cfg.Profile != termenv.Ascii
	cfg.TrueColor = cfg.Colored && (env.TrueColor || cfg.Profile == termenv.TrueColor)

	if cfg.PagingMode, err = output.ParsePagingMode(pick(opts.Paging, settings.Paging)); err != nil {
		return nil, err
	}

	if cfg.LineRanges, err = linerange.ParseAll(opts.LineRanges); err != nil {
		return nil, err
	}

	cfg.TabWidth = settings.Tabs
	if opts.Tabs >= 0 {
		cfg.TabWidth = opts.Tabs
	}
	if cfg.TabWidth < 0 {
		cfg.TabWidth = 0
	}

	return cfg, nil
}

func inputFiles(opts Options, env Env) ([]InputFile, error) {
	if len(opts.Files) == 0 {
		if opts.Listing {
			return nil, nil
		}
		if env.StdinTTY {
			return nil, errors.New(errors.ErrArgument, "no input files")
		}
		return []InputFile{StdinFile()}, nil
	}
	files := make([]InputFile, 0, len(opts.Files))
	for _, f := range opts.Files {
		if f == "-" {
			files = append(files, StdinFile())
			continue
		}
		files = append(files, OrdinaryFile(f))
	}
	return files, nil
}

func outputComponents(opts Options, settings *config.Config, env Env) (style.OutputComponents, error) {
	if opts.Plain {
		return style.NewOutputComponents(style.Plain), nil
	}
	list := opts.Style
	if list == "" {
		list = strings.Join(settings.Style, ",")
	}
	if list == "" {
		list = style.Full.String()
	}
	components, err := style.ParseOutputComponents(list)
	if err != nil {
		return nil, err
	}
	// decorations only make sense on a terminal
	if !env.StdoutTTY && opts.Style == "" {
		return style.NewOutputComponents(style.Plain), nil
	}
	return components, nil
}

// termWidth parses --terminal-width: "N" is absolute, "+N" and "-N" are
// relative to the detected width
func termWidth(flag string, detected int) (int, error) {
	if detected <= 0 {
		detected = terminal.DefaultWidth
	}
	if flag == "" {
		return detected, nil
	}
	n, err := strconv.Atoi(flag)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrParse, "invalid terminal width '%s'", flag)
	}
	width := n
	if strings.HasPrefix(flag, "+") || strings.HasPrefix(flag, "-") {
		width = detected + n
	}
	if width <= 0 {
		return 0, errors.Newf(errors.ErrParse, "invalid terminal width '%s'", flag)
	}
	return width, nil
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
