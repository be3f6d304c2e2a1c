package style

import (
	_ "embed"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Style names used across tint
const (
	ErrorTag   = "ErrorTag"
	Success    = "Success"
	Bold       = "Bold"
	Header     = "Header"
	Grid       = "Grid"
	LineNumber = "LineNumber"
	Snip       = "Snip"
	Added      = "Added"
	Modified   = "Modified"
	Removed    = "Removed"
)

//go:embed styles.yaml
var embeddedStyles []byte

// palette definitions, parsed once at startup and read-only afterwards
var defaults Config

func init() {
	cfg, err := ParseStyles(embeddedStyles)
	if err != nil {
		// the embedded file is part of the binary; fall back to unstyled output
		cfg = Config{Colors: map[string]ColorDef{}, Styles: map[string]StyleDef{}}
	}
	defaults = cfg
}

// ParseStyles parses a YAML palette definition
func ParseStyles(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse styles data: %w", err)
	}
	if config.Colors == nil {
		config.Colors = map[string]ColorDef{}
	}
	if config.Styles == nil {
		config.Styles = map[string]StyleDef{}
	}
	return config, nil
}

// Palette renders named styles for one output stream. A disabled palette
// returns text untouched.
type Palette struct {
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style
	enabled  bool
}

// NewPalette creates a palette bound to w. The profile decides how colors are
// encoded; termenv.Ascii disables styling altogether.
func NewPalette(w io.Writer, profile termenv.Profile) *Palette {
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)

	p := &Palette{
		renderer: renderer,
		styles:   make(map[string]lipgloss.Style, len(defaults.Styles)),
		enabled:  profile != termenv.Ascii,
	}
	for name, def := range defaults.Styles {
		p.styles[name] = buildStyle(renderer, defaults.Colors, def)
	}
	return p
}

// Enabled reports whether the palette emits escape sequences
func (p *Palette) Enabled() bool {
	return p.enabled
}

// Render applies the named style to text
func (p *Palette) Render(name, text string) string {
	if !p.enabled || text == "" {
		return text
	}
	s, ok := p.styles[name]
	if !ok {
		return text
	}
	return s.Render(text)
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(r *lipgloss.Renderer, colors map[string]ColorDef, def StyleDef) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		style = style.Foreground(resolveColor(colors, def.Foreground))
	}
	if def.Background != "" {
		style = style.Background(resolveColor(colors, def.Background))
	}

	return style
}

// resolveColor looks up a named color, falling back to using the value
// literally (an ANSI index or hex code).
func resolveColor(colors map[string]ColorDef, name string) lipgloss.TerminalColor {
	if c, ok := colors[name]; ok {
		return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
	}
	return lipgloss.Color(name)
}
