package listing

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tint/pkg/app"
	"github.com/arthur-debert/tint/pkg/assets"
	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/style"
)

func plain() *style.Palette {
	return style.NewPalette(io.Discard, termenv.Ascii)
}

func TestListLanguages(t *testing.T) {
	tests := []struct {
		name     string
		syntaxes []assets.Syntax
		width    int
		want     string
	}{
		{
			name: "sorted two column table",
			syntaxes: []assets.Syntax{
				{Name: "Rust", Extensions: []string{"rs"}},
				{Name: "Plain Text", Extensions: []string{"txt", "text"}},
			},
			width: 80,
			want:  "Plain Text txt, text\nRust       rs\n",
		},
		{
			name: "wraps extensions that do not fit",
			syntaxes: []assets.Syntax{
				{Name: "Markdown", Extensions: []string{"md", "markdown", "mdown"}},
			},
			width: 20,
			want:  "Markdown md, \n         markdown, \n         mdown\n",
		},
		{
			name: "hidden and extensionless syntaxes are skipped",
			syntaxes: []assets.Syntax{
				{Name: "Secret", Hidden: true, Extensions: []string{"sec"}},
				{Name: "Nothing"},
				{Name: "Go", Extensions: []string{"go"}},
			},
			width: 80,
			want:  "Go go\n",
		},
		{
			name: "sort ignores case and is stable",
			syntaxes: []assets.Syntax{
				{Name: "beta", Extensions: []string{"b"}},
				{Name: "Alpha", Extensions: []string{"a1"}},
				{Name: "ALPHA", Extensions: []string{"a2"}},
			},
			width: 80,
			want:  "Alpha a1\nALPHA a2\nbeta  b\n",
		},
		{
			name: "narrow terminal wraps every extension",
			syntaxes: []assets.Syntax{
				{Name: "Markdown", Extensions: []string{"md", "mdown"}},
			},
			width: 4,
			want:  "Markdown \n         md, \n         mdown\n",
		},
		{
			name:  "empty set writes nothing",
			width: 80,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := ListLanguages(&buf, assets.New(tt.syntaxes, nil), tt.width, plain())
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestListLanguagesLineWidth(t *testing.T) {
	var buf bytes.Buffer
	a := assets.LoadEmbedded()
	require.NoError(t, ListLanguages(&buf, a, 100, plain()))

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))
	assert.Contains(t, out, "Go ")

	longest := 0
	for _, s := range a.Syntaxes() {
		if !s.Hidden && len(s.Extensions) > 0 && len(s.Name) > longest {
			longest = len(s.Name)
		}
	}
	limit := 100
	if longest+1 > limit {
		limit = longest + 1
	}
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		// a single extension longer than the remaining room may overflow
		if strings.Count(line[longest+1:], ",") > 0 {
			assert.LessOrEqual(t, len(line), limit, "line too wide: %q", line)
		}
	}
}

func TestListLanguagesColorsExtensions(t *testing.T) {
	var buf bytes.Buffer
	a := assets.New([]assets.Syntax{{Name: "Rust", Extensions: []string{"rs"}}}, nil)
	require.NoError(t, ListLanguages(&buf, a, 80, style.NewPalette(&buf, termenv.ANSI)))

	assert.Contains(t, buf.String(), "\x1b[32m")
	assert.True(t, strings.HasPrefix(buf.String(), "Rust "))
}

type failingWriter struct{ err error }

func (f failingWriter) Write([]byte) (int, error) { return 0, f.err }

func TestListLanguagesWriteError(t *testing.T) {
	a := assets.New([]assets.Syntax{{Name: "Rust", Extensions: []string{"rs"}}}, nil)
	err := ListLanguages(failingWriter{err: io.ErrClosedPipe}, a, 80, plain())
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.ErrIO))
}

// previewRunner writes a fixed preview and records the configs it ran
type previewRunner struct {
	w       io.Writer
	configs []*app.Config
	err     error
}

func (r *previewRunner) Run(cfg *app.Config) (bool, error) {
	r.configs = append(r.configs, cfg)
	if r.err != nil {
		return false, r.err
	}
	_, _ = io.WriteString(r.w, "<preview>\n")
	return false, nil
}

func baseConfig() *app.Config {
	return &app.Config{
		Files:            []app.InputFile{app.OrdinaryFile("main.go")},
		Theme:            "monokai",
		OutputComponents: style.NewOutputComponents(style.Full),
		TermWidth:        80,
	}
}

func TestListThemes(t *testing.T) {
	var buf bytes.Buffer
	a := assets.New(nil, []assets.Theme{{Name: "A"}, {Name: "B"}})
	runner := &previewRunner{w: &buf}
	cfg := baseConfig()

	require.NoError(t, ListThemes(&buf, a, cfg, runner, plain()))

	assert.Equal(t, "Theme: A\n\n<preview>\n\nTheme: B\n\n<preview>\n\n", buf.String())
	require.Len(t, runner.configs, 2)
	for i, name := range []string{"A", "B"} {
		got := runner.configs[i]
		assert.Equal(t, name, got.Theme)
		assert.Equal(t, []app.InputFile{app.ThemePreviewFile()}, got.Files)
		assert.True(t, got.OutputComponents.Plain())
		assert.Equal(t, 80, got.TermWidth)
	}

	assert.Equal(t, "monokai", cfg.Theme, "the caller's config is untouched")
	assert.Equal(t, []app.InputFile{app.OrdinaryFile("main.go")}, cfg.Files)
}

func TestListThemesBoldTitle(t *testing.T) {
	var buf bytes.Buffer
	a := assets.New(nil, []assets.Theme{{Name: "A"}})
	require.NoError(t, ListThemes(&buf, a, baseConfig(), &previewRunner{w: io.Discard}, style.NewPalette(&buf, termenv.ANSI)))
	assert.Contains(t, buf.String(), "\x1b[1m")
}

func TestListThemesPropagatesErrors(t *testing.T) {
	var buf bytes.Buffer
	a := assets.New(nil, []assets.Theme{{Name: "A"}, {Name: "B"}})
	runner := &previewRunner{w: &buf, err: errors.New(errors.ErrIO, "boom")}

	err := ListThemes(&buf, a, baseConfig(), runner, plain())
	require.Error(t, err)
	assert.Len(t, runner.configs, 1)
	assert.Equal(t, "Theme: A\n\n", buf.String())
}

func TestListThemesEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ListThemes(&buf, assets.New(nil, nil), baseConfig(), &previewRunner{w: &buf}, plain()))
	assert.Empty(t, buf.String())
}
