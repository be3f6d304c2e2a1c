// Package assets loads the syntax definitions and themes tint highlights
// with, either from the set compiled into chroma or from user definitions
// that `tint cache --init` bundled into the cache directory.
package assets

import (
	_ "embed"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/paths"
)

// ThemePreviewName is the file name the theme preview sample is shown under
const ThemePreviewName = "theme_preview.rs"

//go:embed preview/theme_preview.rs
var themePreview []byte

// ThemePreview returns the sample document rendered by --list-themes
func ThemePreview() []byte {
	return themePreview
}

// embedded lexers that exist for internal use and are never listed
var hiddenEmbedded = map[string]bool{
	"fallback": true,
}

// Syntax is one highlightable language
type Syntax struct {
	Name       string
	Hidden     bool
	Extensions []string

	lexer chroma.Lexer
}

// Lexer returns the chroma lexer behind the syntax, nil for synthetic ones
func (s Syntax) Lexer() chroma.Lexer {
	return s.lexer
}

// Theme is a named highlighting style
type Theme struct {
	Name  string
	Style *chroma.Style
}

// HighlightingAssets is the paired set of syntaxes and themes
type HighlightingAssets struct {
	syntaxes []Syntax
	themes   []string
	themeMap map[string]*chroma.Style

	// user definitions the set was built from, persisted by Save
	raw   rawDefinitions
	blank bool
}

// New assembles assets from already loaded parts, in the given order
func New(syntaxes []Syntax, themes []Theme) *HighlightingAssets {
	a := &HighlightingAssets{themeMap: make(map[string]*chroma.Style, len(themes))}
	a.syntaxes = append(a.syntaxes, syntaxes...)
	for _, t := range themes {
		a.addTheme(t.Name, t.Style)
	}
	return a
}

// NewSyntax wraps a chroma lexer, deriving the extension list from its
// filename globs
func NewSyntax(lexer chroma.Lexer, hidden bool) Syntax {
	cfg := lexer.Config()
	return Syntax{
		Name:       cfg.Name,
		Hidden:     hidden,
		Extensions: extensionsFromGlobs(cfg.Filenames),
		lexer:      lexer,
	}
}

// extensionsFromGlobs turns "*.rs" into "rs" and keeps bare file names
// such as "Makefile" as they are
func extensionsFromGlobs(globs []string) []string {
	exts := make([]string, 0, len(globs))
	seen := make(map[string]bool, len(globs))
	for _, g := range globs {
		ext := strings.TrimPrefix(g, "*.")
		if ext == "" || seen[ext] {
			continue
		}
		seen[ext] = true
		exts = append(exts, ext)
	}
	return exts
}

func (a *HighlightingAssets) addTheme(name string, s *chroma.Style) {
	if _, exists := a.themeMap[name]; !exists {
		a.themes = append(a.themes, name)
	}
	a.themeMap[name] = s
}

// LoadEmbedded returns the syntaxes and themes compiled into chroma
func LoadEmbedded() *HighlightingAssets {
	a := &HighlightingAssets{themeMap: map[string]*chroma.Style{}}
	a.syntaxes = embeddedSyntaxes()
	for _, name := range styles.Names() {
		a.addTheme(name, styles.Get(name))
	}
	return a
}

func embeddedSyntaxes() []Syntax {
	registered := lexers.GlobalLexerRegistry.Lexers
	out := make([]Syntax, 0, len(registered))
	for _, l := range registered {
		name := l.Config().Name
		out = append(out, NewSyntax(l, hiddenEmbedded[strings.ToLower(name)]))
	}
	return out
}

// Load returns the cached bundle when one exists, the embedded set otherwise
func Load() (*HighlightingAssets, error) {
	logger := logging.GetLogger("assets")
	bundlePath := paths.New().AssetBundlePath()
	if _, err := os.Stat(bundlePath); err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Msg("No asset cache, using embedded assets")
			return LoadEmbedded(), nil
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot access asset cache '%s'", bundlePath)
	}

	logger.Debug().Str("path", bundlePath).Msg("Loading assets from cache")
	raw, blank, err := readBundle(bundlePath)
	if err != nil {
		return nil, err
	}
	return build(raw, blank)
}

// LoadFromFiles builds assets from the syntaxes/ and themes/ directories
// below sourceDir (the config directory when empty). With blank set the
// embedded syntaxes are left out.
func LoadFromFiles(sourceDir string, blank bool) (*HighlightingAssets, error) {
	if sourceDir == "" {
		sourceDir = paths.ConfigDir()
	}
	info, err := os.Stat(sourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot read source directory '%s'", sourceDir)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrIO, "source '%s' is not a directory", sourceDir)
	}

	raw := rawDefinitions{}
	if raw.syntaxes, err = readDefinitions(paths.SyntaxSourceDir(sourceDir)); err != nil {
		return nil, err
	}
	if raw.themes, err = readDefinitions(paths.ThemeSourceDir(sourceDir)); err != nil {
		return nil, err
	}

	logger := logging.GetLogger("assets")
	logger.Info().
		Str("source", sourceDir).
		Int("syntaxes", len(raw.syntaxes)).
		Int("themes", len(raw.themes)).
		Bool("blank", blank).
		Msg("Building assets from files")

	return build(raw, blank)
}

// readDefinitions reads every *.xml file of dir in name order. A missing
// directory contributes nothing.
func readDefinitions(dir string) ([]rawDefinition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrIO, "cannot read '%s'", dir)
	}

	var defs []rawDefinition
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".xml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIO, "cannot read '%s'", path)
		}
		defs = append(defs, rawDefinition{file: e.Name(), data: data})
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].file < defs[j].file })
	return defs, nil
}

// build compiles raw user definitions on top of the embedded set
func build(raw rawDefinitions, blank bool) (*HighlightingAssets, error) {
	a := &HighlightingAssets{
		themeMap: map[string]*chroma.Style{},
		raw:      raw,
		blank:    blank,
	}

	for _, def := range raw.syntaxes {
		syntax, err := compileSyntax(def)
		if err != nil {
			return nil, err
		}
		a.syntaxes = append(a.syntaxes, syntax)
	}
	if !blank {
		a.syntaxes = append(a.syntaxes, embeddedSyntaxes()...)
	}

	for _, name := range styles.Names() {
		a.addTheme(name, styles.Get(name))
	}
	for _, def := range raw.themes {
		theme, err := compileTheme(def)
		if err != nil {
			return nil, err
		}
		a.addTheme(theme.Name, theme.Style)
	}

	return a, nil
}

// Syntaxes returns every syntax in the bundle's native order
func (a *HighlightingAssets) Syntaxes() []Syntax {
	return a.syntaxes
}

// Themes returns theme names in the bundle's native order
func (a *HighlightingAssets) Themes() []string {
	return a.themes
}

// Theme looks up a theme by name
func (a *HighlightingAssets) Theme(name string) (*chroma.Style, bool) {
	s, ok := a.themeMap[name]
	return s, ok
}

// Blank reports whether the embedded syntaxes were left out
func (a *HighlightingAssets) Blank() bool {
	return a.blank
}

// SyntaxFor picks the lexer for an input. An explicit language wins, then
// the file name, then the content of the first line. The plain text lexer
// is the last resort.
func (a *HighlightingAssets) SyntaxFor(path, firstLine, language string) (chroma.Lexer, error) {
	if language != "" {
		if l := a.syntaxByName(language); l != nil {
			return chroma.Coalesce(l), nil
		}
		return nil, errors.Newf(errors.ErrArgument, "unknown syntax '%s'", language)
	}

	if path != "" {
		if l := a.syntaxByFileName(filepath.Base(path)); l != nil {
			return chroma.Coalesce(l), nil
		}
	}

	if firstLine != "" && !a.blank {
		if l := lexers.Analyse(firstLine); l != nil {
			return chroma.Coalesce(l), nil
		}
	}

	return chroma.Coalesce(lexers.Fallback), nil
}

func (a *HighlightingAssets) syntaxByName(name string) chroma.Lexer {
	for _, s := range a.syntaxes {
		if s.lexer == nil {
			continue
		}
		if strings.EqualFold(s.Name, name) {
			return s.lexer
		}
		for _, alias := range s.lexer.Config().Aliases {
			if strings.EqualFold(alias, name) {
				return s.lexer
			}
		}
	}
	for _, s := range a.syntaxes {
		for _, ext := range s.Extensions {
			if s.lexer != nil && strings.EqualFold(ext, name) {
				return s.lexer
			}
		}
	}
	return nil
}

func (a *HighlightingAssets) syntaxByFileName(base string) chroma.Lexer {
	for _, s := range a.syntaxes {
		if s.lexer == nil {
			continue
		}
		cfg := s.lexer.Config()
		if matchAny(cfg.Filenames, base) || matchAny(cfg.AliasFilenames, base) {
			return s.lexer
		}
	}
	return nil
}

func matchAny(globs []string, base string) bool {
	for _, glob := range globs {
		if ok, _ := filepath.Match(glob, base); ok {
			return true
		}
	}
	return false
}

// Clear removes the cached bundle. A missing cache is not an error.
func Clear() error {
	bundlePath := paths.New().AssetBundlePath()
	if err := os.Remove(bundlePath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrIO, "cannot remove asset cache '%s'", bundlePath)
	}
	logger := logging.GetLogger("assets")
	logger.Info().Str("path", bundlePath).Msg("Asset cache cleared")
	return nil
}
