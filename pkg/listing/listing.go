// Package listing prints the --list-languages and --list-themes reports.
package listing

import (
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/tint/pkg/app"
	"github.com/arthur-debert/tint/pkg/assets"
	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/style"
)

// fallbackNameWidth is the name column width when there is nothing to list
const fallbackNameWidth = 32

const (
	separator      = " "
	commaSeparator = ", "
)

// Runner renders a configuration; the theme listing runs it once per theme
type Runner interface {
	Run(cfg *app.Config) (bool, error)
}

// ListLanguages writes a two column table of languages and their file
// extensions, wrapping the extensions to fit termWidth
func ListLanguages(w io.Writer, a *assets.HighlightingAssets, termWidth int, palette *style.Palette) error {
	var languages []assets.Syntax
	for _, s := range a.Syntaxes() {
		if !s.Hidden && len(s.Extensions) > 0 {
			languages = append(languages, s)
		}
	}
	sort.SliceStable(languages, func(i, j int) bool {
		return strings.ToUpper(languages[i].Name) < strings.ToUpper(languages[j].Name)
	})

	longest := fallbackNameWidth
	if len(languages) > 0 {
		longest = 0
		for _, l := range languages {
			if n := runewidth.StringWidth(l.Name); n > longest {
				longest = n
			}
		}
	}

	// may be negative on narrow terminals, which wraps every extension
	desiredWidth := termWidth - longest - len(separator)
	indent := "\n" + strings.Repeat(" ", longest) + separator

	var b strings.Builder
	for _, lang := range languages {
		b.WriteString(runewidth.FillRight(lang.Name, longest))
		b.WriteString(separator)

		numChars := 0
		for i, ext := range lang.Extensions {
			newChars := len(ext) + len(commaSeparator)
			if numChars+newChars >= desiredWidth {
				numChars = 0
				b.WriteString(indent)
			}
			numChars += newChars
			b.WriteString(palette.Render(style.Success, ext))
			if i < len(lang.Extensions)-1 {
				b.WriteString(commaSeparator)
			}
		}
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.FromIO(err)
	}
	return nil
}

// ListThemes renders the theme preview once per theme, each under a
// "Theme: <name>" title. Partial failures of a preview are ignored; errors
// are returned.
func ListThemes(w io.Writer, a *assets.HighlightingAssets, cfg *app.Config, runner Runner, palette *style.Palette) error {
	preview := cfg.Clone()
	preview.Files = []app.InputFile{app.ThemePreviewFile()}
	preview.OutputComponents = style.NewOutputComponents(style.Plain)

	for _, theme := range a.Themes() {
		if _, err := io.WriteString(w, "Theme: "+palette.Render(style.Bold, theme)+"\n\n"); err != nil {
			return errors.FromIO(err)
		}
		preview.Theme = theme
		if _, err := runner.Run(preview.Clone()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return errors.FromIO(err)
		}
	}
	return nil
}
