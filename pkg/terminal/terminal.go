// Package terminal probes the capabilities of the streams tint writes to.
package terminal

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the width of stdout cannot be determined
const DefaultWidth = 80

// ColorMode is the value of the --color option
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsStyled reports whether f can render ANSI color and style sequences
func IsStyled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !IsTerminal(f) {
		return false
	}
	return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
}

// Profile returns the color profile to use for f. Unstyled streams get
// termenv.Ascii so callers can hand it straight to a palette.
func Profile(f *os.File, mode ColorMode) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		if p := termenv.NewOutput(f, termenv.WithTTY(true)).EnvColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI256
	default:
		if !IsStyled(f) {
			return termenv.Ascii
		}
		return termenv.NewOutput(f).EnvColorProfile()
	}
}

// IsTrueColor reports whether COLORTERM advertises 24-bit color
func IsTrueColor() bool {
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return true
	}
	return false
}

// Width returns the column count of stdout, then $COLUMNS, then DefaultWidth
func Width() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return DefaultWidth
}
