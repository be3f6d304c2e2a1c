package tint

import (
	"io"
	"os"

	"github.com/muesli/termenv"

	"github.com/arthur-debert/tint/pkg/app"
	"github.com/arthur-debert/tint/pkg/style"
	"github.com/arthur-debert/tint/pkg/terminal"
)

// Streams are the process streams a run works with
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Env describes the terminal behind In and Out
	Env app.Env
	// ErrProfile is the color profile of Err
	ErrProfile termenv.Profile
	// Pager allows rendering through a pager; only meaningful when Out is
	// the process stdout
	Pager bool
}

// OSStreams returns the streams of the running process
func OSStreams() Streams {
	return Streams{
		In:         os.Stdin,
		Out:        os.Stdout,
		Err:        os.Stderr,
		Env:        app.DetectEnv(),
		ErrProfile: terminal.Profile(os.Stderr, terminal.ColorAuto),
		Pager:      true,
	}
}

// errPalette styles diagnostics written to Err
func (s Streams) errPalette() *style.Palette {
	return style.NewPalette(s.Err, s.ErrProfile)
}
