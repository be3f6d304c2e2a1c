package controller

import (
	"io"
	"os"

	"github.com/arthur-debert/tint/pkg/app"
	"github.com/arthur-debert/tint/pkg/assets"
	"github.com/arthur-debert/tint/pkg/style"
)

// Runner renders derived configurations to fixed streams, without paging
type Runner struct {
	Assets     *assets.HighlightingAssets
	Stdout     io.Writer
	Stderr     io.Writer
	ErrPalette *style.Palette
}

// Run renders cfg with a fresh controller
func (r *Runner) Run(cfg *app.Config) (bool, error) {
	return New(cfg, r.Assets).WithStreams(os.Stdin, r.Stdout, r.Stderr, r.ErrPalette).Run()
}
