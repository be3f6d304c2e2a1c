// Package gate turns the outcome of a run into a process exit code.
package gate

import (
	"fmt"
	"io"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/style"
)

// Tag prefixes every diagnostic tint prints
const Tag = "[tint error]"

const (
	ExitOK      = 0
	ExitFailure = 1
)

// Report writes one diagnostic line, the tag colored when the palette allows
func Report(w io.Writer, palette *style.Palette, msg string) {
	tag := Tag
	if palette != nil {
		tag = palette.Render(style.ErrorTag, Tag)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", tag, msg)
}

// Handle maps a run's result to an exit code. A false result without error
// means failures were already reported. A broken pipe is not a failure: the
// reader went away, typically a pager that was quit early.
func Handle(ok bool, err error, stderr io.Writer, palette *style.Palette) int {
	if err == nil {
		if ok {
			return ExitOK
		}
		return ExitFailure
	}
	if errors.IsBrokenPipe(err) {
		return ExitOK
	}
	logger := logging.GetLogger("gate")
	logger.Debug().
		Str("kind", string(errors.GetKind(err))).
		AnErr("cause", errors.Root(err)).
		Msg("Run failed")
	Report(stderr, palette, err.Error())
	return ExitFailure
}
