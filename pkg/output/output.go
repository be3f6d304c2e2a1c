// Package output decides where rendered text goes: straight to stdout or
// through a pager process.
package output

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/logging"
	"github.com/arthur-debert/tint/pkg/terminal"
)

// PagingMode is the value of the --paging option
type PagingMode int

const (
	// QuitIfOneScreen pages, but lets the pager exit when everything fits
	QuitIfOneScreen PagingMode = iota
	Always
	Never
)

// EnvPager overrides $PAGER for tint only
const EnvPager = "TINT_PAGER"

const defaultPager = "less"

// ParsePagingMode parses --paging. "auto" is accepted as QuitIfOneScreen.
func ParsePagingMode(s string) (PagingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return QuitIfOneScreen, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	}
	return 0, errors.Newf(errors.ErrArgument, "invalid paging mode '%s'", s)
}

func (m PagingMode) String() string {
	switch m {
	case Always:
		return "always"
	case Never:
		return "never"
	default:
		return "auto"
	}
}

// Output is the destination of one run. Close must be called once all
// content has been written so a pager can finish.
type Output struct {
	w     io.Writer
	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// Stdout returns an Output writing directly to w
func Stdout(w io.Writer) *Output {
	return &Output{w: w}
}

// New returns the output for mode. Paging only happens when stdout is a
// terminal; a pager that fails to start falls back to stdout.
func New(mode PagingMode, pager string, stdout *os.File) (*Output, error) {
	if mode == Never || !terminal.IsTerminal(stdout) {
		return Stdout(stdout), nil
	}

	args := PagerCommand(pager, mode)
	if len(args) == 0 {
		return Stdout(stdout), nil
	}

	logger := logging.GetLogger("output")
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "cannot connect to pager")
	}
	if err := cmd.Start(); err != nil {
		logger.Warn().Err(err).Str("pager", args[0]).Msg("Pager unavailable, writing to stdout")
		return Stdout(stdout), nil
	}
	logger.Debug().Strs("command", args).Msg("Pager started")
	return &Output{w: stdin, cmd: cmd, stdin: stdin}, nil
}

// PagerCommand resolves the pager command line: the explicit value, then
// $TINT_PAGER, then $PAGER, then less. A pager pointing back at tint is
// ignored and yields nil.
func PagerCommand(pager string, mode PagingMode) []string {
	for _, candidate := range []string{pager, os.Getenv(EnvPager), os.Getenv("PAGER")} {
		if strings.TrimSpace(candidate) != "" {
			pager = candidate
			break
		}
	}
	args := strings.Fields(pager)
	if len(args) == 0 {
		args = []string{defaultPager}
	}

	switch filepath.Base(args[0]) {
	case "tint":
		return nil
	case "less":
		if len(args) == 1 {
			args = append(args, "-R")
			if mode == QuitIfOneScreen {
				args = append(args, "-F", "-X")
			}
		}
	}
	return args
}

// Writer returns the stream content is written to
func (o *Output) Writer() io.Writer {
	return o.w
}

// IsPager reports whether output goes through a pager process
func (o *Output) IsPager() bool {
	return o.cmd != nil
}

// Close flushes the pager input and waits for the pager to exit
func (o *Output) Close() error {
	if o.cmd == nil {
		return nil
	}
	_ = o.stdin.Close()
	if err := o.cmd.Wait(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			// quitting the pager early is not a failure of tint
			return nil
		}
		return errors.Wrap(err, errors.ErrIO, "pager failed")
	}
	return nil
}
