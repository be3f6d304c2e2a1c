package gate

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"syscall"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/tint/pkg/errors"
	"github.com/arthur-debert/tint/pkg/style"
)

func TestHandle(t *testing.T) {
	plain := style.NewPalette(io.Discard, termenv.Ascii)

	tests := []struct {
		name       string
		ok         bool
		err        error
		wantCode   int
		wantStderr string
	}{
		{name: "success", ok: true, wantCode: ExitOK},
		{name: "partial success is silent", ok: false, wantCode: ExitFailure},
		{
			name:     "raw broken pipe",
			err:      &os.PathError{Op: "write", Path: "/dev/stdout", Err: syscall.EPIPE},
			wantCode: ExitOK,
		},
		{
			name:     "wrapped broken pipe",
			err:      fmt.Errorf("listing: %w", errors.FromIO(syscall.EPIPE)),
			wantCode: ExitOK,
		},
		{
			name:     "broken pipe kind",
			err:      errors.New(errors.ErrBrokenPipe, "closed"),
			wantCode: ExitOK,
		},
		{
			name:       "other error",
			err:        errors.New(errors.ErrArgument, "unknown syntax 'klingon'"),
			wantCode:   ExitFailure,
			wantStderr: "[tint error]: unknown syntax 'klingon'\n",
		},
		{
			name:       "error wins over ok",
			ok:         true,
			err:        errors.New(errors.ErrIO, "disk on fire"),
			wantCode:   ExitFailure,
			wantStderr: "[tint error]: disk on fire\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			code := Handle(tt.ok, tt.err, &stderr, plain)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestReportColorsTag(t *testing.T) {
	var stderr bytes.Buffer
	Report(&stderr, style.NewPalette(&stderr, termenv.ANSI), "boom")

	out := stderr.String()
	assert.Contains(t, out, "\x1b[31m")
	assert.Contains(t, out, Tag)
	assert.Contains(t, out, ": boom\n")
}

func TestReportWithoutPalette(t *testing.T) {
	var stderr bytes.Buffer
	Report(&stderr, nil, "boom")
	assert.Equal(t, "[tint error]: boom\n", stderr.String())
}
