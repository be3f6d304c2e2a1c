package tint

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// When set, the test binary behaves like the tint executable
const (
	envRunAsTint = "TINT_TEST_RUN_AS_TINT"
	envTintArgs  = "TINT_TEST_ARGS"
)

func TestMain(m *testing.M) {
	if os.Getenv(envRunAsTint) == "1" {
		IgnoreBrokenPipeSignal()
		os.Exit(Run(strings.Split(os.Getenv(envTintArgs), "\n"), OSStreams()))
	}
	os.Exit(m.Run())
}

// runAsTint starts the test binary as tint with stdout connected to the
// returned pipe
func runAsTint(t *testing.T, args ...string) (*exec.Cmd, *os.File, *bytes.Buffer) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	stderr := &bytes.Buffer{}
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), envRunAsTint+"=1", envTintArgs+"="+strings.Join(args, "\n"))
	cmd.Stdout = w
	cmd.Stderr = stderr
	require.NoError(t, cmd.Start())
	require.NoError(t, w.Close())
	return cmd, r, stderr
}

func TestClosedStdoutExitsCleanly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no SIGPIPE on windows")
	}
	isolate(t)

	var content strings.Builder
	for i := 1; i <= 200000; i++ {
		fmt.Fprintf(&content, "%d\n", i)
	}
	file := filepath.Join(t.TempDir(), "big.txt")
	require.NoError(t, os.WriteFile(file, []byte(content.String()), 0644))

	tests := []struct {
		name string
		args []string
	}{
		{name: "render", args: []string{"--paging", "never", file}},
		{name: "decorated render", args: []string{"--paging", "never", "--style", "numbers", file}},
		{name: "list languages", args: []string{"--list-languages"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, stdout, stderr := runAsTint(t, tt.args...)

			line, err := bufio.NewReader(stdout).ReadString('\n')
			require.NoError(t, err)
			assert.NotEmpty(t, line)
			require.NoError(t, stdout.Close())

			err = cmd.Wait()
			assert.NoError(t, err, "exit state: %v", cmd.ProcessState)
			assert.Equal(t, 0, cmd.ProcessState.ExitCode())
			assert.Empty(t, stderr.String())
		})
	}
}
