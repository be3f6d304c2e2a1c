// Package diff computes per-line git change markers for a file.
package diff

import (
	"bufio"
	"bytes"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/arthur-debert/tint/pkg/logging"
)

// LineChange is the kind of modification a line carries
type LineChange int

const (
	Added LineChange = iota
	RemovedAbove
	RemovedBelow
	Modified
)

// LineChanges maps 1-based line numbers to their change
type LineChanges map[int]LineChange

var hunkHeader = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// GetGitDiff returns the unstaged changes of path against the index. The
// boolean is false when the file is not tracked in a git repository.
func GetGitDiff(path string) (LineChanges, bool) {
	logger := logging.GetLogger("diff")

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, false
	}
	dir, name := filepath.Split(abs)

	if err := exec.Command("git", "-C", dir, "ls-files", "--error-unmatch", "--", name).Run(); err != nil {
		logger.Trace().Str("path", path).Msg("Not tracked by git")
		return nil, false
	}

	cmd := exec.Command("git", "-C", dir, "diff", "--no-color", "--no-ext-diff", "-U0", "--", name)
	output, err := cmd.Output()
	if err != nil {
		logger.Debug().Err(err).Str("path", path).Msg("git diff failed")
		return nil, false
	}

	return Parse(output), true
}

// Parse reads a zero-context unified diff and derives line markers for the
// new side of the file.
func Parse(unified []byte) LineChanges {
	changes := LineChanges{}
	scanner := bufio.NewScanner(bytes.NewReader(unified))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "@@") {
			continue
		}
		m := hunkHeader.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		oldCount := count(m[2])
		newStart, _ := strconv.Atoi(m[3])
		newCount := count(m[4])

		switch {
		case newCount == 0 && oldCount > 0:
			// pure deletion: the hunk sits after line newStart
			if newStart == 0 {
				changes[1] = RemovedAbove
			} else {
				changes[newStart] = RemovedBelow
			}
		case oldCount == 0:
			for i := newStart; i < newStart+newCount; i++ {
				changes[i] = Added
			}
		default:
			for i := newStart; i < newStart+newCount; i++ {
				changes[i] = Modified
			}
		}
	}
	return changes
}

func count(s string) int {
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return n
}
