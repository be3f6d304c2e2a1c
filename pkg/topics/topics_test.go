package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTopics(t *testing.T) {
	tm, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"configuration", "customization", "paging"}, tm.ListTopics())

	topic, ok := tm.GetTopic("paging")
	require.True(t, ok)
	assert.Contains(t, topic.Content, "TINT_PAGER")
}

func TestNewFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"one.md":         {Data: []byte("# One")},
		"nested/two.txt": {Data: []byte("two")},
		"skip.go":        {Data: []byte("package x")},
	}
	tm, err := NewFromFS(fsys, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, tm.ListTopics())

	_, ok := tm.GetTopic("--one")
	assert.True(t, ok, "flag-style names resolve")
	_, ok = tm.GetTopic("skip")
	assert.False(t, ok)
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "tint", RunE: func(*cobra.Command, []string) error { return nil }}
	root.AddCommand(&cobra.Command{Use: "cache", Short: "Manage the cache", Run: func(*cobra.Command, []string) {}})

	tm, err := NewFromFS(fstest.MapFS{"paging.md": {Data: []byte("# Paging\n\nUse a pager.\n")}}, Options{})
	require.NoError(t, err)
	tm.Install(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestHelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "paging"})
		require.NoError(t, root.Execute())
		assert.Equal(t, "# Paging\n\nUse a pager.\n", out.String())
	})

	t.Run("list", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "topics"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "  paging\n")
		assert.Contains(t, out.String(), "tint help <topic>")
	})

	t.Run("command", func(t *testing.T) {
		root, out := newRoot(t)
		root.SetArgs([]string{"help", "cache"})
		require.NoError(t, root.Execute())
		assert.Contains(t, out.String(), "Manage the cache")
	})

	t.Run("unknown", func(t *testing.T) {
		root, _ := newRoot(t)
		root.SilenceErrors = true
		root.SilenceUsage = true
		root.SetArgs([]string{"help", "nothing-here"})
		assert.Error(t, root.Execute())
	})
}

func TestGlamourRenderer(t *testing.T) {
	r := NewGlamourRenderer(false, 60)
	assert.Equal(t, "notty", r.Style)

	out := r.Render("# Title\n\nSome *text*.\n", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "text")

	assert.Equal(t, "raw", r.Render("raw", ".txt"))
}
