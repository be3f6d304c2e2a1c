package output

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/tint/pkg/errors"
)

func TestParsePagingMode(t *testing.T) {
	tests := []struct {
		in      string
		want    PagingMode
		wantErr bool
	}{
		{in: "auto", want: QuitIfOneScreen},
		{in: "", want: QuitIfOneScreen},
		{in: "Always", want: Always},
		{in: "never", want: Never},
		{in: "sometimes", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePagingMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsKind(err, errors.ErrArgument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPagerCommand(t *testing.T) {
	t.Run("defaults to less with flags", func(t *testing.T) {
		t.Setenv(EnvPager, "")
		t.Setenv("PAGER", "")
		assert.Equal(t, []string{"less", "-R", "-F", "-X"}, PagerCommand("", QuitIfOneScreen))
		assert.Equal(t, []string{"less", "-R"}, PagerCommand("", Always))
	})

	t.Run("tint pager env wins over PAGER", func(t *testing.T) {
		t.Setenv(EnvPager, "more -s")
		t.Setenv("PAGER", "most")
		assert.Equal(t, []string{"more", "-s"}, PagerCommand("", Always))
	})

	t.Run("explicit pager wins", func(t *testing.T) {
		t.Setenv(EnvPager, "more")
		assert.Equal(t, []string{"most"}, PagerCommand("most", Always))
	})

	t.Run("user flags for less are kept", func(t *testing.T) {
		assert.Equal(t, []string{"less", "-S"}, PagerCommand("less -S", QuitIfOneScreen))
	})

	t.Run("tint as pager is ignored", func(t *testing.T) {
		assert.Nil(t, PagerCommand("/usr/bin/tint", Always))
	})
}

func TestNewWithoutTerminalWritesDirectly(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	out, err := New(Always, "", f)
	require.NoError(t, err)
	assert.False(t, out.IsPager())
	assert.Equal(t, f, out.Writer())
	assert.NoError(t, out.Close())
}

func TestStdout(t *testing.T) {
	var buf bytes.Buffer
	out := Stdout(&buf)
	_, err := out.Writer().Write([]byte("x"))
	require.NoError(t, err)
	assert.NoError(t, out.Close())
	assert.Equal(t, "x", buf.String())
}
