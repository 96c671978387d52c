package spelling

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEnglish(t *testing.T) {
	m := English()

	tests := map[string]string{
		"mobilisation": "mobilization",
		"cancelation":  "cancellation",
		"favourite":    "favorite",
		"colour":       "color",
		"organise":     "organize",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, m.Normalize(in))
		})
	}

	assert.Greater(t, m.Len(), 100)
	assert.Same(t, m, English())
}

func TestNormalizeKeepsAmericanSpelling(t *testing.T) {
	m := English()
	assert.Equal(t, "mobilization, cancellation, favorite", m.Normalize("mobilization, cancellation, favorite"))
	assert.Equal(t, "the color of the theater", m.Normalize("the  colour of\tthe theatre"))
}

func TestParse(t *testing.T) {
	in := strings.Join([]string{
		"colour=color",
		"",
		"# comment",
		"a=b=c",
		"=orphan",
		"  grey = gray  ",
		"colour=colour",
	}, "\n")

	m, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())

	v, ok := m.Lookup("grey")
	assert.True(t, ok)
	assert.Equal(t, "gray", v)

	v, ok = m.Lookup("colour")
	assert.True(t, ok)
	assert.Equal(t, "colour", v)

	_, ok = m.Lookup("a")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.txt")
	require.NoError(t, os.WriteFile(path, []byte("tyre=tire\n"), 0o600))

	m, err := Load(path, WithLogger(discardLogger()))
	require.NoError(t, err)
	assert.Equal(t, "flat tire", m.Normalize("flat tyre"))
}

func TestLoadMissingFileIsIdentity(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "missing.txt"), WithLogger(discardLogger()))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "colour", m.Normalize("colour"))
}

func TestLoadDirectoryFails(t *testing.T) {
	_, err := Load(t.TempDir(), WithLogger(discardLogger()))
	require.Error(t, err)
}
