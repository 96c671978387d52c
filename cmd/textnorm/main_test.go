package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func runCLI(t *testing.T, args []string, stdin string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, noEnv, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), err
}

func TestRunArguments(t *testing.T) {
	out, err := runCLI(t, []string{"Three", "euros", "and", "sixty", "five", "cents."}, "")
	require.NoError(t, err)
	assert.Equal(t, "€3.65\n", out)
}

func TestRunStdin(t *testing.T) {
	out, err := runCLI(t, []string{"-workers", "2"}, "nine one one\nMy favourite colour\n")
	require.NoError(t, err)
	assert.Equal(t, "911\nmy favorite color\n", out)
}

func TestRunModes(t *testing.T) {
	tests := []struct {
		args []string
		in   string
		want string
	}{
		{[]string{"-mode", "basic", "-strategy", "diacritics"}, "Ærøskøbing café!", "aeroskobing cafe\n"},
		{[]string{"-mode", "numbers"}, "twenty percent", "20%\n"},
		{[]string{"-mode", "spelling"}, "colour", "color\n"},
		{[]string{"-punctuation"}, "It rained. We left.", "it rained. we left.\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := runCLI(t, tt.args, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textnorm.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: basic\nsplit_letters: true\n"), 0o600))

	out, err := runCLI(t, []string{"-config", path, "ab"}, "")
	require.NoError(t, err)
	assert.Equal(t, "a b\n", out)

	// flags win over the file
	out, err = runCLI(t, []string{"-config", path, "-mode", "numbers", "two"}, "")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestRunEnvironment(t *testing.T) {
	t.Setenv("TEXTNORM_MODE", "spelling")

	out, err := runCLI(t, []string{"grey"}, "")
	require.NoError(t, err)
	assert.Equal(t, "gray\n", out)
}

func TestRunErrors(t *testing.T) {
	_, err := runCLI(t, []string{"-mode", "klingon"}, "")
	require.ErrorIs(t, err, errUnknownMode)

	_, err = runCLI(t, []string{"-mode", "basic", "-strategy", "emoji"}, "")
	require.Error(t, err)

	_, err = runCLI(t, []string{"-log-level", "loud", "x"}, "")
	require.Error(t, err)

	_, err = runCLI(t, []string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, "")
	require.Error(t, err)
}
