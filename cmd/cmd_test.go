package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/naka-gawa/github-profile-assets/internal/config"
	"github.com/naka-gawa/github-profile-assets/internal/splice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerate_MissingTokenFailsBeforeNetwork(t *testing.T) {
	for _, k := range []string{config.EnvToken, config.EnvUsername, config.EnvRepositoryOwner} {
		t.Setenv(k, "")
	}

	_, err := run(t, "", "generate", "--out", t.TempDir())

	assert.ErrorIs(t, err, config.ErrMissing)
	assert.Contains(t, err.Error(), config.EnvToken)
}

func TestSplice_FromStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("a <!-- S --> old <!-- E --> b"), 0o644))

	_, err := run(t, "fresh\n", "splice", path, "--start", "<!-- S -->", "--end", "<!-- E -->")

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a <!-- S -->\nfresh\n<!-- E --> b", string(data))
}

func TestSplice_MissingMarkers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("no markers"), 0o644))
	content := filepath.Join(t.TempDir(), "block.md")
	require.NoError(t, os.WriteFile(content, []byte("x"), 0o644))

	_, err := run(t, "", "splice", path, content, "--start", "<!-- S2 -->", "--end", "<!-- E2 -->")

	assert.ErrorIs(t, err, splice.ErrMarkerNotFound)
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "no markers", string(data))
}
