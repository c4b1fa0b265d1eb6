package vcs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foliot/internal/errors"
)

func TestRunInDirectory(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "touched")

	// Use a shell as the "git" binary to observe the -C handling.
	script := filepath.Join(t.TempDir(), "fakegit")
	content := "#!/bin/sh\n[ \"$1\" = \"-C\" ] || exit 1\ntouch \"$2/touched\"\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o755))

	g := New(script, dir)
	require.NoError(t, g.Run(context.Background(), "status"))
	assert.FileExists(t, marker)
}

func TestRunFailure(t *testing.T) {
	g := New("false", t.TempDir())

	err := g.Run(context.Background(), "status")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))

	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "status", appErr.Context["args"])
}

func TestCommitAllArguments(t *testing.T) {
	out := filepath.Join(t.TempDir(), "args")
	script := filepath.Join(t.TempDir(), "fakegit")
	content := "#!/bin/sh\necho \"$@\" > " + out + "\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o755))

	dir := t.TempDir()
	g := New(script, dir)
	require.NoError(t, g.CommitAll(context.Background(), "[work] clockout"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "-C "+dir+" commit -am [work] clockout\n", string(data))
}

func TestSyncStopsOnPullFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "calls")
	script := filepath.Join(t.TempDir(), "fakegit")
	// Log the subcommand, fail on pull.
	content := "#!/bin/sh\nshift 2\necho \"$1\" >> " + out + "\n[ \"$1\" = pull ] && exit 1\nexit 0\n"
	require.NoError(t, os.WriteFile(script, []byte(content), 0o755))

	g := New(script, t.TempDir())
	require.Error(t, g.Sync(context.Background()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "pull\n", string(data), "push must not run after a failed pull")
}
