// Package vcs runs git against the data directory.
package vcs

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"foliot/internal/errors"
	"foliot/internal/logging"
)

// Git runs git commands rooted at a fixed working directory.
type Git struct {
	binary string
	dir    string
}

// New creates a Git runner for the given data directory.
func New(binary, dir string) *Git {
	return &Git{binary: binary, dir: dir}
}

// Run executes git with the given arguments, wiring the process's
// standard streams through so interactive prompts still work.
func (g *Git) Run(ctx context.Context, args ...string) error {
	full := append([]string{"-C", g.dir}, args...)
	logging.Debugf("running %s %s\n", g.binary, strings.Join(full, " "))

	cmd := exec.CommandContext(ctx, g.binary, full...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.WrapError(err, errors.ErrorTypeStorage, "git command failed").
			WithContext("args", strings.Join(args, " "))
	}
	return nil
}

// CommitAll stages and commits every change in the data directory.
func (g *Git) CommitAll(ctx context.Context, message string) error {
	return g.Run(ctx, "commit", "-am", message)
}

// Sync pulls with rebase and pushes the current branch.
func (g *Git) Sync(ctx context.Context) error {
	if err := g.Run(ctx, "pull", "--rebase"); err != nil {
		return err
	}
	return g.Run(ctx, "push")
}
