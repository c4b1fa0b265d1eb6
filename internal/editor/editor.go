// Package editor spawns the user's text editor on data files.
package editor

import (
	"context"
	"os"
	"os/exec"

	"foliot/internal/errors"
	"foliot/internal/repository"
)

// Editor opens data files in an interactive editor.
type Editor struct {
	fallback string
}

// New creates an Editor with a fallback command used when neither
// $EDITOR nor $VISUAL is set.
func New(fallback string) *Editor {
	return &Editor{fallback: fallback}
}

// Command returns the editor command to run, resolved from $EDITOR,
// then $VISUAL, then the configured fallback.
func (e *Editor) Command() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	return e.fallback
}

// Open spawns the editor on the store document identified by key. The
// store must keep its documents as plain files; backends that do not
// report an invalid-input error.
func (e *Editor) Open(ctx context.Context, store repository.Store, key string) error {
	locator, ok := store.(repository.Locator)
	if !ok {
		return errors.NewInvalidInputError("backend", "", "the configured storage backend does not keep editable files")
	}

	cmd := exec.CommandContext(ctx, e.Command(), locator.Path(key))
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.WrapError(err, errors.ErrorTypeStorage, "editor exited with an error")
	}
	return nil
}
