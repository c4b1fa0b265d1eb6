package cli

import (
	"context"
	"fmt"

	"foliot/internal/errors"
	"foliot/internal/repository"
)

// PathCommand handles the path command
type PathCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// EntriesFile prints the namespace's entries file instead of the
	// data directory
	EntriesFile bool
}

// NewPathCommand creates a new path command handler
func NewPathCommand(app *App) *PathCommand {
	return &PathCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the path command
func (c *PathCommand) Execute(ctx context.Context, namespace string, args []string) error {
	locator, ok := c.app.store.(repository.Locator)
	if !ok {
		return c.errorHandler.HandleSimple(
			errors.NewInvalidInputError("backend", "", "the configured storage backend does not keep files"))
	}

	if c.EntriesFile {
		fmt.Fprintln(c.app.out, locator.Path(repository.EntriesKey(namespace)))
	} else {
		fmt.Fprintln(c.app.out, locator.Dir())
	}
	return nil
}
