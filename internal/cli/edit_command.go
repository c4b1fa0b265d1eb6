package cli

import (
	"context"

	"foliot/internal/errors"
	"foliot/internal/repository"
)

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// Clockin selects the marker file instead of the entries file
	Clockin bool
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, namespace string, args []string) error {
	key := repository.EntriesKey(namespace)
	if c.Clockin {
		key = repository.MarkerKey(namespace)
	}

	exists, err := c.app.store.Exists(ctx, key)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	if !exists {
		return c.errorHandler.HandleSimple(
			notFoundForEdit(namespace, c.Clockin))
	}

	if err := c.app.Editor().Open(ctx, c.app.store, key); err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	return nil
}

// notFoundForEdit builds the error reported when the file to edit is
// missing.
func notFoundForEdit(namespace string, clockin bool) error {
	if clockin {
		return errors.NewNotRunningError(namespace)
	}
	return errors.NewNotFoundError("namespace", namespace)
}
