package cli

import (
	"context"
	"fmt"
)

// AbortCommand handles the abort command
type AbortCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewAbortCommand creates a new abort command handler
func NewAbortCommand(app *App) *AbortCommand {
	return &AbortCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the abort command
func (c *AbortCommand) Execute(ctx context.Context, namespace string, args []string) error {
	if err := c.app.api.Abort(ctx, namespace); err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	fmt.Fprintf(c.app.out, "Aborting clock for namespace '%s'\n", namespace)
	return nil
}
