package cli

import (
	"context"
	"fmt"
)

// StatusCommand handles the status command
type StatusCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the status command. A stopped clock is a regular answer,
// not an error.
func (c *StatusCommand) Execute(ctx context.Context, namespace string, args []string) error {
	marker, elapsed, err := c.app.api.Status(ctx, namespace)
	if err != nil {
		if c.errorHandler.IsNotRunningError(err) {
			fmt.Fprintf(c.app.out, "Clock is not running for namespace '%s'\n", namespace)
			return nil
		}
		return c.errorHandler.HandleSimple(err)
	}

	fmt.Fprintf(c.app.out, "Clock running for namespace '%s':\n", namespace)
	fmt.Fprintf(c.app.out, "\t started %s\n", c.app.formatTime(marker.StartTime))
	fmt.Fprintf(c.app.out, "\t running %s\n", elapsed)
	return nil
}
