package cli

import (
	"context"
	"fmt"
)

// ClockinCommand handles the clockin command
type ClockinCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// Starting holds the raw --starting flag value
	Starting string
}

// NewClockinCommand creates a new clockin command handler
func NewClockinCommand(app *App) *ClockinCommand {
	return &ClockinCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the clockin command
func (c *ClockinCommand) Execute(ctx context.Context, namespace string, args []string) error {
	starting, err := parseStarting(c.Starting)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	marker, err := c.app.api.ClockIn(ctx, namespace, starting)
	if err != nil {
		return c.errorHandler.Handle("start clock", err)
	}

	fmt.Fprintf(c.app.out, "Starting clock for namespace '%s' (%s)\n",
		namespace, c.app.formatTime(marker.StartTime))
	return nil
}
