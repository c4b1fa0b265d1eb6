package cli

import (
	"context"
	"strings"
)

// ClockoutCommand handles the clockout command
type ClockoutCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewClockoutCommand creates a new clockout command handler
func NewClockoutCommand(app *App) *ClockoutCommand {
	return &ClockoutCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the clockout command; positional arguments form the comment
func (c *ClockoutCommand) Execute(ctx context.Context, namespace string, args []string) error {
	comment := strings.Join(args, " ")

	entry, err := c.app.api.ClockOut(ctx, namespace, comment)
	if err != nil {
		return c.errorHandler.Handle("stop clock", err)
	}

	c.app.printEntry(namespace, entry)
	return nil
}
