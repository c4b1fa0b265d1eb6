package cli

import (
	"context"
	"fmt"

	"foliot/internal/render"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Filter string
	Tail   int
	Wrap   int
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		Tail:         app.config.Display.DefaultTail,
		Wrap:         app.config.Display.WrapWidth,
	}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context, namespace string, args []string) error {
	filter, err := buildCommentFilter(c.Filter)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	entries, err := c.app.api.ListEntries(ctx, namespace, filter, c.Tail)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	for _, line := range render.Entries(entries, c.Wrap) {
		fmt.Fprintln(c.app.out, line)
	}
	return nil
}
