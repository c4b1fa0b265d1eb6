package cli

import (
	"context"
	"strconv"
	"strings"

	"foliot/internal/errors"
)

// ClockCommand handles the clock command
type ClockCommand struct {
	app          *App
	errorHandler *ErrorHandler

	// Starting holds the raw --starting flag value
	Starting string
}

// NewClockCommand creates a new clock command handler
func NewClockCommand(app *App) *ClockCommand {
	return &ClockCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the clock command; the first argument is the number of
// hours, the remaining arguments form the comment
func (c *ClockCommand) Execute(ctx context.Context, namespace string, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("hours", "", "usage: foliot clock <hours> [comment]")
	}

	hours, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return c.errorHandler.HandleSimple(
			errors.NewInvalidInputError("hours", args[0], "hours must be a number"))
	}
	comment := strings.Join(args[1:], " ")

	starting, err := parseStarting(c.Starting)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	entry, err := c.app.api.ClockSpan(ctx, namespace, hours, starting, comment)
	if err != nil {
		return c.errorHandler.Handle("record entry", err)
	}

	c.app.printEntry(namespace, entry)
	return nil
}
