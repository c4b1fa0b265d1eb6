package cli

import (
	"context"
	"fmt"

	"foliot/internal/render"
)

// SummarizeCommand handles the summarize command
type SummarizeCommand struct {
	app          *App
	errorHandler *ErrorHandler

	Filter string
	Tail   int
}

// NewSummarizeCommand creates a new summarize command handler
func NewSummarizeCommand(app *App) *SummarizeCommand {
	return &SummarizeCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
		Tail:         app.config.Display.DefaultTail,
	}
}

// Execute runs the summarize command
func (c *SummarizeCommand) Execute(ctx context.Context, namespace string, args []string) error {
	filter, err := buildCommentFilter(c.Filter)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	summaries, err := c.app.api.Summarize(ctx, namespace, filter, c.Tail)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	for _, line := range render.Summaries(summaries) {
		fmt.Fprintln(c.app.out, line)
	}
	return nil
}
