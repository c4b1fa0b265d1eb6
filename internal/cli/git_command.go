package cli

import (
	"context"
)

// GitCommand handles the git command
type GitCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewGitCommand creates a new git command handler
func NewGitCommand(app *App) *GitCommand {
	return &GitCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs git in the data directory with the given arguments
func (c *GitCommand) Execute(ctx context.Context, namespace string, args []string) error {
	if err := c.app.Git().Run(ctx, args...); err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	return nil
}
