package cli

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"foliot/internal/api"
	"foliot/internal/config"
	"foliot/internal/domain"
	"foliot/internal/editor"
	"foliot/internal/errors"
	"foliot/internal/repository"
	"foliot/internal/timeutil"
	"foliot/internal/vcs"
)

// App bundles the dependencies shared by all command handlers
type App struct {
	api    api.API
	config *config.Config
	store  repository.Store
	out    io.Writer
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config, store repository.Store) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
		store:  store,
		out:    os.Stdout,
	}
}

// SetOutput redirects command output, used by tests
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Git returns a git runner rooted at the data directory
func (a *App) Git() *vcs.Git {
	return vcs.New(a.config.Tools.GitBinary, a.config.Storage.Dir)
}

// Editor returns the configured interactive editor
func (a *App) Editor() *editor.Editor {
	return editor.New(a.config.Tools.Editor)
}

// formatTime renders a timestamp using the configured display format
func (a *App) formatTime(t time.Time) string {
	return t.Format(a.config.Display.TimeFormat)
}

// printEntry prints the block shown after an entry has been recorded
func (a *App) printEntry(namespace string, entry domain.Entry) {
	fmt.Fprintf(a.out, "Adding entry for namespace '%s':\n", namespace)
	fmt.Fprintf(a.out, "\t starting at %s\n", a.formatTime(entry.StartTime))
	fmt.Fprintf(a.out, "\t ending at   %s\n", a.formatTime(entry.EndTime))
	fmt.Fprintf(a.out, "\t duration:   %s\n", entry.Duration())
	if entry.Comment != "" {
		fmt.Fprintf(a.out, "\t comment:    %s\n", entry.Comment)
	}
}

// parseStarting parses an optional --starting flag value
func parseStarting(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := timeutil.ParseStartingValue(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// buildCommentFilter compiles a regex filter over entry comments.
// Entries without a comment always pass.
func buildCommentFilter(pattern string) (api.FilterFunc, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.NewInvalidInputError("filter", pattern, "invalid regular expression")
	}
	return func(e domain.Entry) bool {
		if e.Comment == "" {
			return true
		}
		return re.MatchString(e.Comment)
	}, nil
}
