package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"foliot/internal/errors"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App

	namespace string
	gitCommit bool
	gitPush   bool
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "foliot",
		Short: "A command-line clock for tracking working hours",
		Long: `Foliot tracks working hours per namespace with a simple clock.

EXAMPLES:
  foliot clockin                           # Start the clock
  foliot clockin --starting 08:30          # Start the clock at 08:30
  foliot clockout "code review"            # Stop the clock and save the entry
  foliot clock 1.5 "retro meeting"         # Record 1.5 hours ending now
  foliot status                            # Show the running clock
  foliot show --tail 10                    # Show the last 10 entries
  foliot summarize                         # Per-month totals
  foliot -n household clockin              # Track a different namespace
  foliot -g clockout                       # Commit the data dir afterwards

CONFIGURATION:
  Settings load from ~/.config/foliot/config.toml and can be overridden
  with FOLIOT_* environment variables, for example:
    FOLIOT_STORAGE_BACKEND                 Storage backend: yaml or sqlite
    FOLIOT_STORAGE_DIR                     Data directory
    FOLIOT_DISPLAY_DEFAULT_TAIL            Default number of rows shown
    FOLIOT_VALIDATION_STRICT_SPAN          Reject entries that do not end
                                           after they start
    FOLIOT_TOOLS_EDITOR                    Editor fallback for 'edit'

TIME FORMATS:
  --starting accepts 2006-01-02T15:04:05, 02.01.2006-15:04,
  "02.01.2006 15:04" and bare times (15:04, 15:04h, 1504, 1504h).
  A bare time means today if it is in the past, otherwise yesterday.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if root.namespace == "" {
				return errors.NewInvalidInputError("namespace", "", "the namespace parameter must not be empty")
			}
			return nil
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// SetArgs overrides the arguments, used by tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// addGlobalFlags adds flags shared by every subcommand
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()
	flags.StringVarP(&r.namespace, "namespace", "n", "default", "The namespace to apply the command to")
	flags.BoolVarP(&r.gitCommit, "git-commit", "g", false, `Run 'git commit -am "[<namespace>] <action>"' afterwards`)
	flags.BoolVarP(&r.gitPush, "git-push", "p", false, "Pull, rebase and push the git repository afterwards")
}

// run wraps a handler invocation with the configured timeout and the
// post-run git actions
func (r *RootCommand) run(name string, args []string, handler func(ctx context.Context, namespace string, args []string) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout())
	defer cancel()

	if err := handler(ctx, r.namespace, args); err != nil {
		return err
	}
	return r.postRun(name, args)
}

// runInteractive wraps handlers that wait on user-driven subprocesses
// (the editor, interactive git). Those sessions have no natural upper
// bound, so the application timeout must not apply to them.
func (r *RootCommand) runInteractive(name string, args []string, handler func(ctx context.Context, namespace string, args []string) error) error {
	if err := handler(context.Background(), r.namespace, args); err != nil {
		return err
	}
	return r.postRun(name, args)
}

// postRun commits and optionally syncs the data directory after a
// successful command. Git may block on hooks or credential prompts, so
// it runs without a deadline.
func (r *RootCommand) postRun(name string, args []string) error {
	if !r.gitCommit {
		return nil
	}
	ctx := context.Background()

	action := name
	if len(args) > 0 {
		action = name + " " + strings.Join(args, " ")
	}
	message := fmt.Sprintf("[%s] %s", r.namespace, action)

	fmt.Fprintf(r.app.out, "\n=> git commit -am %q\n", message)
	if err := r.app.Git().CommitAll(ctx, message); err != nil {
		return err
	}

	if r.gitPush {
		fmt.Fprintln(r.app.out, "\n=> git pull --rebase && git push")
		return r.app.Git().Sync(ctx)
	}
	return nil
}

func (r *RootCommand) timeout() time.Duration {
	if r.app.config != nil {
		return r.app.config.Application.Timeout
	}
	return 30 * time.Second
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	clockinHandler := NewClockinCommand(r.app)
	clockinCmd := &cobra.Command{
		Use:   "clockin",
		Short: "Start the timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("clockin", args, clockinHandler.Execute)
		},
	}
	clockinCmd.Flags().StringVarP(&clockinHandler.Starting, "starting", "s", "",
		"Starting time (format: 2006-01-02T15:04:05, eg. 2015-09-18T23:56:04)")

	clockoutHandler := NewClockoutCommand(r.app)
	clockoutCmd := &cobra.Command{
		Use:   "clockout [comment]",
		Short: "Stop the timer and save the entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("clockout", args, clockoutHandler.Execute)
		},
	}

	clockHandler := NewClockCommand(r.app)
	clockCmd := &cobra.Command{
		Use:   "clock <hours> [comment]",
		Short: "Clock an arbitrary time",
		Long: `Clock an arbitrary number of hours (a floating point number).
Without --starting the entry ends now; with it, the entry starts there.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("clock", args, clockHandler.Execute)
		},
	}
	clockCmd.Flags().StringVarP(&clockHandler.Starting, "starting", "s", "",
		"Starting time (format: 2006-01-02T15:04:05, eg. 2015-09-18T23:56:04)")

	abortHandler := NewAbortCommand(r.app)
	abortCmd := &cobra.Command{
		Use:   "abort",
		Short: "Abort the current timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("abort", args, abortHandler.Execute)
		},
	}

	statusHandler := NewStatusCommand(r.app)
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Print the current status of the clock timer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("status", args, statusHandler.Execute)
		},
	}

	showHandler := NewShowCommand(r.app)
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show entries in a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("show", args, showHandler.Execute)
		},
	}
	showCmd.Flags().StringVarP(&showHandler.Filter, "filter", "f", "", "Filter entries with regex")
	showCmd.Flags().IntVarP(&showHandler.Tail, "tail", "t", r.app.config.Display.DefaultTail,
		"Only show last n entries (0 to show all)")
	showCmd.Flags().IntVarP(&showHandler.Wrap, "wrap", "w", r.app.config.Display.WrapWidth,
		"Wrap the comment column at x chars")

	summarizeHandler := NewSummarizeCommand(r.app)
	summarizeCmd := &cobra.Command{
		Use:   "summarize",
		Short: "Create a per-month summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run("summarize", args, summarizeHandler.Execute)
		},
	}
	summarizeCmd.Flags().StringVarP(&summarizeHandler.Filter, "filter", "f", "", "Filter entries with regex")
	summarizeCmd.Flags().IntVarP(&summarizeHandler.Tail, "tail", "t", r.app.config.Display.DefaultTail,
		"Only show last n months (0 to show all)")

	editHandler := NewEditCommand(r.app)
	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the entries or clockin file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runInteractive("edit", args, editHandler.Execute)
		},
	}
	editCmd.Flags().BoolVarP(&editHandler.Clockin, "clockin", "c", false, "Edit the clockin file")

	pathHandler := NewPathCommand(r.app)
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the path to the data directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pathHandler.EntriesFile = cmd.InheritedFlags().Changed("namespace")
			return r.run("path", args, pathHandler.Execute)
		},
	}

	gitHandler := NewGitCommand(r.app)
	gitCmd := &cobra.Command{
		Use:   "git [args...]",
		Short: "Execute a git command in the data directory",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runInteractive("git", args, gitHandler.Execute)
		},
	}

	r.cmd.AddCommand(
		clockinCmd,
		clockoutCmd,
		clockCmd,
		abortCmd,
		statusCmd,
		showCmd,
		summarizeCmd,
		editCmd,
		pathCmd,
		gitCmd,
	)
}
