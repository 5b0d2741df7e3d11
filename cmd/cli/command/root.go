package command

// root.go defines the root command for the tracker CLI.
// Global flags and the per-invocation session are set up here.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// newRootCommand builds a fresh command tree bound to its own session.
func newRootCommand() (*cobra.Command, *session) {
	s := &session{}

	rootCmd := &cobra.Command{
		Use:   "tracker",
		Short: "tracker - TV series tracker",
		Long: `tracker keeps a personal catalog of TV series in a local database.
Every invocation acts on behalf of one session user, chosen with --user.
With it you can:
- Create series with their seasons and episodes
- Review and rate series
- Keep a watchlist with a watch status per series

Use "tracker [command] --help" to see all available commands.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsStore(cmd) {
				return nil
			}
			return s.open(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Global persistent flags = available to all subcommands
	rootCmd.PersistentFlags().StringVarP(&s.username, "user", "u", os.Getenv("TRACKER_USER"), "session user (created on first use)")
	rootCmd.PersistentFlags().StringVar(&s.envFile, "env-file", ".env", "optional dotenv file with configuration")

	rootCmd.AddCommand(newUserCommand(s))
	rootCmd.AddCommand(newSeriesCommand(s))
	rootCmd.AddCommand(newSeasonCommand(s))
	rootCmd.AddCommand(newEpisodeCommand(s))
	rootCmd.AddCommand(newReviewCommand(s))
	rootCmd.AddCommand(newWatchlistCommand(s))
	rootCmd.AddCommand(newExportCommand(s))
	rootCmd.AddCommand(newDBCommand(s))

	return rootCmd, s
}

// Execute runs the command tree and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Error:", err) // Print error to standard error
		}
		os.Exit(1)
	}
}

// execute runs one invocation and always releases the session's store,
// including when the command failed.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd, s := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if closeErr := s.close(); err == nil {
		err = closeErr
	}
	return err
}

// needsStore reports whether cmd acts on the database. Help and grouping
// commands without a RunE do not.
func needsStore(cmd *cobra.Command) bool {
	if cmd.Name() == "help" || cmd.Name() == "completion" || !cmd.Runnable() {
		return false
	}
	return cmd.Parent() != nil
}
