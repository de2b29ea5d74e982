package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dashifen/git-branch/internal/config"
	"github.com/dashifen/git-branch/internal/git"
	"github.com/dashifen/git-branch/internal/log"
	"github.com/dashifen/git-branch/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg     *config.Config
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupNaming = "naming"
	GroupRepo   = "repo"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "git-branch",
	Short: "Parse and classify date-typed branch names",
	Long: `git-branch parses branch names following the <YYMMDD><r|f|b>-<description>
naming convention, classifies them as release/feature/bugfix branches,
derives parent/child relationships from the double-hyphen convention,
and lists repository branches and tags via the git CLI.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now; build the logger from their values
		// and attach it together with the printer to the command
		// context.
		ctx := log.WithLogger(cmd.Context(), log.New(cmd.ErrOrStderr(), verbose, quiet))
		ctx = output.WithPrinter(ctx, cmd.OutOrStdout())
		cmd.SetContext(ctx)

		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// parse and new work on plain strings, no repository needed
		if cmd.Name() == "parse" || cmd.Name() == "new" {
			return nil
		}

		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Get working directory
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "git-branch: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling. Logger and printer are
	// attached in PersistentPreRunE once flags have been parsed.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupNaming, Title: "Naming Commands:"},
		&cobra.Group{ID: GroupRepo, Title: "Repository Commands:"},
	)

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newNewCmd())

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCurrentCmd())
	rootCmd.AddCommand(newTagsCmd())
	rootCmd.AddCommand(newFindCmd())
}

// repoRoot locates the enclosing repository, bounded by the configured
// search depth.
func repoRoot() (string, error) {
	return git.FindRepoRoot(workDir, cfg.SearchDepth)
}
