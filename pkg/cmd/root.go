package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/js-imports-group/pkg/config"
	"github.com/siyuan-infoblox/js-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/js-imports-group/pkg/formatter"
	"github.com/siyuan-infoblox/js-imports-group/pkg/utils"
	"github.com/siyuan-infoblox/js-imports-group/pkg/version"
)

const (
	UseDescription   = "jig [flags] PATH"
	ShortDescription = "JS imports grouper - A tool to group and sort JavaScript imports"
	LongDescription  = `jig is a command-line tool that groups and sorts the leading import block
of JavaScript and TypeScript files.

Imports are classified by an ordered rule table into groups:
1. Side-effect imports of packages, then of relative paths
2. Framework imports (react, prop-types, redux, mobx, ...), react and prop-types first
3. Package imports, by binding shape (namespace, default, named) and binding case
4. Relative imports, by the same shapes

Groups are separated by a blank line, except the framework group which stays
attached to the package imports that follow it.

PATH can be either a single source file or a directory. When a directory is specified,
all JavaScript and TypeScript files in the directory and subdirectories are processed
recursively, skipping node_modules and other build output.`
)

// RootCommand holds the flags for the root command
type RootCommand struct {
	configPath           string
	inPlace              bool
	diff                 bool
	check                bool
	literalNamespaceCase bool
	verbose              bool
	showVersion          bool
	versionStr           string
}

// NewRootCommand creates the jig command with its subcommands
func NewRootCommand(versionStr string) *cobra.Command {
	c := &RootCommand{versionStr: versionStr}

	rootCmd := &cobra.Command{
		Use:          UseDescription,
		Short:        ShortDescription,
		Long:         LongDescription,
		Args:         c.validateArgs,
		RunE:         c.run,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to a config file (default: .jig.yaml in the project root, current directory or home)")
	rootCmd.PersistentFlags().BoolVar(&c.inPlace, "in-place", false, "Modify the file in place instead of printing to stdout")
	rootCmd.PersistentFlags().BoolVar(&c.literalNamespaceCase, "literal-namespace-case", false, "Keep the uppercase predicate on the lowercase default+namespace rows")
	rootCmd.PersistentFlags().BoolVar(&c.verbose, "verbose", false, "Log diagnostics to stderr")
	rootCmd.Flags().BoolVar(&c.diff, "diff", false, "Print a diff instead of the sorted file")
	rootCmd.Flags().BoolVar(&c.check, "check", false, "Report files whose imports are not sorted and exit with an error")
	rootCmd.Flags().BoolVarP(&c.showVersion, "version", "v", false, "Show version information")

	rootCmd.AddCommand(NewRulesCommand())

	return rootCmd
}

func (c *RootCommand) validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if c.showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func (c *RootCommand) run(cmd *cobra.Command, args []string) error {
	if c.showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Resolve(c.versionStr).String())
		return nil
	}

	path := args[0]

	cfg, err := config.LoadConfig(c.configPath, utils.FindProjectRoot(path))
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	// explicitly set flags win over the config file
	flags := cmd.Flags()
	if flags.Changed("in-place") {
		cfg.InPlace = c.inPlace
	}
	if flags.Changed("literal-namespace-case") {
		cfg.LiteralNamespaceCase = c.literalNamespaceCase
	}

	logger := newLogger(cmd.ErrOrStderr(), c.verbose)
	logger.Debug("loaded config", "extensions", cfg.Extensions, "exclude", cfg.Exclude,
		"in_place", cfg.InPlace, "literal_namespace_case", cfg.LiteralNamespaceCase)

	g := formatter.New(formatter.FormatterConfig{
		FilePath:             path, // This will be updated for each file when processing directories
		InPlace:              cfg.InPlace,
		Diff:                 c.diff,
		Check:                c.check,
		LiteralNamespaceCase: cfg.LiteralNamespaceCase,
		Extensions:           cfg.Extensions,
		Exclude:              cfg.Exclude,
		Out:                  cmd.OutOrStdout(),
		Logger:               logger,
	})
	return g.ProcessPath(cmd.Context(), path)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func Execute(versionStr string) error {
	return NewRootCommand(versionStr).Execute()
}
