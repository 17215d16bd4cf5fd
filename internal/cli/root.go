package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/covid19/internal/config"
	"github.com/roach88/covid19/internal/covid"
	"github.com/roach88/covid19/internal/dataset"
	"github.com/roach88/covid19/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Source  string // CSV path; empty selects the bundled dataset
	Config  string // optional YAML config file

	// TraceIDs allows overriding the trace id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	TraceIDs TraceIDGenerator

	logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the covid19 CLI.
func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{})
}

// NewRootCommandWithOptions creates the root command bound to opts.
func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covid19 [task-number]",
		Short: "covid19 - COVID-19 statistics queries",
		Long: `Query per-country COVID-19 statistics from a CSV file.

With a task number the matching task runs directly; without arguments the
task menu is shown and one number is read from standard input.

Tasks:
  1  country with the highest number of deaths
  2  countries ordered by active cases
  3  number of tests per country
  4  Pearson's correlation (not implemented)`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runTaskArg(opts, args[0], cmd)
			}
			return runMenu(opts, cmd)
		},
	}

	// Flag parse errors of every subcommand are command errors
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Source, "source", "", "CSV data file (default: bundled "+dataset.DefaultName+")")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "YAML config file")

	// Add subcommands
	cmd.AddCommand(NewHighestDeathsCommand(opts))
	cmd.AddCommand(NewActiveCasesCommand(opts))
	cmd.AddCommand(NewTestCountsCommand(opts))
	cmd.AddCommand(NewPearsonCommand(opts))
	cmd.AddCommand(NewTaskCommand(opts))
	cmd.AddCommand(NewMenuCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))

	return cmd
}

// prepare merges config file and environment settings into opts and
// configures logging. Flags set on the command line win.
func (o *RootOptions) prepare(cmd *cobra.Command) error {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load configuration", err)
	}

	if !cmd.Flags().Changed("format") {
		o.Format = cfg.Format
	}
	if !cmd.Flags().Changed("source") {
		o.Source = cfg.Source
	}

	// Validate format flag
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	level := cfg.Log.Level
	if o.Verbose {
		level = "debug"
	}
	o.logger = logging.Setup(cmd.ErrOrStderr(), level, cfg.Log.Format)
	return nil
}

// log returns the configured logger, or a discarding one when the command
// runs without the root's pre-run hook (as in unit tests).
func (o *RootOptions) log() *slog.Logger {
	if o.logger == nil {
		return logging.Discard()
	}
	return o.logger
}

// dataSource resolves the --source flag.
func (o *RootOptions) dataSource() covid.Source {
	if o.Source == "" {
		return dataset.Default()
	}
	return covid.FileSource(o.Source)
}

// invocation prepares the formatter and logger for one command run,
// both tagged with a fresh trace id.
func (o *RootOptions) invocation(cmd *cobra.Command) (*OutputFormatter, *slog.Logger) {
	gen := o.TraceIDs
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	traceID := gen.Generate()

	formatter := &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Text errors and verbose logs go to stderr
		Verbose:   o.Verbose,
		TraceID:   traceID,
	}
	return formatter, o.log().With("trace_id", traceID)
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
