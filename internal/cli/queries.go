package cli

import (
	"github.com/spf13/cobra"
)

// NewHighestDeathsCommand creates the highest-deaths command (task 1).
func NewHighestDeathsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "highest-deaths",
		Short: "Print the country with the highest number of deaths",
		Long: `Print the country with the highest number of deaths.

When several countries share the highest count, the first one in the file
wins. An empty data file is reported as E_EMPTY_DATASET.

Examples:
  covid19 highest-deaths
  covid19 highest-deaths --source ./CovidLive.csv --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask(rootOpts, TaskHighestDeaths, cmd)
		},
	}
}

// NewActiveCasesCommand creates the active-cases command (task 2).
func NewActiveCasesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "active-cases",
		Short: "List countries by number of active cases, highest first",
		Long: `List countries by number of active cases, highest first.

Countries with equal counts keep their order from the file.

Examples:
  covid19 active-cases
  covid19 active-cases --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask(rootOpts, TaskActiveCases, cmd)
		},
	}
}

// NewTestCountsCommand creates the test-counts command (task 3).
func NewTestCountsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "test-counts",
		Short: "List the number of tests per country",
		Long: `List the number of tests per country in file order.

Examples:
  covid19 test-counts
  covid19 test-counts --source ./CovidLive.csv`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask(rootOpts, TaskTestCounts, cmd)
		},
	}
}

// NewPearsonCommand creates the pearson command (task 4).
func NewPearsonCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "pearson",
		Short:         "Pearson's correlation (not implemented)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTask(rootOpts, TaskPearson, cmd)
		},
	}
}
