package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const menuText = `# ====================================================== #
Choose the task number and press Enter:
  1. Print the country with the highest number of deaths
  2. Sort countries by highest number of active cases
  3. Print the number of tests per country
  4. Calculate Pearson's correlation
# ====================================================== #
`

// NewMenuCommand creates the menu command.
func NewMenuCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Show the task menu and read a task number from stdin",
		Long: `Show the task menu and read one task number from standard input.

Running covid19 without arguments does the same.

Examples:
  covid19 menu
  echo 2 | covid19 menu`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(rootOpts, cmd)
		},
	}
}

// runMenu prints the menu and runs the task whose number is on the first
// input line. In JSON mode the menu goes to stderr so stdout stays parseable.
func runMenu(opts *RootOptions, cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	if opts.Format == "json" {
		w = cmd.ErrOrStderr()
	}
	fmt.Fprint(w, menuText)

	choice := ""
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if scanner.Scan() {
		choice = strings.TrimSpace(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return WrapExitError(ExitCommandError, "failed to read task number", err)
	}

	return runTaskArg(opts, choice, cmd)
}
