package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/roach88/covid19/internal/covid"
)

// Task identifies one of the numbered queries offered by the menu.
type Task int

const (
	TaskNone Task = iota
	TaskHighestDeaths
	TaskActiveCases
	TaskTestCounts
	TaskPearson
)

// TaskNotFoundMessage is printed for task numbers outside 1..4.
const TaskNotFoundMessage = "Task not found with given number"

// ErrCodeTaskNotFound is the CLI error code for an unknown task number.
const ErrCodeTaskNotFound = "E_TASK_NOT_FOUND"

// TaskFromInt maps a menu number to its Task. Unknown numbers map to TaskNone.
func TaskFromInt(n int) Task {
	if n < int(TaskHighestDeaths) || n > int(TaskPearson) {
		return TaskNone
	}
	return Task(n)
}

func (t Task) String() string {
	switch t {
	case TaskHighestDeaths:
		return "highest-deaths"
	case TaskActiveCases:
		return "active-cases"
	case TaskTestCounts:
		return "test-counts"
	case TaskPearson:
		return "pearson"
	default:
		return "none"
	}
}

// NewTaskCommand creates the task command.
func NewTaskCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "task <number>",
		Short: "Run a task by its menu number",
		Long: `Run one of the numbered tasks.

  1  country with the highest number of deaths
  2  countries ordered by active cases
  3  number of tests per country
  4  Pearson's correlation (not implemented)

Any other number reports "Task not found with given number".

Examples:
  covid19 task 1
  covid19 task 2 --source ./CovidLive.csv --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTaskArg(rootOpts, args[0], cmd)
		},
	}
}

// runTaskArg runs the task named by a textual number. Text that is not a
// number selects no task.
func runTaskArg(opts *RootOptions, arg string, cmd *cobra.Command) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		n = 0
	}
	return runTask(opts, TaskFromInt(n), cmd)
}

// runTask executes task against a freshly constructed engine and renders
// the result.
func runTask(opts *RootOptions, task Task, cmd *cobra.Command) error {
	formatter, logger := opts.invocation(cmd)
	engine := covid.NewEngine(opts.dataSource(), covid.WithLogger(logger))

	logger.Debug("running task", "task", task.String(), "source", engine.Source().Name())

	switch task {
	case TaskHighestDeaths:
		rec, err := engine.HighestDeaths()
		if err != nil {
			return reportQueryError(formatter, err)
		}
		return renderHighestDeaths(formatter, rec)

	case TaskActiveCases:
		records, err := engine.OrderedByActiveCases()
		if err != nil {
			return reportQueryError(formatter, err)
		}
		return renderCountryTable(formatter, activeCasesTable, records)

	case TaskTestCounts:
		records, err := engine.AllRecords()
		if err != nil {
			return reportQueryError(formatter, err)
		}
		return renderCountryTable(formatter, testCountsTable, records)

	case TaskPearson:
		res := engine.PearsonCoefficient()
		return formatter.Notice(res.Message, res)

	default:
		if err := formatter.Error(ErrCodeTaskNotFound, TaskNotFoundMessage, nil); err != nil {
			return err
		}
		return NewExitError(ExitCommandError, TaskNotFoundMessage).reported()
	}
}

// reportQueryError prints a query failure and returns the matching ExitError.
// A source that cannot be opened is a command error; anything wrong with the
// data itself is a failure.
func reportQueryError(formatter *OutputFormatter, err error) error {
	code := string(covid.CodeOf(err))
	if code == "" {
		code = "E_INTERNAL"
	}
	if ferr := formatter.Error(code, err.Error(), nil); ferr != nil {
		return errors.Join(err, ferr)
	}

	exitCode := ExitFailure
	if covid.IsDataAccessError(err) {
		exitCode = ExitCommandError
	}
	return WrapExitError(exitCode, fmt.Sprintf("query failed [%s]", code), err).reported()
}
