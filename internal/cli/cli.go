// Package cli implements the planner command line: a terminal front end to the
// timeline use cases that reads todos from a Markdown checklist.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"wedding-timeline/internal/catalog"
	"wedding-timeline/internal/checklist"
	"wedding-timeline/internal/model"
	"wedding-timeline/internal/timeline"
	"wedding-timeline/internal/timeline/engine"
	"wedding-timeline/internal/timeline/usecase"
	"wedding-timeline/pkg/datemath"
	"wedding-timeline/pkg/log"
)

// CLI wires the cobra commands to the timeline use cases.
type CLI struct {
	l         log.Logger
	out       io.Writer
	checklist checklist.Service
	clock     engine.Clock
	uc        timeline.UseCase

	// flags
	weddingDate string
	file        string
	timezone    string
	catalogPath string
	noColor     bool

	titleColor *color.Color
	okColor    *color.Color
	warnColor  *color.Color
	errorColor *color.Color
	mutedColor *color.Color
}

// Option configures a CLI.
type Option func(*CLI)

// WithClock pins the engine clock, mostly for tests.
func WithClock(c engine.Clock) Option {
	return func(cli *CLI) { cli.clock = c }
}

// New creates the CLI writing to out.
func New(l log.Logger, out io.Writer, opts ...Option) *CLI {
	c := &CLI{
		l:          l,
		out:        out,
		checklist:  checklist.New(),
		titleColor: color.New(color.FgCyan, color.Bold),
		okColor:    color.New(color.FgGreen),
		warnColor:  color.New(color.FgYellow),
		errorColor: color.New(color.FgRed, color.Bold),
		mutedColor: color.New(color.FgHiBlack),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RootCommand builds the command tree.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "planner",
		Short:         "Adaptive wedding planning timeline",
		Long:          "planner fits the wedding planning phases to the time you have left and tells you what to do next.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.noColor {
				color.NoColor = true
			}
			return c.setup()
		},
	}
	root.SetOut(c.out)

	flags := root.PersistentFlags()
	flags.StringVarP(&c.weddingDate, "date", "d", os.Getenv("WEDDING_DATE"), "wedding date (YYYY-MM-DD or relative, e.g. \"in 9 months\")")
	flags.StringVarP(&c.file, "file", "f", "", "Markdown checklist holding your todos")
	flags.StringVar(&c.timezone, "timezone", "UTC", "IANA timezone for wedding dates")
	flags.StringVar(&c.catalogPath, "catalog", "", "YAML catalog overriding the built-in categories, phases and tasks")
	flags.BoolVar(&c.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		c.countdownCommand(),
		c.phasesCommand(),
		c.suggestCommand(),
		c.insightsCommand(),
		c.doneCommand(),
	)
	return root
}

// Execute runs the root command.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		c.errorColor.Fprintf(c.out, "Error: %v\n", err)
		return err
	}
	return nil
}

// setup loads the catalog and builds the use case from the flags.
func (c *CLI) setup() error {
	cat, err := catalog.Load(c.catalogPath)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	dateMath, err := datemath.NewParser(c.timezone)
	if err != nil {
		return err
	}

	var opts []engine.Option
	if c.clock != nil {
		opts = append(opts, engine.WithClock(c.clock))
	}
	c.uc = usecase.New(c.l, engine.New(cat, opts...), dateMath)
	return nil
}

// loadTodos reads todos from the checklist file, if one was given.
func (c *CLI) loadTodos() ([]model.TodoItem, error) {
	if c.file == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(c.file)
	if err != nil {
		return nil, fmt.Errorf("read checklist: %w", err)
	}
	return c.checklist.Todos(string(raw)), nil
}

func (c *CLI) planInput() (timeline.PlanInput, error) {
	todos, err := c.loadTodos()
	if err != nil {
		return timeline.PlanInput{}, err
	}
	return timeline.PlanInput{WeddingDate: c.weddingDate, Todos: todos}, nil
}
