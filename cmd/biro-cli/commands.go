package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/biro-lang/go-sdk/internal/literal"
	"github.com/biro-lang/go-sdk/internal/logging"
	"github.com/biro-lang/go-sdk/pkg/builtins"
)

// Version of the biro CLI.
const Version = "0.1.0"

// app holds what the subcommands share once the persistent flags are parsed.
type app struct {
	logger   *logrus.Logger
	printer  *builtins.Printer
	registry *builtins.Registry
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "biro-cli",
		Short:         "Call biro runtime builtins from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().String("log-level", logging.DefaultLevel, "log level (trace, debug, info, warning, error)")
	root.PersistentFlags().Bool("legacy-backspace", false, "close containers with backspaces like the native runtime (default: on when stdout is a terminal)")
	root.PersistentFlags().Bool("strict", false, "fail on values say cannot render instead of skipping them")
	root.PersistentFlags().Bool("no-color", false, "disable coloured error output")

	sayCmd := &cobra.Command{
		Use:   "say <literal>...",
		Short: "Render values",
		Long: `Render values the way the say builtin does.

Each literal is JSON: a number, string, boolean or array. Prefix an array
with q: for a queue or s: for a stack. Bare words are strings.

Flags must come before the first literal. Use -- when the first literal
starts with a dash, as in: say -- -3`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.say,
	}
	sayCmd.Flags().BoolP("no-newline", "n", false, "do not print a trailing newline")
	sayCmd.Flags().SetInterspersed(false)

	indexCmd := &cobra.Command{
		Use:   "index <array> <position> [value]",
		Short: "Read or replace an array element by rounded position",
		Long: `Read or replace an array element by rounded position.

The position is rounded half away from zero, so -0.4 reads the first
element. Negative positions may follow the array directly:

  index "[1, 2]" -0.4`,
		Args: cobra.RangeArgs(2, 3),
		RunE: a.index,
	}
	indexCmd.Flags().SetInterspersed(false)

	root.AddCommand(
		sayCmd,
		indexCmd,
		&cobra.Command{
			Use:   "len <literal>",
			Short: "Print the length of a string or container",
			Args:  cobra.ExactArgs(1),
			RunE:  a.length,
		},
		&cobra.Command{
			Use:   "ask [prompt]...",
			Short: "Print a prompt and echo the line read from stdin",
			RunE:  a.ask,
		},
		&cobra.Command{
			Use:   "list",
			Short: "List available builtins",
			Args:  cobra.NoArgs,
			RunE:  a.list,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), Version)
			},
		},
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	flags := cmd.Flags()

	level, err := flags.GetString("log-level")
	if err != nil {
		return err
	}
	a.logger, err = logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}

	legacy, err := flags.GetBool("legacy-backspace")
	if err != nil {
		return err
	}
	if !flags.Changed("legacy-backspace") {
		legacy = isTerminal(cmd.OutOrStdout())
	}

	strict, err := flags.GetBool("strict")
	if err != nil {
		return err
	}

	a.printer = builtins.NewPrinter(cmd.OutOrStdout(), &builtins.Options{
		LegacyBackspace: legacy,
		Strict:          strict,
		Input:           cmd.InOrStdin(),
		Logger:          a.logger,
	})
	a.registry = builtins.NewRegistry(builtins.WithLogger(a.logger))
	if err := builtins.RegisterDefaults(a.registry, a.printer); err != nil {
		return err
	}

	a.logger.WithFields(logrus.Fields{
		"legacy_backspace": legacy,
		"strict":           strict,
	}).Debug("configured printer")
	return nil
}

func (a *app) say(cmd *cobra.Command, args []string) error {
	values, err := parseAll(args)
	if err != nil {
		return err
	}
	if _, err := a.registry.Call(cmd.Context(), "say", values...); err != nil {
		return err
	}

	noNewline, err := cmd.Flags().GetBool("no-newline")
	if err != nil {
		return err
	}
	if !noNewline {
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

func (a *app) index(cmd *cobra.Command, args []string) error {
	values, err := parseAll(args)
	if err != nil {
		return err
	}

	result, err := a.registry.Call(cmd.Context(), "index", values...)
	if err != nil {
		return err
	}
	if err := a.sayln(result); err != nil {
		return err
	}
	if len(values) == 3 {
		// Show the array after the replacement as well.
		return a.sayln(values[0])
	}
	return nil
}

func (a *app) length(cmd *cobra.Command, args []string) error {
	values, err := parseAll(args)
	if err != nil {
		return err
	}
	n, err := a.registry.Call(cmd.Context(), "len", values...)
	if err != nil {
		return err
	}
	return a.sayln(n)
}

func (a *app) ask(cmd *cobra.Command, args []string) error {
	prompt := make([]any, len(args))
	for i, arg := range args {
		prompt[i] = arg
	}
	line, err := a.registry.Call(cmd.Context(), "ask", prompt...)
	if err != nil {
		return err
	}
	return a.sayln(line)
}

func (a *app) list(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Available builtins:")
	for _, b := range a.registry.List() {
		fmt.Fprintf(w, "\t%-6s %s\n", b.Name, b.Description)
	}
	return nil
}

func (a *app) sayln(v any) error {
	return a.printer.Say(v, "\n")
}

func parseAll(args []string) ([]any, error) {
	values := make([]any, len(args))
	for i, arg := range args {
		v, err := literal.Parse(arg)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func colorEnabled(root *cobra.Command) bool {
	noColor, err := root.PersistentFlags().GetBool("no-color")
	return err == nil && !noColor
}
