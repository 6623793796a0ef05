// Package console provides a line-oriented command interface to a Shell.
// It backs the deckctl binary's script runner and interactive mode.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/enginedeck/deck/pkg/deck"
	"github.com/enginedeck/deck/pkg/deck/navigation"
)

var (
	// ErrUnknownCommand is returned for lines that do not start with a known command.
	ErrUnknownCommand = errors.New("console: unknown command")

	// ErrUsage is returned when a command's arguments are malformed.
	ErrUsage = errors.New("console: usage")
)

const helpText = `commands:
  open <view> [key=value ...]   navigate to a view
  back                          go back one entry
  guard off                     remove the interceptor
  guard block                   veto every transition
  guard allow <view> ...        only allow transitions to the listed views
  guard deny <view> ...         veto transitions to the listed views
  state                         print the current state
  history                       print the history stack, oldest first
  views                         list the screens in the catalog
  help                          print this help
  quit                          leave`

// Console executes commands against a shell.
type Console struct {
	shell  *deck.Shell
	input  io.Reader
	output io.Writer
	prompt string
	strict bool
}

// New creates a Console using stdin and stdout.
func New(shell *deck.Shell) *Console {
	return NewWithIO(shell, os.Stdin, os.Stdout)
}

// NewWithIO creates a Console with custom I/O for scripts and tests.
func NewWithIO(shell *deck.Shell, input io.Reader, output io.Writer) *Console {
	return &Console{
		shell:  shell,
		input:  input,
		output: output,
		prompt: "deck> ",
	}
}

// SetStrict makes Run stop at the first failing command and return its error.
func (c *Console) SetStrict(strict bool) {
	c.strict = strict
}

// Run reads and executes commands until input ends, quit is entered, or ctx is done.
// With interactive set a prompt is written before each line.
func (c *Console) Run(ctx context.Context, interactive bool) error {
	scanner := bufio.NewScanner(c.input)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if interactive {
			fmt.Fprintf(c.output, "%s[%s] ", c.prompt, c.shell.Navigation().CurrentView())
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("console: read input: %w", err)
			}
			return nil
		}

		quit, err := c.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(c.output, "error: %v\n", err)
			if c.strict {
				return err
			}
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line. Blank lines and lines starting with # are ignored.
func (c *Console) Execute(line string) (quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return false, nil
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "open", "go":
		return false, c.open(args)
	case "back":
		c.printOutcome(c.shell.Back())
		return false, nil
	case "guard":
		return false, c.guard(args)
	case "state":
		c.printState()
		return false, nil
	case "history":
		c.printHistory()
		return false, nil
	case "views":
		c.printViews()
		return false, nil
	case "help":
		fmt.Fprintln(c.output, helpText)
		return false, nil
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (c *Console) open(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: open <view> [key=value ...]", ErrUsage)
	}

	params, err := ParseParams(args[1:])
	if err != nil {
		return err
	}

	outcome, err := c.shell.Open(navigation.View(args[0]), params)
	if err != nil {
		return err
	}

	c.printOutcome(outcome)
	return nil
}

func (c *Console) guard(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: guard off|block|allow <view> ...|deny <view> ...", ErrUsage)
	}

	listed := make([]navigation.View, 0, len(args)-1)
	for _, arg := range args[1:] {
		listed = append(listed, navigation.View(arg))
	}

	switch strings.ToLower(args[0]) {
	case "off":
		c.shell.Guard(nil)
	case "block":
		c.shell.Guard(func(navigation.View) bool { return false })
	case "allow":
		if len(listed) == 0 {
			return fmt.Errorf("%w: guard allow <view> ...", ErrUsage)
		}
		c.shell.Guard(func(target navigation.View) bool { return slices.Contains(listed, target) })
	case "deny":
		if len(listed) == 0 {
			return fmt.Errorf("%w: guard deny <view> ...", ErrUsage)
		}
		c.shell.Guard(func(target navigation.View) bool { return !slices.Contains(listed, target) })
	default:
		return fmt.Errorf("%w: unknown guard mode %q", ErrUsage, args[0])
	}

	fmt.Fprintf(c.output, "guard %s\n", strings.ToLower(args[0]))
	return nil
}

func (c *Console) printOutcome(outcome navigation.Outcome) {
	fmt.Fprintf(c.output, "%s: %s (%s)\n", outcome, c.shell.Navigation().CurrentView(), c.shell.Title())
}

func (c *Console) printState() {
	state := c.shell.Navigation().Snapshot()

	previous := "-"
	if state.HasPrevious {
		previous = string(state.Previous)
	}

	fmt.Fprintf(c.output, "view=%s params=%v previous=%s can_go_back=%t depth=%d version=%d\n",
		state.Current, map[string]any(state.Params), previous, state.CanGoBack, len(state.History), state.Version)
}

func (c *Console) printHistory() {
	for i, entry := range c.shell.Navigation().History() {
		fmt.Fprintf(c.output, "%d %s %v\n", i, entry.View, map[string]any(entry.Params))
	}
}

func (c *Console) printViews() {
	catalog := c.shell.Catalog()
	for _, def := range catalog.Definitions() {
		engine := "-"
		if def.Engine != "" {
			engine = def.Engine.GetName()
		}
		fmt.Fprintf(c.output, "%-18s %-22s %s\n", def.ID, catalog.Title(def.ID), engine)
	}
}

// ParseParams turns key=value arguments into Params. Integers become int,
// other numbers float64, the literals true and false become bool, and
// everything else stays a string.
func ParseParams(args []string) (navigation.Params, error) {
	params := navigation.Params{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: parameter %q is not key=value", ErrUsage, arg)
		}
		params[key] = parseValue(value)
	}
	return params, nil
}

func parseValue(raw string) any {
	if i, err := strconv.Atoi(raw); err == nil {
		return i
	}
	if strings.ContainsAny(raw, "0123456789") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}
