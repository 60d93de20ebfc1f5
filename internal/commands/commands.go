package commands

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknown is returned by Execute for a subcommand that was never registered.
var ErrUnknown = errors.New("unknown command")

// Command is a subcommand with its own flags and a Run function.
// Flags are defined on FlagSet; Run is called after Parse and can read flag state.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func() error
}

// Registry holds subcommands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds     map[string]*Command
	fallback string
}

// NewRegistry returns an empty registry. fallback names the subcommand used when the command line
// has no subcommand (no arguments, or only flags).
func NewRegistry(fallback string) *Registry {
	return &Registry{cmds: make(map[string]*Command), fallback: fallback}
}

// Register adds a subcommand. fs is that command's FlagSet; run is called after fs.Parse succeeds.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func() error) {
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Split returns the subcommand name and its arguments. An empty command line, or one starting with a flag,
// selects the fallback subcommand with all arguments.
func (r *Registry) Split(args []string) (name string, rest []string) {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return r.fallback, args
	}
	return args[0], args[1:]
}

// Execute runs the subcommand selected by args. Returns ErrUnknown for an unknown command,
// the flag parse error, or the error from Run.
func (r *Registry) Execute(args []string) error {
	name, rest := r.Split(args)
	cmd, ok := r.cmds[name]
	if !ok {
		return fmt.Errorf("%w: %s (have %s)", ErrUnknown, name, strings.Join(r.Names(), ", "))
	}
	if err := cmd.FlagSet.Parse(rest); err != nil {
		return err
	}
	return cmd.Run()
}

// Names lists registered subcommands in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
