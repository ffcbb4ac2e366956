package terraformfmt

import (
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

const (
	subcommand  = "fmt"
	noColorFlag = "-no-color"
)

// Reconciliation collects every input that contributes to the final command.
type Reconciliation struct {
	// Tool is the formatting binary.
	Tool string
	// Args are the flags for the fmt subcommand. ${NAME} references are
	// expanded against the merged environment.
	Args []string
	// Config is the merged hook configuration.
	Config Config
	// Files are appended after the flags in the given order.
	Files []string
	// InitArgs do not influence terraform fmt.
	InitArgs []string
	// Inherited is the environment of the hook process.
	Inherited map[string]string
	// Overrides are layered on top of Inherited.
	Overrides map[string]string
	// ColorPreference is the value of PRE_COMMIT_COLOR in the inherited
	// environment.
	ColorPreference string
}

// ResolvedCommand is the command to execute: Name followed by Args, run with
// Env.
type ResolvedCommand struct {
	Name string
	Args []string
	Env  map[string]string
}

// Reconcile merges all inputs into a single command. It does not touch the
// process environment and never fails.
func Reconcile(r Reconciliation) ResolvedCommand {
	env := MergeEnv(r.Inherited, r.Overrides)

	flags := expandEnvRefs(r.Args, env)
	if (r.ColorPreference == colorNever || r.Config.NoColor) && !hasNoColor(flags) {
		flags = append(flags, noColorFlag)
	}

	args := make([]string, 0, 1+len(flags)+len(r.Files))
	args = append(args, subcommand)
	args = append(args, flags...)
	args = append(args, r.Files...)

	return ResolvedCommand{
		Name: r.Tool,
		Args: args,
		Env:  env,
	}
}

// Argv returns the full command line including the binary.
func (c ResolvedCommand) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// String returns the command line quoted for a POSIX shell.
func (c ResolvedCommand) String() string {
	argv := c.Argv()
	quoted := make([]string, 0, len(argv))

	for _, arg := range argv {
		q, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			q = fmt.Sprintf("%q", arg)
		}

		quoted = append(quoted, q)
	}

	return strings.Join(quoted, " ")
}

func hasNoColor(flags []string) bool {
	for _, flag := range flags {
		name, _, _ := strings.Cut(flag, "=")
		if name == noColorFlag || name == "-"+noColorFlag {
			return true
		}
	}

	return false
}
