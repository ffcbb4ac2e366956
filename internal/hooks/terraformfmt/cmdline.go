package terraformfmt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Version is reported by --version.
var Version = "dev"

// Invocation is the parsed hook command line.
type Invocation struct {
	// Args are the flags passed through to the fmt subcommand.
	Args []string
	// HookConfig holds the raw --hook-config entries in the order given.
	HookConfig []string
	// InitArgs are accepted for compatibility with the other terraform hooks.
	// terraform fmt does not need an initialized working directory.
	InitArgs []string
	// EnvVars are the --envs overrides for the child process environment.
	EnvVars map[string]string
	// Files are the paths handed over by pre-commit, in their original order.
	Files []string
}

// cmdline collects the flag values of one parse.
type cmdline struct {
	inv          Invocation
	initArgAlias []string
	envs         []string
	envAlias     []string
	ran          bool
}

func newCommand(c *cmdline) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "terraform-fmt [flags] [files...]",
		Short: "Run terraform fmt as a pre-commit hook",
		Long: "terraform-fmt rewrites Terraform configuration files to the canonical format.\n" +
			"Flags given with --args are passed to terraform fmt, followed by the files.",
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		// The hook has no subcommands, every positional token is a file.
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(_ *cobra.Command, args []string) error {
			c.ran = true
			c.inv.Files = args

			return nil
		},
	}

	flags := cmd.Flags()
	// cobra's default help flag claims -h unconditionally.
	flags.Bool("help", false, "help for terraform-fmt")
	flags.BoolP("version", "v", false, "version for terraform-fmt")
	// StringArray keeps values with commas (e.g. -var=a,b) in one piece.
	flags.StringArrayVarP(&c.inv.Args, "args", "a", nil, "argument passed to terraform fmt (repeatable)")
	flags.StringArrayVarP(&c.inv.HookConfig, "hook-config", "h", nil, "hook configuration as KEY=VALUE (repeatable)")
	flags.StringArrayVarP(&c.inv.InitArgs, "tf-init-args", "i", nil, "terraform init argument (repeatable)")
	flags.StringArrayVarP(&c.envs, "envs", "e", nil, "environment variable for terraform as KEY=VALUE (repeatable)")
	// Aliases get their own slices, a shared slice is reset by the first Set
	// of the other flag.
	flags.StringArrayVar(&c.initArgAlias, "init-args", nil, "alias for --tf-init-args")
	flags.StringArrayVar(&c.envAlias, "env-vars", nil, "alias for --envs")
	_ = flags.MarkHidden("init-args")
	_ = flags.MarkHidden("env-vars")

	return cmd
}

// ParseCmdline parses the hook command line. Help and version output is
// written to out.
func ParseCmdline(argv []string, out io.Writer) (Invocation, error) {
	if argv == nil {
		// cobra falls back to os.Args on nil.
		argv = []string{}
	}

	c := &cmdline{}
	cmd := newCommand(c)

	var cmdOut bytes.Buffer
	cmd.SetOut(&cmdOut)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(argv)

	executed, err := cmd.ExecuteC()
	if err != nil {
		return Invocation{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	if executed != cmd {
		// cobra always registers its hidden shell completion commands, a file
		// with such a name must not dispatch to them. The completion command
		// has already parsed into c, so start over with a fresh command.
		c = &cmdline{}
		cmd = newCommand(c)

		err = cmd.ParseFlags(argv)
		if err != nil {
			return Invocation{}, fmt.Errorf("failed to parse arguments: %w", err)
		}

		c.inv.Files = cmd.Flags().Args()
		c.ran = true
	}

	if !c.ran {
		_, _ = cmdOut.WriteTo(out)
		return Invocation{}, errHandled
	}

	inv := c.inv
	inv.InitArgs = append(inv.InitArgs, c.initArgAlias...)

	inv.EnvVars, err = ParseEnvVars(append(c.envs, c.envAlias...))
	if err != nil {
		return Invocation{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return inv, nil
}
