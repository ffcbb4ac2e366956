package terraformfmt

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// hook bundles the process level collaborators of a single hook run.
type hook struct {
	logger   *slog.Logger
	runner   Runner
	environ  []string
	workDir  string
	lookPath func(string) (string, error)
	stdout   io.Writer
}

// Run parses argv, runs terraform fmt once and returns its exit code. The
// tool's standard output is written to stdout, its standard error goes to
// stderr. A tool killed by signal N yields exit code 256-N. A returned error
// means the tool was never run or could not be started.
func Run(logger *slog.Logger, argv []string, stdout io.Writer, stderr io.Writer) (int, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return 0, fmt.Errorf("failed to get working directory: %w", err)
	}

	h := &hook{
		logger:   logger,
		runner:   &ExecRunner{Stdin: os.Stdin, Stderr: stderr},
		environ:  os.Environ(),
		workDir:  workDir,
		lookPath: exec.LookPath,
		stdout:   stdout,
	}

	return h.run(argv)
}

func (h *hook) run(argv []string) (int, error) {
	// Parse command-line arguments
	inv, err := ParseCmdline(argv, h.stdout)
	if errors.Is(err, errHandled) {
		return 0, nil
	}

	if err != nil {
		return 0, err
	}

	// Load configuration from the repository root, then apply --hook-config
	repoRoot := findRepoRoot(h.workDir, h.logger)
	config, err := LoadConfig(repoRoot)
	if err != nil {
		return 0, fmt.Errorf("failed to load config: %w", err)
	}

	err = config.ApplyHookConfig(inv.HookConfig, h.logger)
	if err != nil {
		return 0, fmt.Errorf("failed to load config: %w", err)
	}

	// Build the command, the tool is looked up with the overrides applied
	inherited := EnvironToMap(h.environ)

	cmd := Reconcile(Reconciliation{
		Tool:            locateTool(config, MergeEnv(inherited, inv.EnvVars), h.lookPath),
		Args:            inv.Args,
		Config:          *config,
		Files:           inv.Files,
		InitArgs:        inv.InitArgs,
		Inherited:       inherited,
		Overrides:       inv.EnvVars,
		ColorPreference: inherited[ColorEnvVar],
	})

	h.logger.Info("calling " + cmd.String())
	h.logger.Debug("env_vars", "env_vars", inv.EnvVars)
	h.logger.Debug("args", "args", inv.Args)
	if len(inv.InitArgs) > 0 {
		h.logger.Debug("init args are not used by terraform fmt", "tf_init_args", inv.InitArgs)
	}

	// Run once; a non-zero exit is relayed, not treated as an error
	out, exitCode, err := h.runner.Run(cmd.Name, cmd.Args, MapToEnviron(cmd.Env))
	if err != nil {
		return 0, err
	}

	// Emit captured output in one piece
	if out != "" {
		fmt.Fprintln(h.stdout, out)
	}

	return exitCode, nil
}
