package terraformfmt

import (
	"io"
	"log/slog"
)

// Test helpers - exported for testing only

// RunWithForTesting runs the hook with the given collaborators instead of the
// process environment.
func RunWithForTesting(
	logger *slog.Logger,
	argv []string,
	stdout io.Writer,
	runner Runner,
	environ []string,
	workDir string,
	lookPath func(string) (string, error),
) (int, error) {
	h := &hook{
		logger:   logger,
		runner:   runner,
		environ:  environ,
		workDir:  workDir,
		lookPath: lookPath,
		stdout:   stdout,
	}

	return h.run(argv)
}

// ExpandEnvRefsForTesting exposes expandEnvRefs for testing.
func ExpandEnvRefsForTesting(args []string, env map[string]string) []string {
	return expandEnvRefs(args, env)
}

// LocateToolForTesting exposes locateTool for testing.
func LocateToolForTesting(config *Config, env map[string]string, lookPath func(string) (string, error)) string {
	return locateTool(config, env, lookPath)
}

// FindRepoRootForTesting exposes findRepoRoot for testing.
func FindRepoRootForTesting(dir string) string {
	return findRepoRoot(dir, slog.New(slog.DiscardHandler))
}

// ErrHandledForTesting exposes errHandled for testing.
var ErrHandledForTesting = errHandled
