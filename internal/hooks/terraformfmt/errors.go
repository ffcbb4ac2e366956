package terraformfmt

import (
	"errors"
)

var (
	// ErrInvalidEnvVar is returned for --envs entries that are not KEY=VALUE.
	ErrInvalidEnvVar = errors.New("invalid environment variable entry")

	// ErrInvalidHookConfig is returned for malformed --hook-config entries.
	ErrInvalidHookConfig = errors.New("invalid hook config entry")

	// errHandled signals that the command line was fully handled by the
	// parser itself (--help, --version) and no tool must be run.
	errHandled = errors.New("command line handled without running the tool")
)
