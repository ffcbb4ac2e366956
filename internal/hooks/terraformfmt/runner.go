package terraformfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"
)

// Runner abstracts the execution of the formatting tool for testability.
type Runner interface {
	// Run executes name with args and env and returns the captured standard
	// output and the exit code. A non-zero exit code is not an error.
	Run(name string, args []string, env []string) (stdout string, exitCode int, err error)
}

// ExecRunner runs the tool as a child process. Standard error and standard
// input are connected to the given streams, standard output is captured.
type ExecRunner struct {
	Stdin  io.Reader
	Stderr io.Writer
}

// Run executes the command once and waits for it to exit.
func (r *ExecRunner) Run(name string, args []string, env []string) (string, int, error) {
	// #nosec G204 -- the tool and its arguments come from the hook configuration.
	cmd := exec.Command(name, args...)
	cmd.Env = env
	cmd.Stdin = r.Stdin
	cmd.Stderr = r.Stderr

	var outBuf bytes.Buffer
	cmd.Stdout = &outBuf

	err := cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return outBuf.String(), exitCode(exitErr), nil
	}

	if err != nil {
		return "", 0, fmt.Errorf("failed to run %s: %w", name, err)
	}

	return outBuf.String(), 0, nil
}

// exitCode returns the exit status of a finished child. A child killed by
// signal N yields 256-N, the status of a process exiting with -N.
func exitCode(exitErr *exec.ExitError) int {
	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if ok && status.Signaled() {
		return (256 - int(status.Signal())) & 0xff
	}

	return exitErr.ExitCode()
}
