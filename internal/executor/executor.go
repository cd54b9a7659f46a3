// Package executor runs user-confirmed commands in the user's shell.
package executor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ExecutionError reports a command that ran but exited non-zero.
type ExecutionError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.ExitCode)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Execute runs a command through the user's shell with stdio inherited.
// The exit status is surfaced, not interpreted.
func Execute(command string) error {
	return ExecuteWithDebug(command, false)
}

// ExecuteWithDebug runs a command with optional diagnostics on stderr.
func ExecuteWithDebug(command string, debug bool) error {
	var shell string
	var shellArgs []string

	if runtime.GOOS == "windows" {
		shell = "cmd"
		shellArgs = []string{"/C", command}
	} else {
		shell = os.Getenv("SHELL")
		if shell == "" {
			shell = "/bin/sh"
		}
		shellArgs = []string{"-c", command}
	}

	if debug {
		fmt.Fprintf(os.Stderr, "[DEBUG] Executor: running %q via %s\n", command, shell)
	}

	cmd := exec.Command(shell, shellArgs...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExecutionError{Command: command, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
