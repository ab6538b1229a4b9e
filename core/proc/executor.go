// Package proc starts the child processes fastbash delegates to: the user's
// editor and saved scripts.
package proc

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// Streams are handed to children as their stdin, stdout and stderr.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor runs saved scripts.
type Executor struct {
	Streams
}

// Run starts the script at path with args and waits for it to exit. A
// non-zero exit is reported as an *ExitError, a failure to start as a
// *SpawnError.
func (e *Executor) Run(name, path string, args []string) error {
	cmd := exec.Command(path, args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	return runForeground(name, cmd)
}

// runForeground runs cmd while ignoring the terminal signals the child also
// receives, so its status can be relayed once it exits.
func runForeground(name string, cmd *exec.Cmd) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGQUIT)
	defer signal.Stop(sigs)

	if err := cmd.Start(); err != nil {
		return &SpawnError{Name: name, Err: err}
	}

	err := cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return &ExitError{Name: name, Code: exitCode(exitErr.ProcessState)}
	case err != nil:
		// Copying to or from a non-file stream failed.
		return err
	}
	return nil
}

func exitCode(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	if code := state.ExitCode(); code > 0 {
		return code
	}
	return 1
}
