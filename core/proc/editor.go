package proc

import (
	"errors"
	"fmt"
	"log"
	"os/exec"

	"github.com/anmitsu/go-shlex"
)

// Editor opens files in the user's text editor.
type Editor struct {
	Streams

	// Command is the editor command line, e.g. "vim" or "code --wait".
	Command string
	// Logger receives warnings about the editor's exit status.
	Logger *log.Logger
}

// Edit opens path in the editor and blocks until the editor exits. The
// editor's exit status is only logged.
func (e *Editor) Edit(path string) error {
	argv, err := shlex.Split(e.Command, true)
	if err != nil {
		return &SpawnError{Name: "editor", Err: fmt.Errorf("can't parse %q: %w", e.Command, err)}
	}
	if len(argv) == 0 {
		return &SpawnError{Name: "editor", Err: errors.New("no editor configured, set $EDITOR")}
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err = runForeground(argv[0], cmd)
	var exitErr *ExitError
	switch {
	case errors.As(err, &exitErr):
		if e.Logger != nil {
			e.Logger.Printf("warning: %v", exitErr)
		}
		return nil
	default:
		return err
	}
}
