package proc

import (
	"errors"
	"fmt"
	"syscall"
)

// ExitError is returned when a child ran but exited unsuccessfully. Code is
// the status fastbash should exit with.
type ExitError struct {
	Name string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
}

// SpawnError is returned when a child process couldn't be started.
type SpawnError struct {
	Name string
	Err  error
}

func (e *SpawnError) Error() string {
	msg := fmt.Sprintf("couldn't run %s: %v", e.Name, e.Err)
	if errors.Is(e.Err, syscall.ENOEXEC) {
		msg += "\nhint: make sure the script starts with a shebang line (e.g. #!/bin/bash)"
	}
	return msg
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
