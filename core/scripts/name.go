package scripts

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// nameTag rules out anything that would escape the scripts directory or be
// awkward to type as a shell word.
const nameTag = "required,max=255,excludesall=/ \t\r\n\x00"

// lookupTag only rules out names that would leave the scripts directory.
const lookupTag = "required,excludesall=/\x00"

var nameValidator = validator.New()

// ValidateName checks that name can be stored and later run as a script.
// Names in reserved can't be run because they're dispatched as subcommands.
func ValidateName(name string, reserved ...string) error {
	if err := nameValidator.Var(name, nameTag); err != nil {
		return fmt.Errorf("%w %q: %s", ErrInvalidName, name, describeNameError(err))
	}

	switch {
	case name == "." || name == "..":
		return fmt.Errorf("%w %q: refers to a directory", ErrInvalidName, name)
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("%w %q: can't start with '-'", ErrInvalidName, name)
	}

	for _, r := range reserved {
		if name == r {
			return fmt.Errorf("%w: %q", ErrReserved, name)
		}
	}

	return nil
}

func describeNameError(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}

	switch verrs[0].Tag() {
	case "required":
		return "name is empty"
	case "max":
		return "name is longer than 255 characters"
	case "excludesall":
		return "name can't contain '/', whitespace or NUL"
	default:
		return verrs[0].Error()
	}
}

// validateLookupName accepts any name that refers to an entry directly inside
// the scripts directory, including ones ValidateName would refuse.
func validateLookupName(name string) error {
	if err := nameValidator.Var(name, lookupTag); err != nil {
		return fmt.Errorf("%w %q: %s", ErrInvalidName, name, describeNameError(err))
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w %q: refers to a directory", ErrInvalidName, name)
	}
	return nil
}
