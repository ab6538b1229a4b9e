package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

// colorPrinter applies colors according to a --color flag.
type colorPrinter struct {
	value string
}

// Init registers the --color flag on cmd.
func (c *colorPrinter) Init(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.value, "color", colorAuto, "colorize the output (always|auto|never)")
}

// Validate checks the flag holds one of the known values.
func (c *colorPrinter) Validate() error {
	switch c.value {
	case colorAlways, colorAuto, colorNever:
		return nil
	default:
		return fmt.Errorf("%w: --color must be one of always, auto or never, got %q", errInvalidUsage, c.value)
	}
}

func (c *colorPrinter) ShouldColor() bool {
	switch c.value {
	case colorNever:
		return false
	case colorAlways:
		return true
	default:
		// fatih/color already checks for a terminal and NO_COLOR.
		return !color.NoColor
	}
}

func (c *colorPrinter) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if !c.ShouldColor() {
		return fmt.Sprintf(format, a...)
	}

	forced := *col
	forced.EnableColor()
	return forced.Sprintf(format, a...)
}
