package scripts

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// NoDescription is shown for scripts without a description comment.
const NoDescription = "(no description)"

var descriptionLine = regexp.MustCompile(`(?i)^#\s*(description|desc)\s*:\s*(.+)$`)

// ParseDescription finds a "# description: ..." comment in the first maxLines
// lines of r.
func ParseDescription(r io.Reader, maxLines int) string {
	scanner := bufio.NewScanner(r)
	for i := 0; i < maxLines && scanner.Scan(); i++ {
		line := strings.TrimRight(scanner.Text(), "\r")
		if match := descriptionLine.FindStringSubmatch(line); match != nil {
			if desc := strings.TrimSpace(match[2]); desc != "" {
				return desc
			}
		}
	}

	return NoDescription
}
