package installer

import "strings"

// Proceed reports whether a confirmation answer means "go ahead": the
// first character of the trimmed line, lower-cased, must be 'y'. Empty
// input declines.
func Proceed(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	return line[0] == 'y' || line[0] == 'Y'
}
