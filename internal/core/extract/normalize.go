package extract

import (
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`[ \t]+`)

// NormalizeLines turns a raw text blob into the line sequence every finder
// works on: carriage returns become newlines, runs of spaces/tabs collapse
// into a single space, each line is trimmed and blank lines are dropped.
// Positional logic ("value is on the next line") always refers to this
// compacted sequence, not the original text.
func NormalizeLines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "\n")
	text = spaceRun.ReplaceAllString(text, " ")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
