// Package testutil holds helpers for asserting on rendered UI output.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI drops escape sequences so rendered views compare as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// SplitLines splits output into lines without the trailing blank ones.
func SplitLines(output string) []string {
	lines := strings.Split(output, "\n")
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}

// FindLine returns the first line containing substr, or "".
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// AssertContains returns a failure message when the plain text of output
// lacks substr, and "" otherwise.
func AssertContains(output, substr string) string {
	if strings.Contains(StripANSI(output), substr) {
		return ""
	}
	return "expected output to contain " + substr
}
