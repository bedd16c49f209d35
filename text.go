package subprocess

import "strings"

// translateNewlines converts "\r\n" and lone "\r" to "\n", as text-mode
// capture does.
func translateNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitLines splits text into lines. A trailing newline does not produce a
// trailing empty line, and empty text has no lines.
func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
