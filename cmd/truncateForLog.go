package cmd

import "strings"

// logExcerptLimit bounds how much command output is echoed into log lines.
const logExcerptLimit = 256

// truncateForLog renders an output stream as a single log-friendly string,
// trimmed and bounded to logExcerptLimit bytes.
func truncateForLog(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= logExcerptLimit {
		return s
	}
	return s[:logExcerptLimit] + "...(truncated)"
}
