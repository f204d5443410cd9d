package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// loadCommands reads the plain-text commands file: one command per line,
// surrounding whitespace trimmed, blank lines and whole-line comments (first
// non-space byte '#') dropped, original order preserved. Trailing inline '#'
// is not treated as a comment.
func loadCommands(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("commands file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var commands []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		commands = append(commands, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("commands file: %w", err)
	}
	return commands, nil
}
