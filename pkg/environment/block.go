package environment

import (
	"strings"
)

// SplitBlock splits an environment variable block of the form
// VAR1=value1[\r]\nVAR2=value2[\r]\n... into a slice of NAME=VALUE strings.
// Unlike an environ string, a block keeps whitespace inside values. It opts for
// performance over format validation and is platform-agnostic, so it can be
// used on output captured from remote systems.
func SplitBlock(block string) []string {
	// Replace all instances of \r\n with \n.
	block = strings.ReplaceAll(block, "\r\n", "\n")

	// Trim whitespace from around the block.
	block = strings.TrimSpace(block)
	if block == "" {
		return nil
	}

	// Split the block into individual lines.
	return strings.Split(block, "\n")
}

// ParseBlock parses an environment variable block into a map using the same
// rules as Parse.
func ParseBlock(block string) (map[string]string, error) {
	return Parse(SplitBlock(block))
}
