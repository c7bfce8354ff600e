package environment

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ParseEnviron lazily parses a whitespace-separated environ string, such as
// "PATH=/usr/local/bin HOME=/home/name", yielding one result per entry. A
// malformed entry yields a *ParseError for that entry only and iteration
// continues, so callers decide whether to stop or skip. Ranging over the
// sequence again re-parses the string.
func ParseEnviron(environ string) iter.Seq2[Variable, error] {
	return func(yield func(Variable, error) bool) {
		for remaining := environ; ; {
			var field string
			field, remaining = nextField(remaining)
			if field == "" {
				return
			}
			if !yield(ParseVariable(field)) {
				return
			}
		}
	}
}

// nextField returns the first whitespace-delimited field in s along with the
// text following it. It returns an empty field when s contains no field.
func nextField(s string) (string, string) {
	// Skip leading whitespace.
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	// Find the end of the field.
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			return s[:i], s[i:]
		}
		i += size
	}
	return s, ""
}

// FormatEnviron renders variables as a space-separated environ string that
// ParseEnviron will parse back into the same variables. It fails if a variable
// has an invalid name or a value containing whitespace.
func FormatEnviron(variables []Variable) (string, error) {
	var builder strings.Builder
	for i, variable := range variables {
		if err := variable.Validate(); err != nil {
			return "", err
		} else if strings.IndexFunc(variable.Value, unicode.IsSpace) >= 0 {
			return "", errors.Errorf("value of %s contains whitespace", variable.Name)
		}
		if i > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(variable.String())
	}
	return builder.String(), nil
}
