package environment

import (
	"github.com/pkg/errors"
)

// Parse converts a slice of NAME=VALUE specifications, such as that returned
// by os.Environ, into a map. Specifications with an empty name (i.e. those
// starting with '=') are ignored: on Windows these are MS-DOS compatibility
// entries such as "=C:=C:\Users", and on POSIX they can't be addressed by name.
// Entries are processed in order, so the last value seen for a name wins. Any
// other malformed specification is an error.
func Parse(environment []string) (map[string]string, error) {
	// Create the result.
	result := make(map[string]string, len(environment))

	// Process each specification.
	for _, specification := range environment {
		variable, err := ParseVariable(specification)
		if errors.Is(err, ErrEmptyName) {
			continue
		} else if err != nil {
			return nil, err
		}
		result[variable.Name] = variable.Value
	}

	// Success.
	return result, nil
}
