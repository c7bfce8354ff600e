package environment

import (
	"os"
)

// Current is the environment of the current process, captured at package
// initialization. It must be treated as read-only; use CopyCurrent to obtain a
// modifiable copy. Specifications that can't be parsed are omitted.
var Current map[string]string

func init() {
	Current = make(map[string]string)
	for _, specification := range os.Environ() {
		if variable, err := ParseVariable(specification); err == nil {
			Current[variable.Name] = variable.Value
		}
	}
}

// CopyCurrent returns a copy of the current process environment.
func CopyCurrent() map[string]string {
	result := make(map[string]string, len(Current))
	for name, value := range Current {
		result[name] = value
	}
	return result
}
