package environment

import (
	"sort"
)

// ToMap converts a slice of variables to a map with equivalent contents.
// Variables are processed in order, meaning that the last variable seen for a
// name will be what populates the map.
func ToMap(variables []Variable) map[string]string {
	// Allocate result storage.
	result := make(map[string]string, len(variables))

	// Convert variables.
	for _, variable := range variables {
		result[variable.Name] = variable.Value
	}

	// Done.
	return result
}

// FromMap converts a map of environment variables into a slice of variables
// sorted by name.
func FromMap(environment map[string]string) []Variable {
	// Allocate result storage.
	result := make([]Variable, 0, len(environment))

	// Convert entries.
	for name, value := range environment {
		result = append(result, Variable{Name: name, Value: value})
	}

	// Sort the result so that output is deterministic.
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	// Done.
	return result
}

// Format converts a map of environment variables into a sorted slice of
// NAME=VALUE strings, suitable for use as exec.Cmd.Env.
func Format(environment map[string]string) []string {
	// Convert to sorted variables.
	variables := FromMap(environment)

	// Render each variable.
	result := make([]string, len(variables))
	for i, variable := range variables {
		result[i] = variable.String()
	}

	// Success.
	return result
}
