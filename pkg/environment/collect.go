package environment

import (
	"github.com/mutagen-io/environ/pkg/logging"
)

// Collect parses an environ string into a slice of variables, stopping at the
// first malformed entry.
func Collect(environ string) ([]Variable, error) {
	var result []Variable
	for variable, err := range ParseEnviron(environ) {
		if err != nil {
			return nil, err
		}
		result = append(result, variable)
	}
	return result, nil
}

// CollectValid parses an environ string into a slice of variables, skipping
// malformed entries. Each skipped entry is reported to the logger as a warning.
func CollectValid(environ string, logger *logging.Logger) []Variable {
	var result []Variable
	for variable, err := range ParseEnviron(environ) {
		if err != nil {
			logger.Warn(err)
			continue
		}
		result = append(result, variable)
	}
	logger.Debugf("Collected %d variables", len(result))
	return result
}
