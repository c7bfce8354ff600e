// Package envfile loads and saves lists of environment variables in YAML, TOML,
// JSON, and dotenv files.
package envfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/mutagen-io/environ/pkg/encoding"
	"github.com/mutagen-io/environ/pkg/environment"
	"github.com/mutagen-io/environ/pkg/logging"
)

// Format identifies an environment file format.
type Format uint8

const (
	// FormatYAML indicates a YAML document.
	FormatYAML Format = iota + 1
	// FormatTOML indicates a TOML document.
	FormatTOML
	// FormatJSON indicates a JSON document.
	FormatJSON
	// FormatDotenv indicates a dotenv file of NAME=VALUE lines.
	FormatDotenv
)

// String provides a human-readable representation of a format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	case FormatDotenv:
		return "dotenv"
	default:
		return "unknown"
	}
}

// FormatForPath determines the format of an environment file from its name.
// Files whose base name is or starts with ".env" (e.g. ".env.local") are
// treated as dotenv files.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".env":
		return FormatDotenv, nil
	}
	if strings.HasPrefix(filepath.Base(path), ".env") {
		return FormatDotenv, nil
	}
	return 0, errors.Errorf("unknown environment file format: %s", path)
}

// document is the structure of YAML, TOML, and JSON environment files. Each
// variable is encoded as a single NAME=VALUE string.
type document struct {
	// Environment is the list of variables.
	Environment []environment.Variable `yaml:"environment" toml:"environment" json:"environment"`
}

// Load reads the variables stored in an environment file. Variables from
// dotenv files are returned sorted by name, since godotenv doesn't preserve
// their order. If the file doesn't exist, the returned error satisfies
// os.IsNotExist.
func Load(path string) ([]environment.Variable, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	// Handle dotenv files separately.
	if format == FormatDotenv {
		contents, err := godotenv.Read(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, err
			}
			return nil, errors.Wrap(err, "unable to load dotenv file")
		}
		return environment.FromMap(contents), nil
	}

	// Decode a structured document.
	value := &document{}
	switch format {
	case FormatYAML:
		err = encoding.LoadAndUnmarshalYAML(path, value)
	case FormatTOML:
		err = encoding.LoadAndUnmarshalTOML(path, value)
	case FormatJSON:
		err = encoding.LoadAndUnmarshalJSON(path, value)
	}
	if err != nil {
		return nil, err
	}

	// Success.
	return value.Environment, nil
}

// Save writes variables to an environment file atomically with user-only
// permissions. Every variable must have a valid name. Dotenv files can't hold
// duplicate names, so the last variable with a given name wins, and their
// names are limited to what godotenv accepts ([A-Za-z0-9_.]). Save fails
// without writing anything if a variable wouldn't load back unchanged.
func Save(path string, variables []environment.Variable, logger *logging.Logger) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	// Validate variables.
	for _, variable := range variables {
		if err := variable.Validate(); err != nil {
			return err
		}
	}

	// Encode and save.
	logger.Debugf("Saving %d variables to %s file %s", len(variables), format, path)
	switch format {
	case FormatYAML:
		return encoding.MarshalAndSaveYAML(path, &document{variables}, logger)
	case FormatTOML:
		return encoding.MarshalAndSaveTOML(path, &document{variables}, logger)
	case FormatJSON:
		return encoding.MarshalAndSaveJSON(path, &document{variables}, logger)
	default:
		return encoding.MarshalAndSave(path, logger, func() ([]byte, error) {
			return marshalDotenv(variables)
		})
	}
}
