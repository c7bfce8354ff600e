package encoding

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mutagen-io/environ/pkg/logging"
)

// ignoreEmpty treats the io.EOF that streaming decoders return for empty input
// as an empty document, matching TOML, where an empty file is a valid one.
func ignoreEmpty(err error) error {
	if err == io.EOF {
		return nil
	}
	return err
}

// LoadAndUnmarshalYAML loads data from the specified path and decodes it into
// the specified structure. Unknown fields are rejected and an empty file leaves
// the structure untouched.
func LoadAndUnmarshalYAML(path string, value interface{}) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		return ignoreEmpty(decoder.Decode(value))
	})
}

// MarshalAndSaveYAML encodes the specified value as YAML and saves it to the
// specified path.
func MarshalAndSaveYAML(path string, value interface{}, logger *logging.Logger) error {
	return MarshalAndSave(path, logger, func() ([]byte, error) {
		return yaml.Marshal(value)
	})
}

// LoadAndUnmarshalTOML loads data from the specified path and decodes it into
// the specified structure. Unknown fields are rejected.
func LoadAndUnmarshalTOML(path string, value interface{}) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		return decoder.Decode(value)
	})
}

// MarshalAndSaveTOML encodes the specified value as TOML and saves it to the
// specified path.
func MarshalAndSaveTOML(path string, value interface{}, logger *logging.Logger) error {
	return MarshalAndSave(path, logger, func() ([]byte, error) {
		return toml.Marshal(value)
	})
}

// LoadAndUnmarshalJSON loads data from the specified path and decodes it into
// the specified structure. Unknown fields are rejected and an empty file leaves
// the structure untouched.
func LoadAndUnmarshalJSON(path string, value interface{}) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		return ignoreEmpty(decoder.Decode(value))
	})
}

// MarshalAndSaveJSON encodes the specified value as indented JSON and saves it
// to the specified path.
func MarshalAndSaveJSON(path string, value interface{}, logger *logging.Logger) error {
	return MarshalAndSave(path, logger, func() ([]byte, error) {
		return json.MarshalIndent(value, "", "  ")
	})
}
