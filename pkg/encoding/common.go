package encoding

import (
	"os"

	"github.com/pkg/errors"

	"github.com/mutagen-io/environ/pkg/filesystem"
	"github.com/mutagen-io/environ/pkg/logging"
)

// LoadAndUnmarshal reads the file at path and hands its contents to unmarshal,
// which is usually a closure around a format decoder. A missing file yields the
// unwrapped os error so that callers can test it with os.IsNotExist.
func LoadAndUnmarshal(path string, unmarshal func([]byte) error) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return err
	} else if err != nil {
		return errors.Wrap(err, "unable to load file")
	}

	// Decode.
	if err := unmarshal(data); err != nil {
		return errors.Wrap(err, "unable to unmarshal data")
	}
	return nil
}

// MarshalAndSave encodes a value with marshal and writes the result atomically
// to path, readable and writable by the user only, since environment files
// commonly hold credentials. Nothing is written if marshal fails.
func MarshalAndSave(path string, logger *logging.Logger, marshal func() ([]byte, error)) error {
	data, err := marshal()
	if err != nil {
		return errors.Wrap(err, "unable to marshal value")
	}

	// Write the file atomically with secure file permissions.
	if err := filesystem.WriteFileAtomic(path, data, 0600, logger); err != nil {
		return errors.Wrap(err, "unable to write data")
	}
	return nil
}
