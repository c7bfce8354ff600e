package must

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutagen-io/environ/pkg/logging"
)

func TestOSRemove(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := logging.NewLogger(logging.LevelWarn, buffer)

	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("A=1"), 0600))

	OSRemove(path, logger)
	assert.NoFileExists(t, path)
	assert.Empty(t, buffer.String())

	// A second removal fails and is only logged.
	color.NoColor = true
	OSRemove(path, logger)
	assert.Contains(t, buffer.String(), "Unable to remove")
}

func TestCloseTwice(t *testing.T) {
	buffer := &bytes.Buffer{}
	logger := logging.NewLogger(logging.LevelWarn, buffer)

	file, err := os.Create(filepath.Join(t.TempDir(), "file"))
	require.NoError(t, err)

	Close(file, logger)
	assert.Empty(t, buffer.String())
	Close(file, logger)
	assert.Contains(t, buffer.String(), "Unable to close")
}
