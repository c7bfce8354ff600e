package environment

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mutagen-io/environ/pkg/logging"
)

func TestCollect(t *testing.T) {
	variables, err := Collect("PATH=/usr/local/bin HOME=/home/name")
	require.NoError(t, err)
	assert.Equal(t, []Variable{
		{Name: "PATH", Value: "/usr/local/bin"},
		{Name: "HOME", Value: "/home/name"},
	}, variables)
}

func TestCollectEmpty(t *testing.T) {
	variables, err := Collect("")
	require.NoError(t, err)
	assert.Empty(t, variables)
}

func TestCollectStopsAtError(t *testing.T) {
	variables, err := Collect("A=1 BAD B=2")
	assert.ErrorIs(t, err, ErrMissingDelimiter)
	assert.Nil(t, variables)
}

func TestCollectValid(t *testing.T) {
	color.NoColor = true
	buffer := &bytes.Buffer{}
	logger := logging.NewLogger(logging.LevelWarn, buffer)

	variables := CollectValid("A=1 BAD B=2", logger)
	assert.Equal(t, []Variable{{Name: "A", Value: "1"}, {Name: "B", Value: "2"}}, variables)
	assert.Contains(t, buffer.String(), `"BAD"`)
}

func TestCollectValidNilLogger(t *testing.T) {
	variables := CollectValid("=1 A=2", nil)
	assert.Equal(t, []Variable{{Name: "A", Value: "2"}}, variables)
}
