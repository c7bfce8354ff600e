package encoding

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAndUnmarshalYAML(t *testing.T) {
	path := writeTestFile(t, "message.yaml", "name: \"George\"\nage: 67\n")

	value := &testMessage{}
	require.NoError(t, LoadAndUnmarshalYAML(path, value))
	assert.Equal(t, testMessage{Name: testMessageName, Age: testMessageAge}, *value)
}

func TestLoadAndUnmarshalYAMLUnknownField(t *testing.T) {
	path := writeTestFile(t, "message.yaml", "name: George\nheight: 74\n")
	assert.Error(t, LoadAndUnmarshalYAML(path, &testMessage{}))
}

func TestLoadAndUnmarshalTOML(t *testing.T) {
	path := writeTestFile(t, "message.toml", "name = \"George\"\nage = 67\n")

	value := &testMessage{}
	require.NoError(t, LoadAndUnmarshalTOML(path, value))
	assert.Equal(t, testMessage{Name: testMessageName, Age: testMessageAge}, *value)
}

func TestLoadAndUnmarshalTOMLUnknownField(t *testing.T) {
	path := writeTestFile(t, "message.toml", "name = \"George\"\nheight = 74\n")
	assert.Error(t, LoadAndUnmarshalTOML(path, &testMessage{}))
}

func TestLoadAndUnmarshalJSONUnknownField(t *testing.T) {
	path := writeTestFile(t, "message.json", `{"name":"George","height":74}`)
	assert.Error(t, LoadAndUnmarshalJSON(path, &testMessage{}))
}

// TestFormatsRoundTrip tests that every format reloads what it saves.
func TestFormatsRoundTrip(t *testing.T) {
	formats := []struct {
		name string
		save func(string, interface{}) error
		load func(string, interface{}) error
	}{
		{"yaml", func(p string, v interface{}) error { return MarshalAndSaveYAML(p, v, nil) }, LoadAndUnmarshalYAML},
		{"toml", func(p string, v interface{}) error { return MarshalAndSaveTOML(p, v, nil) }, LoadAndUnmarshalTOML},
		{"json", func(p string, v interface{}) error { return MarshalAndSaveJSON(p, v, nil) }, LoadAndUnmarshalJSON},
	}

	original := testMessage{Name: testMessageName, Age: testMessageAge}
	for _, format := range formats {
		t.Run(format.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "message."+format.name)
			require.NoError(t, format.save(path, original))

			reloaded := testMessage{}
			require.NoError(t, format.load(path, &reloaded))
			assert.Equal(t, original, reloaded)
		})
	}
}

func TestLoadAndUnmarshalEmpty(t *testing.T) {
	loaders := map[string]func(string, interface{}) error{
		"message.yaml": LoadAndUnmarshalYAML,
		"message.toml": LoadAndUnmarshalTOML,
		"message.json": LoadAndUnmarshalJSON,
	}
	for name, load := range loaders {
		path := writeTestFile(t, name, "")
		value := testMessage{}
		require.NoError(t, load(path, &value), name)
		assert.Equal(t, testMessage{}, value, name)
	}
}

func TestLoadAndUnmarshalWhitespaceOnly(t *testing.T) {
	for name, load := range map[string]func(string, interface{}) error{
		"message.yaml": LoadAndUnmarshalYAML,
		"message.json": LoadAndUnmarshalJSON,
	} {
		path := writeTestFile(t, name, "\n  \n")
		require.NoError(t, load(path, &testMessage{}), name)
	}
}
