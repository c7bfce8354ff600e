package envfile

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/mutagen-io/environ/pkg/environment"
)

// dotenvEscaper escapes a value for use between double quotes in a dotenv
// file. It inverts the unescaping and variable expansion that godotenv applies
// to double-quoted values.
var dotenvEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\n", `\n`,
	"\r", `\r`,
	`"`, `\"`,
	`!`, `\!`,
	`$`, `\$`,
	"`", "\\`",
)

// marshalDotenv renders variables as dotenv lines sorted by name, with every
// value double-quoted. godotenv.Marshal isn't used because it writes
// integer-looking values bare and in canonical form ("007" becomes 7). The
// output is read back with godotenv and any variable that doesn't survive
// unchanged is an error.
func marshalDotenv(variables []environment.Variable) ([]byte, error) {
	// Collapse duplicates and render lines.
	expected := environment.ToMap(variables)
	var builder strings.Builder
	for _, variable := range environment.FromMap(expected) {
		builder.WriteString(variable.Name)
		builder.WriteString(`="`)
		builder.WriteString(dotenvEscaper.Replace(variable.Value))
		builder.WriteString("\"\n")
	}
	contents := builder.String()

	// Verify that godotenv reads back exactly what we wrote.
	reloaded, err := godotenv.Unmarshal(contents)
	if err != nil {
		return nil, errors.Wrap(err, "variables can't be represented in dotenv format")
	}
	for name, value := range expected {
		if reloaded[name] != value {
			return nil, errors.Errorf("value of %s can't be represented in dotenv format", name)
		}
	}
	if len(reloaded) != len(expected) {
		return nil, errors.New("variable names can't be represented in dotenv format")
	}

	// Success.
	return []byte(contents), nil
}
