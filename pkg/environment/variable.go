package environment

import (
	"strings"
	"unicode"
)

// Variable is a single environment variable. Variables are values; copying one
// yields an independent variable.
type Variable struct {
	// Name is the variable name. It is non-empty and contains neither
	// whitespace nor an equal sign.
	Name string
	// Value is the variable value. It may contain any character, including
	// equal signs.
	Value string
}

// ParseVariable parses a single NAME=VALUE specification. The specification is
// split on its first equal sign, so values may contain additional equal signs.
// Any error is a *ParseError.
func ParseVariable(specification string) (Variable, error) {
	// Split the specification on the first equal sign.
	index := strings.IndexByte(specification, '=')
	if index < 0 {
		return Variable{}, &ParseError{specification, ErrMissingDelimiter}
	}
	variable := Variable{
		Name:  specification[:index],
		Value: specification[index+1:],
	}

	// Verify the name.
	if err := validateName(variable.Name); err != nil {
		return Variable{}, &ParseError{specification, err}
	}

	// Success.
	return variable, nil
}

// validateName checks a variable name.
func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	} else if strings.IndexFunc(name, isInvalidNameRune) >= 0 {
		return ErrInvalidName
	}
	return nil
}

// isInvalidNameRune reports whether r may not appear in a variable name.
func isInvalidNameRune(r rune) bool {
	return r == '=' || unicode.IsSpace(r)
}

// Validate verifies that the variable name is well-formed.
func (v Variable) Validate() error {
	if err := validateName(v.Name); err != nil {
		return &ParseError{v.String(), err}
	}
	return nil
}

// String renders the variable in NAME=VALUE form.
func (v Variable) String() string {
	return v.Name + "=" + v.Value
}

// MarshalText implements encoding.TextMarshaler.MarshalText. Variables encode
// as a single NAME=VALUE string.
func (v Variable) MarshalText() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.UnmarshalText.
func (v *Variable) UnmarshalText(text []byte) error {
	variable, err := ParseVariable(string(text))
	if err != nil {
		return err
	}
	*v = variable
	return nil
}
