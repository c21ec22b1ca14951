package compare

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputMode is the comparison policy applied to a text channel.
type OutputMode int

const (
	// Strict requires the actual output to equal the expected one byte for byte.
	Strict OutputMode = iota
	// Exists only checks that output is present when expected, and absent otherwise.
	Exists
)

// String makes OutputMode satisfy the fmt.Stringer interface.
func (m OutputMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Exists:
		return "exists"
	default:
		return fmt.Sprintf("OutputMode(%d)", int(m))
	}
}

// ParseOutputMode converts a mode name into an OutputMode. Names are case
// insensitive.
func ParseOutputMode(name string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "strict":
		return Strict, nil
	case "exists":
		return Exists, nil
	default:
		return Strict, fmt.Errorf("unknown output mode %q, must be one of: strict, exists", name)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *OutputMode) UnmarshalYAML(node *yaml.Node) error {
	var name string
	if err := node.Decode(&name); err != nil {
		return err
	}
	mode, err := ParseOutputMode(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*m = mode
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (m OutputMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}
