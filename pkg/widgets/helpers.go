package widgets

import (
	"fmt"

	"github.com/go-drift/sdui/pkg/core"
	"github.com/go-drift/sdui/pkg/errors"
)

// stringValue coerces a configuration value to a string.
func stringValue(op, key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", errors.InvalidArgument(op, "%s must be a string, got %T", key, value)
	}
	return s, nil
}

// numberValue coerces a configuration value to a float64. YAML and JSON
// decoders hand over int, int64, or float64 depending on the literal.
func numberValue(op, key string, value any) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	default:
		return 0, errors.InvalidArgument(op, "%s must be a number, got %T", key, value)
	}
}

// boolValue coerces a configuration value to a bool.
func boolValue(op, key string, value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, errors.InvalidArgument(op, "%s must be a boolean, got %T", key, value)
	}
	return b, nil
}

// enumValue coerces a configuration value to one of the allowed strings.
func enumValue(op, key string, value any, allowed ...string) (string, error) {
	s, err := stringValue(op, key, value)
	if err != nil {
		return "", err
	}
	for _, a := range allowed {
		if s == a {
			return s, nil
		}
	}
	return "", errors.InvalidArgument(op, "%s must be one of %v, got %q", key, allowed, s)
}

// stringSetter returns a setter storing a string value under prop.
func stringSetter(op, prop string) core.Setter {
	return func(n *core.Node, value any) error {
		s, err := stringValue(op, prop, value)
		if err != nil {
			return err
		}
		n.SetProperty(prop, s)
		return nil
	}
}

// numberSetter returns a setter storing a numeric value under prop.
func numberSetter(op, prop string) core.Setter {
	return func(n *core.Node, value any) error {
		f, err := numberValue(op, prop, value)
		if err != nil {
			return err
		}
		n.SetProperty(prop, f)
		return nil
	}
}

// boolSetter returns a setter storing a boolean value under prop.
func boolSetter(op, prop string) core.Setter {
	return func(n *core.Node, value any) error {
		b, err := boolValue(op, prop, value)
		if err != nil {
			return err
		}
		n.SetProperty(prop, b)
		return nil
	}
}

// enumSetter returns a setter storing one of the allowed strings under prop.
func enumSetter(op, prop string, allowed ...string) core.Setter {
	return func(n *core.Node, value any) error {
		s, err := enumValue(op, prop, value, allowed...)
		if err != nil {
			return err
		}
		n.SetProperty(prop, s)
		return nil
	}
}

// requireProperty returns the validation error for a missing required key.
func requireProperty(n *core.Node, kind, prop string) []string {
	if !n.Props().Has(prop) {
		return []string{fmt.Sprintf("%s: %s is required", kind, prop)}
	}
	return nil
}

// checkStoredEnum validates an already-stored property against its allowed
// values. Values written through the "properties" escape hatch bypass the
// setters, so kinds re-check them here.
func checkStoredEnum(n *core.Node, kind, prop string, allowed ...string) []string {
	value := n.Property(prop, nil)
	if value == nil {
		return nil
	}
	s, ok := value.(string)
	if ok {
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
	}
	return []string{fmt.Sprintf("%s: %s must be one of %v, got %v", kind, prop, allowed, value)}
}
