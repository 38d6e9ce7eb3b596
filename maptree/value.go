package maptree

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/conftree/conftree"
)

var (
	_ conftree.Value   = (*Value)(nil)
	_ conftree.Decoder = (*Value)(nil)
)

// Value is one leaf read from a maptree node. Scalars of any underlying
// type (string, int, bool, float) render as strings; lists render as lists
// of strings. Reading across shapes fails rather than coercing.
type Value struct {
	raw any
}

// String returns the scalar string representation of the value.
func (v *Value) String() (string, error) {
	if _, isList := asScalarList(v.raw); isList {
		return "", conftree.NewError("configuration value is a list, not a scalar", nil)
	}

	return fmt.Sprint(v.raw), nil
}

// StringList returns the value as an ordered list of strings.
func (v *Value) StringList() ([]string, error) {
	list, isList := asScalarList(v.raw)
	if !isList {
		return nil, conftree.NewError("configuration value is a scalar, not a list", nil)
	}

	return list, nil
}

// Decode implements the optional conftree.Decoder capability by re-encoding
// the underlying data through YAML, so the reflected shape of target drives
// deserialization of composite types.
func (v *Value) Decode(target any) error {
	data, err := yaml.Marshal(v.raw)
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}

	err = yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("decoding value: %w", err)
	}

	return nil
}
