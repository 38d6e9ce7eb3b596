package flatmap

import (
	"fmt"
	"strings"

	"github.com/conftree/conftree"
)

const separator = "."

var (
	_ conftree.Node  = (*Node)(nil)
	_ conftree.Value = (*Value)(nil)
)

// Node is a read-only view over a flat map whose keys are full dotted
// paths. Child nodes are prefix views over the same entries.
type Node struct {
	entries map[string]string
	prefix  string
}

// New copies entries into a root node.
func New(entries map[string]string) *Node {
	copied := make(map[string]string, len(entries))
	for key, value := range entries {
		copied[key] = value
	}

	return &Node{entries: copied}
}

// Property resolves a dotted path to a scalar leaf.
func (n *Node) Property(path string) (conftree.Value, error) {
	value, err := n.PropertyOrNil(path)
	if err != nil {
		return nil, err
	}

	if value == nil {
		return nil, conftree.NewError(fmt.Sprintf("no configuration value at path %q", path), nil)
	}

	return value, nil
}

// PropertyOrNil resolves like Property but returns (nil, nil) when the path
// is absent. A path that only prefixes deeper entries is an object and
// still fails.
func (n *Node) PropertyOrNil(path string) (conftree.Value, error) {
	if raw, exists := n.entries[n.absolute(path)]; exists {
		return &Value{raw: raw}, nil
	}

	if n.hasChildren(path) {
		return nil, conftree.NewError(fmt.Sprintf("configuration path %q holds an object, not a value", path), nil)
	}

	return nil, nil
}

// Config resolves a dotted path to a child node.
func (n *Node) Config(path string) (conftree.Node, error) {
	if _, exists := n.entries[n.absolute(path)]; exists {
		return nil, conftree.NewError(fmt.Sprintf("configuration path %q does not hold an object", path), nil)
	}

	if !n.hasChildren(path) {
		return nil, conftree.NewError(fmt.Sprintf("no configuration node at path %q", path), nil)
	}

	return &Node{entries: n.entries, prefix: n.absolute(path)}, nil
}

// ConfigList always fails: a flat string map cannot express a list of
// objects.
func (n *Node) ConfigList(path string) ([]conftree.Node, error) {
	return nil, conftree.NewError(fmt.Sprintf("configuration path %q does not hold a list of objects", path), nil)
}

// Keys returns every entry path under this node's prefix.
func (n *Node) Keys() []string {
	marker := ""
	if n.prefix != "" {
		marker = n.prefix + separator
	}

	var keys []string

	for key := range n.entries {
		if strings.HasPrefix(key, marker) {
			keys = append(keys, strings.TrimPrefix(key, marker))
		}
	}

	return keys
}

// ToMap rebuilds the nested structure implied by the dotted keys. All
// leaves are strings.
func (n *Node) ToMap() map[string]any {
	result := make(map[string]any)

	for _, key := range n.Keys() {
		segments := strings.Split(key, separator)
		current := result

		for _, segment := range segments[:len(segments)-1] {
			child, exists := current[segment].(map[string]any)
			if !exists {
				child = make(map[string]any)
				current[segment] = child
			}

			current = child
		}

		current[segments[len(segments)-1]] = n.entries[n.absolute(key)]
	}

	return result
}

func (n *Node) absolute(path string) string {
	if n.prefix == "" {
		return path
	}

	return n.prefix + separator + path
}

func (n *Node) hasChildren(path string) bool {
	marker := n.absolute(path) + separator

	for key := range n.entries {
		if strings.HasPrefix(key, marker) {
			return true
		}
	}

	return false
}

// Value is a scalar-only leaf. It deliberately does not implement
// conftree.Decoder: this backend supports string reads only.
type Value struct {
	raw string
}

// String returns the scalar.
func (v *Value) String() (string, error) {
	return v.raw, nil
}

// StringList always fails: flat entries are scalars.
func (v *Value) StringList() ([]string, error) {
	return nil, conftree.NewError("configuration value is a scalar, not a list", nil)
}
