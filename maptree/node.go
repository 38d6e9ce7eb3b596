package maptree

import (
	"fmt"
	"strings"

	"github.com/conftree/conftree"
)

const separator = "."

var _ conftree.Node = (*Node)(nil)

// Node implements conftree.Node over a generic nested tree.
type Node struct {
	tree map[string]any
}

// New wraps an already-materialized tree. The tree is not copied: the
// caller hands over ownership and must not mutate it afterwards.
func New(tree map[string]any) *Node {
	return &Node{tree: tree}
}

// Property resolves a dotted path to a leaf value.
func (n *Node) Property(path string) (conftree.Value, error) {
	raw, found := n.resolve(path)
	if !found {
		return nil, conftree.NewError(fmt.Sprintf("no configuration value at path %q", path), nil)
	}

	if !isLeaf(raw) {
		return nil, conftree.NewError(fmt.Sprintf("configuration path %q holds an object, not a value", path), nil)
	}

	return &Value{raw: raw}, nil
}

// PropertyOrNil resolves like Property but returns (nil, nil) when the path
// is absent. A path that resolves to a non-leaf still fails.
func (n *Node) PropertyOrNil(path string) (conftree.Value, error) {
	raw, found := n.resolve(path)
	if !found {
		return nil, nil
	}

	if !isLeaf(raw) {
		return nil, conftree.NewError(fmt.Sprintf("configuration path %q holds an object, not a value", path), nil)
	}

	return &Value{raw: raw}, nil
}

// Config resolves a dotted path to a child node.
func (n *Node) Config(path string) (conftree.Node, error) {
	raw, found := n.resolve(path)
	if !found {
		return nil, conftree.NewError(fmt.Sprintf("no configuration node at path %q", path), nil)
	}

	object, isObject := raw.(map[string]any)
	if !isObject {
		return nil, conftree.NewError(fmt.Sprintf("configuration path %q does not hold an object", path), nil)
	}

	return New(object), nil
}

// ConfigList resolves a dotted path to an ordered list of child nodes.
func (n *Node) ConfigList(path string) ([]conftree.Node, error) {
	raw, found := n.resolve(path)
	if !found {
		return nil, conftree.NewError(fmt.Sprintf("no configuration node at path %q", path), nil)
	}

	elements, isObjectList := objectElements(raw)
	if !isObjectList {
		return nil, conftree.NewError(fmt.Sprintf("configuration path %q does not hold a list of objects", path), nil)
	}

	nodes := make([]conftree.Node, 0, len(elements))
	for _, element := range elements {
		nodes = append(nodes, New(element))
	}

	return nodes, nil
}

// Keys returns every leaf path below this node.
func (n *Node) Keys() []string {
	var keys []string

	collectKeys("", n.tree, &keys)

	return keys
}

// ToMap returns the subtree as a deep copy of nested generic containers.
func (n *Node) ToMap() map[string]any {
	return copyObject(n.tree)
}

// resolve walks the dotted path and returns the raw entry at its end.
// Traversal through anything that is not an object means the path does not
// exist.
func (n *Node) resolve(path string) (any, bool) {
	var current any = n.tree

	for _, segment := range strings.Split(path, separator) {
		object, isObject := current.(map[string]any)
		if !isObject {
			return nil, false
		}

		next, exists := object[segment]
		if !exists {
			return nil, false
		}

		current = next
	}

	return current, true
}

func collectKeys(prefix string, object map[string]any, keys *[]string) {
	for name, raw := range object {
		path := name
		if prefix != "" {
			path = prefix + separator + name
		}

		switch {
		case isLeaf(raw):
			*keys = append(*keys, path)
		default:
			child, isObject := raw.(map[string]any)
			if isObject {
				collectKeys(path, child, keys)
			}
			// Lists of objects are excluded: their leaves have no dotted
			// address relative to this node.
		}
	}
}

// isLeaf reports whether raw is a scalar or a list of scalars.
func isLeaf(raw any) bool {
	switch typed := raw.(type) {
	case map[string]any, []map[string]any:
		return false
	case []any:
		for _, element := range typed {
			if _, isObject := element.(map[string]any); isObject {
				return false
			}
		}

		return true
	default:
		return true
	}
}

// objectElements extracts the object elements of an array-of-objects entry.
// Every element must be an object; a mixed list is not navigable.
func objectElements(raw any) ([]map[string]any, bool) {
	if typed, isObjectList := raw.([]map[string]any); isObjectList {
		return typed, true
	}

	list, isList := raw.([]any)
	if !isList || len(list) == 0 {
		return nil, false
	}

	elements := make([]map[string]any, 0, len(list))

	for _, element := range list {
		object, isObject := element.(map[string]any)
		if !isObject {
			return nil, false
		}

		elements = append(elements, object)
	}

	return elements, true
}

func copyObject(object map[string]any) map[string]any {
	result := make(map[string]any, len(object))

	for name, raw := range object {
		result[name] = copyEntry(raw)
	}

	return result
}

func copyEntry(raw any) any {
	if object, isObject := raw.(map[string]any); isObject {
		return copyObject(object)
	}

	if elements, isObjectList := objectElements(raw); isObjectList {
		copies := make([]map[string]any, 0, len(elements))
		for _, element := range elements {
			copies = append(copies, copyObject(element))
		}

		return copies
	}

	if list, isList := asScalarList(raw); isList {
		return list
	}

	return fmt.Sprint(raw)
}

// asScalarList renders a list leaf as a fresh []string.
func asScalarList(raw any) ([]string, bool) {
	switch typed := raw.(type) {
	case []string:
		result := make([]string, len(typed))
		copy(result, typed)

		return result, true
	case []any:
		result := make([]string, 0, len(typed))
		for _, element := range typed {
			result = append(result, fmt.Sprint(element))
		}

		return result, true
	default:
		return nil, false
	}
}
