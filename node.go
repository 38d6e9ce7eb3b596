package conftree

// Node is a position in a configuration tree. A node does not carry its own
// path; every path passed to it is resolved relative to the node queried.
//
// Implementations are immutable views over already-loaded data: any number
// of goroutines may call any method concurrently without coordination.
type Node interface {
	// Property resolves a dotted path to a leaf value. It fails with *Error
	// if the path does not exist or resolves to a non-leaf (an object or a
	// list of objects).
	Property(path string) (Value, error)

	// PropertyOrNil resolves like Property but returns (nil, nil) when the
	// path does not exist. It still fails with *Error when the path
	// resolves to a non-leaf, since that is a shape mismatch rather than an
	// absence.
	PropertyOrNil(path string) (Value, error)

	// Config resolves a dotted path to a child node. It fails with *Error
	// if the path does not exist or resolves to a leaf rather than an
	// object.
	Config(path string) (Node, error)

	// ConfigList resolves a dotted path to an ordered list of child nodes,
	// the configuration-array-of-objects case. It fails with *Error if the
	// path does not exist or is not array-of-objects shaped. Order matches
	// source order.
	ConfigList(path string) ([]Node, error)

	// Keys walks the tree below this node and returns every path whose
	// value is a leaf (string or list of strings), expressed relative to
	// this node in the same dotted syntax accepted by Property. Paths at or
	// below a list-of-objects entry are excluded: those leaves have no
	// dotted address here and are reached through ConfigList instead.
	//
	// Every returned path resolves via Property without error. No ordering
	// is guaranteed; each call returns a fresh slice.
	Keys() []string

	// ToMap returns the subtree as nested generic containers: string leaves
	// as string, list leaves as []string, object children as
	// map[string]any, and array-of-object children as []map[string]any.
	// The result is a deep copy; mutating it does not affect the tree.
	ToMap() map[string]any
}
