// Package conftree provides read-only, path-addressed access to a
// hierarchical configuration tree.
//
// The package defines the contracts between configuration backends and
// application code:
//   - Node: a navigable position in the tree, resolving leaf values and
//     child nodes by dotted path
//   - Value: one resolved leaf, readable as a string or a list of strings
//   - Decoder: the optional capability a Value may implement to convert
//     itself into arbitrary caller-specified types
//
// Backends implement Node and Value over whatever representation their
// loader produced; see the maptree and flatmap subpackages for a rich and a
// minimal implementation. Loading itself (files, environment, remote
// stores, substitution, merging) happens before a Node is handed out and is
// not part of these contracts.
//
// # Path Navigation
//
// Paths use dot (.) as the separator for nested keys:
//
//	"db.host"          -> tree["db"]["host"]
//	"db.pool.size"     -> three levels deep
//
// Segments must not themselves contain the separator; no escaping mechanism
// exists.
//
// # Typed Access
//
// The generic accessors Get, Lookup, and As return leaf values already
// converted to a requested type. String requests read the scalar directly;
// any other type requires the backend's Value to implement Decoder, and
// fails with ErrDecodingUnsupported otherwise:
//
//	host, err := conftree.Get[string](node, "db.host")
//	size, err := conftree.Get[int](node, "db.pool.size")
//	tags, ok, err := conftree.Lookup[[]string](node, "db.tags")
//
// # Errors
//
// A required path that is absent, or a path that resolves to the wrong
// shape (an object where a leaf was requested, or vice versa), fails with
// *Error. Absence-tolerant operations (PropertyOrNil, Lookup, TryString,
// TryStringList) report absence as an explicit result instead, but still
// fail on shape mismatch.
package conftree
