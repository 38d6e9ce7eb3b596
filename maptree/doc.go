// Package maptree implements the conftree contracts over an
// already-materialized generic tree (map[string]any), the shape produced by
// unmarshaling YAML or JSON into generic containers.
//
// Leaves are non-container scalars (rendered as strings) and lists of
// scalars; nested maps are objects, and lists of maps are
// array-of-objects nodes reached through ConfigList. Reading a list as a
// scalar or a scalar as a list is a hard shape-mismatch failure, never a
// coercion.
//
// Values implement the optional conftree.Decoder capability by re-encoding
// the underlying data through goccy/go-yaml, so typed access works for
// arbitrary composite targets:
//
//	node, err := maptree.FromFile("config.yaml")
//	ports, err := conftree.Get[[]string](node, "db.ports")
package maptree
