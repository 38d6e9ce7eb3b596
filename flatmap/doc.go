// Package flatmap implements the conftree contracts over a flat map of
// dotted paths to scalar strings, the simplest conforming backend. Every
// leaf is scalar-shaped, list reads always fail, and values do not
// implement the Decoder capability: typed access beyond string reports
// conftree.ErrDecodingUnsupported.
package flatmap
