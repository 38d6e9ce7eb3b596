package conftree

// Value is one resolved configuration leaf. A Value never changes shape
// between repeated reads: a scalar stays a scalar, a list stays a list.
//
// Reading a list-shaped value as a string, or a scalar as a list, is a
// shape mismatch; the backends in this module fail such reads with *Error
// rather than coercing.
type Value interface {
	// String returns the scalar string representation of the value.
	String() (string, error)

	// StringList returns the value as an ordered list of strings.
	StringList() ([]string, error)
}

// Decoder is the optional conversion capability a Value may implement to
// support converting into arbitrary structured types beyond string and list
// reads. The target pointer carries the structural description of the
// desired type: its reflected shape directs deserialization of composite
// values (slices, nested structs, tagged fields).
//
// A Value that does not implement Decoder supports only string and list
// reads; the typed accessor reports that as ErrDecodingUnsupported.
type Decoder interface {
	Decode(target any) error
}
