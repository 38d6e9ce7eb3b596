package conftree

import "fmt"

// As converts a leaf value into E.
//
// When E is string, the scalar read is returned directly and the Decoder
// capability is never consulted, even if the value implements it. For any
// other E the value must implement Decoder; if it does not, As fails with
// an error wrapping ErrDecodingUnsupported.
func As[E any](value Value) (E, error) {
	var result E

	if target, isString := any(&result).(*string); isString {
		str, err := value.String()
		if err != nil {
			return result, err
		}

		*target = str

		return result, nil
	}

	decoder, isDecoder := value.(Decoder)
	if !isDecoder {
		return result, fmt.Errorf("converting to %T: %w", result, ErrDecodingUnsupported)
	}

	err := decoder.Decode(&result)
	if err != nil {
		return result, fmt.Errorf("decoding into %T: %w", result, err)
	}

	return result, nil
}

// Get resolves a dotted path on node and returns the leaf converted into E.
// The path is required: absence fails with *Error, exactly as Property does.
func Get[E any](node Node, path string) (E, error) {
	value, err := node.Property(path)
	if err != nil {
		var zero E

		return zero, err
	}

	return As[E](value)
}

// Lookup resolves a dotted path on node and returns the leaf converted into
// E. When the path is absent it returns the zero E and false without
// invoking any conversion; shape mismatches and conversion failures are
// still reported as errors.
func Lookup[E any](node Node, path string) (E, bool, error) {
	var zero E

	value, err := node.PropertyOrNil(path)
	if err != nil {
		return zero, false, err
	}

	if value == nil {
		return zero, false, nil
	}

	result, err := As[E](value)
	if err != nil {
		return zero, false, err
	}

	return result, true, nil
}
