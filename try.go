package conftree

// TryString returns the string leaf at key, with ok reporting presence. An
// absent key is not an error; a key that exists but is not a scalar leaf
// still fails.
func TryString(node Node, key string) (string, bool, error) {
	value, err := node.PropertyOrNil(key)
	if err != nil {
		return "", false, err
	}

	if value == nil {
		return "", false, nil
	}

	str, err := value.String()
	if err != nil {
		return "", false, err
	}

	return str, true, nil
}

// TryStringList is TryString for list-shaped leaves.
func TryStringList(node Node, key string) ([]string, bool, error) {
	value, err := node.PropertyOrNil(key)
	if err != nil {
		return nil, false, err
	}

	if value == nil {
		return nil, false, nil
	}

	list, err := value.StringList()
	if err != nil {
		return nil, false, err
	}

	return list, true, nil
}
