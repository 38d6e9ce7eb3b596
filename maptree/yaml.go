package maptree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned by FromYAML when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathIsDirectory is returned by FromFile when the path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// FromYAML unmarshals a YAML document into a generic tree and wraps it in a
// root node. It is a constructor convenience for loaders; the node itself
// performs no further parsing, merging, or substitution.
func FromYAML(data []byte) (*Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	tree := make(map[string]any)

	err := yaml.Unmarshal(data, &tree)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return New(tree), nil
}

// FromFile reads a single YAML file and wraps it in a root node. The file
// is read exactly once, here; the resulting node never touches the
// filesystem again.
func FromFile(fpath string) (*Node, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return FromYAML(data)
}
