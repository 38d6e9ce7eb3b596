package conftreefx

// Options holds the source selection for a configuration module.
type Options struct {
	tree     map[string]any
	yamlData []byte
	filePath string
	sources  int
}

// Option defines a function type for applying configuration source options.
type Option func(*Options)

// WithTree supplies an already-materialized generic tree. The tree is
// handed over as-is and must not be mutated afterwards.
func WithTree(tree map[string]any) Option {
	return func(opts *Options) {
		opts.tree = tree
		opts.sources++
	}
}

// WithYAML supplies a YAML document to parse into the tree.
func WithYAML(data []byte) Option {
	return func(opts *Options) {
		opts.yamlData = data
		opts.sources++
	}
}

// WithFile supplies the path of a YAML file to read and parse into the
// tree. The file is read once, when the container instantiates the node.
func WithFile(path string) Option {
	return func(opts *Options) {
		opts.filePath = path
		opts.sources++
	}
}
