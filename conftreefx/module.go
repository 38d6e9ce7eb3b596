package conftreefx

import (
	"errors"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/conftree/conftree"
	"github.com/conftree/conftree/maptree"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("configuration module name must not be empty")

// ErrNoSource is returned when no source option is provided.
var ErrNoSource = errors.New("a configuration source option is required")

// ErrMultipleSources is returned when more than one source option is provided.
var ErrMultipleSources = errors.New("only one configuration source option may be provided")

// NewModule creates an Fx module that supplies a root conftree.Node under
// the DI named tag matching name. Exactly one source option must be given.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return fx.Module(name, fx.Provide(
		fx.Annotate(
			func() (conftree.Node, error) {
				node, err := materialize(&options)
				if err != nil {
					return nil, fmt.Errorf("loading configuration %q: %w", name, err)
				}

				slog.Info("configuration tree loaded",
					slog.String("name", name),
					slog.Int("keys", len(node.Keys())),
				)

				return node, nil
			},
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	))
}

//nolint:ireturn // conftree.Node is the contract type supplied to DI
func materialize(options *Options) (conftree.Node, error) {
	switch {
	case options.sources == 0:
		return nil, ErrNoSource
	case options.sources > 1:
		return nil, ErrMultipleSources
	case options.tree != nil:
		return maptree.New(options.tree), nil
	case options.yamlData != nil:
		return maptree.FromYAML(options.yamlData)
	default:
		return maptree.FromFile(options.filePath)
	}
}
