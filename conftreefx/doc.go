// Package conftreefx wires configuration trees into an Fx DI container.
//
// NewModule supplies a named root conftree.Node built from exactly one
// source option:
//
//	app := fx.New(
//	    conftreefx.NewModule("app", conftreefx.WithFile("config.yaml")),
//	    fx.Invoke(fx.Annotate(
//	        func(node conftree.Node) { ... },
//	        fx.ParamTags(`name:"app"`),
//	    )),
//	)
//
// Call NewModule multiple times with different names to supply several
// independent trees.
package conftreefx
