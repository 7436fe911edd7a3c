// Package pkg provides the libraries behind composerviz, a tool that draws
// the dependency graph of a Composer (PHP) project.
//
// # Overview
//
// A project's composer.json names the root package and its direct
// requirements. composer.lock records every installed package. Composerviz
// turns both into a directed graph with one vertex per package name, styles
// each vertex and edge by what it represents, and hands the result to
// Graphviz.
//
// # Architecture
//
// The data flow through composerviz:
//
//	composer.json + composer.lock
//	         ↓
//	    [composer] package (decode package records)
//	         ↓
//	    [builder] package (classify, filter, style, link providers)
//	         ↓
//	    [graph] package (attributed multigraph)
//	         ↓
//	    [render] package (DOT text, Graphviz images, JSON)
//
// [pipeline] runs these stages in order and caches rendered images through
// [cache]. [observability] exposes hooks for the pipeline and cache events.
// [errors] defines the error codes every stage reports.
//
// # Quick Start
//
//	root, _ := composer.LoadManifest("composer.json")
//	lock, _ := composer.LoadLock("composer.lock")
//
//	g, err := builder.New(builder.Options{NoDev: true}).Build(root, lock)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(render.ToDOT(g))
//
// [composer]: https://pkg.go.dev/github.com/matzehuels/composerviz/pkg/composer
// [builder]: https://pkg.go.dev/github.com/matzehuels/composerviz/pkg/builder
// [graph]: https://pkg.go.dev/github.com/matzehuels/composerviz/pkg/graph
// [render]: https://pkg.go.dev/github.com/matzehuels/composerviz/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/composerviz/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/composerviz/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/composerviz/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/composerviz/pkg/errors
package pkg
