// Package builder turns a Composer root package and its lock data into an
// attributed dependency graph ready for rendering.
//
// # Overview
//
// [Builder.Build] walks the root package, then every locked production
// package, then (unless dev packages are suppressed) every locked development
// package. Each distinct package name becomes exactly one vertex, created on
// first reference. Every requirement becomes an edge from the requiring
// package to the required one.
//
// # Classification
//
// Package names are sorted into four [PackageType] shapes by [Classify]:
//
//   - regular: contains a "/" or is the "__root__" sentinel
//   - extension: starts with "ext-" or "lib-"
//   - php runtime: starts with "php" (php, php-64bit, php-ipv6, ...)
//   - composer platform: starts with "composer-" (composer-plugin-api, ...)
//
// Any other shape is an UNCLASSIFIABLE_PACKAGE error and aborts the build.
//
// Vertices get a [VertexClass] when created. The root package is always
// [VertexRoot]; otherwise platform-shaped names are [VertexPlatform],
// packages first reached through a development path are
// [VertexDevDependency], and everything else is [VertexDependency]. The class
// never changes afterwards, with one exception described below.
//
// Edges get an [EdgeClass] from the context that created them: requirements
// of development packages and the root's require-dev are [EdgeDev],
// provider links are [EdgeProvided], and the rest are [EdgeRegular].
//
// # Provides and Replaces
//
// A package's "provide" and "replace" links do not create edges while the
// package is processed. They are collected and reconciled once all packages
// are in the graph: when something in the graph actually depends on the
// provided name, an [EdgeProvided] edge is drawn from the provided vertex to
// the declaring package, labeled with the declared constraint, and a
// [VertexDependency] target is re-tagged [VertexProvided]. Provides that
// nothing depends on are dropped.
//
// PHP runtime variants such as php-64bit satisfy a plain "php" requirement,
// so each variant vertex also gets an unlabeled [EdgeProvided] edge to the
// "php" vertex.
//
// # Filters
//
// [Options] mirror the command-line switches. NoExt and NoPHP skip individual
// requirement links whose target has the filtered shape; a filtered package
// still appears if another unfiltered link reaches it. NoDev skips the
// root's require-dev and the lock's packages-dev list.
//
// # Determinism
//
// Packages and links are visited in source order, so vertex creation order
// and edge order are identical for identical input. Duplicate requirements
// produce parallel edges. Renderers can rely on this for byte-exact output.
package builder
