// Package graph provides the attributed directed graph handed from the
// builder to renderers, and its JSON serialization.
//
// # Overview
//
// A [Graph] holds uniquely named vertices and directed edges. Both carry an
// [Attrs] map of rendering attributes (shape, colors, labels). The graph
// itself has graph-level attributes as well.
//
// Unlike a map-backed node set, [Graph] remembers creation order: [Graph.Vertices]
// returns vertices in the order they were added and [Graph.Edges] returns
// edges in insertion order. Serializers rely on this to produce byte-identical
// output for identical input.
//
// # Parallel Edges
//
// [Graph.AddEdge] never deduplicates. Two edges between the same pair of
// vertices are kept as two edges, in the order they were added.
//
// # Serialization
//
// Graphs use a node-link JSON format:
//
//	{
//	  "attributes": {"concentrate": "true"},
//	  "vertices": [{"id": "proj/app", "attributes": {"shape": "box"}}],
//	  "edges": [{"from": "proj/app", "to": "vendor/lib", "attributes": {"label": "^1.0"}}]
//	}
//
// Use [MarshalGraph] or [WriteGraph] to encode, and decode into a
// [Document] with encoding/json.
//
// # Concurrency
//
// A Graph is not safe for concurrent use without external synchronization.
package graph
