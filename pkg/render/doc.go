// Package render serializes dependency graphs to Graphviz DOT and renders
// them to images.
//
// # Overview
//
// [ToDOT] writes a [graph.Graph] as DOT text. Output is byte-exact for a given
// graph: vertices in creation order, edges in insertion order, attribute keys
// sorted. That makes DOT output suitable for regression comparison.
//
// [RenderDOT] turns DOT text into an image with Graphviz (via go-graphviz,
// no external binary needed):
//
//	dot := render.ToDOT(g)
//	svg, err := render.RenderDOT(ctx, dot, render.FormatSVG)
//
// PDF output goes through SVG and the external rsvg-convert tool, see [ToPDF].
//
// [Render] picks the right path for any supported [Format], including raw
// DOT and the node-link JSON form from [graph.MarshalGraph].
//
// # Formats
//
// [DetectFormat] resolves the output format from an explicit format name or
// the output file extension, defaulting to png for files and dot for
// standard output.
package render
