package render

import (
	"bytes"
	"context"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/composerviz/pkg/errors"
	"github.com/matzehuels/composerviz/pkg/graph"
)

// Render produces the graph in the given format.
func Render(ctx context.Context, g *graph.Graph, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := graph.MarshalGraph(g)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "marshal graph")
		}
		return data, nil
	default:
		return RenderDOT(ctx, ToDOT(g), format)
	}
}

// RenderDOT renders DOT text. The dot format returns the text unchanged,
// svg, png and jpg are rendered by Graphviz, and pdf is converted from svg by
// [ToPDF]. Json needs the graph itself and is rejected here; use [Render].
func RenderDOT(ctx context.Context, dot string, format Format) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return renderGraphviz(ctx, dot, graphviz.SVG)
	case FormatPNG:
		return renderGraphviz(ctx, dot, graphviz.PNG)
	case FormatJPG:
		return renderGraphviz(ctx, dot, graphviz.JPG)
	case FormatPDF:
		svg, err := renderGraphviz(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return ToPDF(ctx, svg)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "cannot render DOT as %q", format)
}

func renderGraphviz(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}
