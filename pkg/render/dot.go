package render

import (
	"bytes"
	"strings"

	"github.com/matzehuels/composerviz/pkg/graph"
)

// ToDOT converts a graph to Graphviz DOT format.
// The result can be rendered with [RenderDOT].
func ToDOT(g *graph.Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	for _, k := range g.Attrs().Keys() {
		buf.WriteString("  ")
		writeAttr(&buf, k, g.Attrs()[k])
		buf.WriteString(";\n")
	}
	buf.WriteString("\n")

	for _, v := range g.Vertices() {
		buf.WriteString("  ")
		buf.WriteString(quote(v.ID))
		writeAttrList(&buf, v.Attrs)
		buf.WriteString(";\n")
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		buf.WriteString("  ")
		buf.WriteString(quote(e.From))
		buf.WriteString(" -> ")
		buf.WriteString(quote(e.To))
		writeAttrList(&buf, e.Attrs)
		buf.WriteString(";\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeAttrList(buf *bytes.Buffer, attrs graph.Attrs) {
	if len(attrs) == 0 {
		return
	}
	buf.WriteString(" [")
	for i, k := range attrs.Keys() {
		if i > 0 {
			buf.WriteString(", ")
		}
		writeAttr(buf, k, attrs[k])
	}
	buf.WriteString("]")
}

func writeAttr(buf *bytes.Buffer, key, value string) {
	buf.WriteString(key)
	buf.WriteString("=")
	buf.WriteString(quote(value))
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", "")

// quote returns s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}
