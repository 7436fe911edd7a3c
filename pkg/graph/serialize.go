package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// =============================================================================
// Wire Types
// =============================================================================

// Document is the JSON form of a graph.
type Document struct {
	Attributes Attrs          `json:"attributes,omitempty"`
	Vertices   []VertexRecord `json:"vertices"`
	Edges      []EdgeRecord   `json:"edges"`
}

// VertexRecord is the JSON form of a vertex.
type VertexRecord struct {
	ID         string `json:"id"`
	Attributes Attrs  `json:"attributes,omitempty"`
}

// EdgeRecord is the JSON form of an edge.
type EdgeRecord struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Attributes Attrs  `json:"attributes,omitempty"`
}

// =============================================================================
// Graph Serialization API
// =============================================================================

// MarshalGraph converts a graph to indented JSON bytes.
// Vertices and edges keep graph order; encoding/json sorts attribute keys.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteGraph writes a graph as indented JSON to w.
func WriteGraph(g *Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ToDocument(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ToDocument converts a graph to its wire form.
func ToDocument(g *Graph) Document {
	doc := Document{
		Vertices: make([]VertexRecord, 0, g.VertexCount()),
		Edges:    make([]EdgeRecord, 0, g.EdgeCount()),
	}
	if len(g.Attrs()) > 0 {
		doc.Attributes = g.Attrs().Clone()
	}
	for _, v := range g.Vertices() {
		doc.Vertices = append(doc.Vertices, VertexRecord{ID: v.ID, Attributes: nonEmpty(v.Attrs)})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeRecord{From: e.From, To: e.To, Attributes: nonEmpty(e.Attrs)})
	}
	return doc
}

func nonEmpty(a Attrs) Attrs {
	if len(a) == 0 {
		return nil
	}
	return a.Clone()
}
