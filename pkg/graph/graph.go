package graph

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidVertexID is returned by [Graph.AddVertex] when the vertex ID
	// is empty.
	ErrInvalidVertexID = errors.New("vertex ID must not be empty")

	// ErrDuplicateVertexID is returned by [Graph.AddVertex] when a vertex with
	// the same ID already exists.
	ErrDuplicateVertexID = errors.New("duplicate vertex ID")

	// ErrUnknownSourceVertex is returned by [Graph.AddEdge] when the From
	// vertex does not exist.
	ErrUnknownSourceVertex = errors.New("unknown source vertex")

	// ErrUnknownTargetVertex is returned by [Graph.AddEdge] when the To vertex
	// does not exist.
	ErrUnknownTargetVertex = errors.New("unknown target vertex")
)

// Attrs holds rendering attributes as string key-value pairs.
// Serializers emit keys in sorted order.
type Attrs map[string]string

// Clone returns a copy of the attributes. A nil receiver yields an empty map.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a))
	maps.Copy(out, a)
	return out
}

// Keys returns the attribute keys in sorted order.
func (a Attrs) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Vertex is a uniquely named node of the graph.
type Vertex struct {
	ID    string
	Attrs Attrs // never nil after AddVertex
}

// Label returns the "label" attribute if set, otherwise the vertex ID.
func (v *Vertex) Label() string {
	if l, ok := v.Attrs["label"]; ok && l != "" {
		return l
	}
	return v.ID
}

// Edge is a directed connection from one vertex to another.
type Edge struct {
	From  string
	To    string
	Attrs Attrs // never nil after AddEdge
}

// Graph is a directed graph with attributed vertices and edges.
//
// The zero value is not usable; use New.
type Graph struct {
	vertices map[string]*Vertex
	order    []string
	edges    []Edge
	attrs    Attrs
}

// New creates an empty graph with optional graph-level attributes.
func New(attrs Attrs) *Graph {
	if attrs == nil {
		attrs = Attrs{}
	}
	return &Graph{
		vertices: make(map[string]*Vertex),
		attrs:    attrs,
	}
}

// Attrs returns the graph-level attributes. The map is never nil and can be
// modified in place.
func (g *Graph) Attrs() Attrs { return g.attrs }

// AddVertex adds a vertex and returns a pointer to the stored copy.
// Returns ErrInvalidVertexID for an empty ID and ErrDuplicateVertexID when
// the ID is taken.
func (g *Graph) AddVertex(v Vertex) (*Vertex, error) {
	if v.ID == "" {
		return nil, ErrInvalidVertexID
	}
	if _, exists := g.vertices[v.ID]; exists {
		return nil, ErrDuplicateVertexID
	}
	if v.Attrs == nil {
		v.Attrs = Attrs{}
	}
	vertex := &v
	g.vertices[v.ID] = vertex
	g.order = append(g.order, v.ID)
	return vertex, nil
}

// AddEdge appends a directed edge between two existing vertices.
// Parallel edges are allowed and kept in insertion order.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.vertices[e.From]; !ok {
		return ErrUnknownSourceVertex
	}
	if _, ok := g.vertices[e.To]; !ok {
		return ErrUnknownTargetVertex
	}
	if e.Attrs == nil {
		e.Attrs = Attrs{}
	}
	g.edges = append(g.edges, e)
	return nil
}

// Vertex returns the vertex with the given ID. The pointer refers to the
// stored vertex, so attribute changes affect the graph.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// HasVertex reports whether a vertex with the given ID exists.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// Vertices returns all vertices in creation order.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.order))
	for i, id := range g.order {
		out[i] = g.vertices[id]
	}
	return out
}

// Edges returns a copy of the edge list in insertion order. The attribute
// maps are shared with the graph.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges, parallel edges included.
func (g *Graph) EdgeCount() int { return len(g.edges) }
