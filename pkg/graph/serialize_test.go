package graph

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleGraph() *Graph {
	g := New(Attrs{"concentrate": "true"})
	g.AddVertex(Vertex{ID: "proj/app", Attrs: Attrs{"shape": "box", "fillcolor": "#eeffee"}})
	g.AddVertex(Vertex{ID: "vendor/lib", Attrs: Attrs{"label": "vendor/lib: 1.0.0"}})
	g.AddVertex(Vertex{ID: "php"})
	g.AddEdge(Edge{From: "proj/app", To: "vendor/lib", Attrs: Attrs{"label": "^1.0"}})
	g.AddEdge(Edge{From: "proj/app", To: "php"})
	g.AddEdge(Edge{From: "proj/app", To: "php"})
	return g
}

func TestMarshalGraph(t *testing.T) {
	tests := []struct {
		name         string
		build        func() *Graph
		wantVertices int
		wantEdges    int
	}{
		{name: "Empty", build: func() *Graph { return New(nil) }},
		{name: "Sample", build: sampleGraph, wantVertices: 3, wantEdges: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalGraph(tt.build())
			if err != nil {
				t.Fatalf("MarshalGraph: %v", err)
			}

			var doc Document
			if err := json.Unmarshal(data, &doc); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if len(doc.Vertices) != tt.wantVertices {
				t.Errorf("vertices = %d, want %d", len(doc.Vertices), tt.wantVertices)
			}
			if len(doc.Edges) != tt.wantEdges {
				t.Errorf("edges = %d, want %d", len(doc.Edges), tt.wantEdges)
			}
		})
	}
}

func TestMarshalGraphEmptyListsNotNull(t *testing.T) {
	data, err := MarshalGraph(New(nil))
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	if strings.Contains(string(data), "null") {
		t.Errorf("empty graph encoded with null lists:\n%s", data)
	}
}

func TestMarshalGraphDeterministic(t *testing.T) {
	first, err := MarshalGraph(sampleGraph())
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	for range 5 {
		again, err := MarshalGraph(sampleGraph())
		if err != nil {
			t.Fatalf("MarshalGraph: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("output differs between runs:\n%s\n---\n%s", first, again)
		}
	}
}


func TestDocumentDecodesWrittenGraph(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGraph(sampleGraph(), &buf); err != nil {
		t.Fatalf("WriteGraph: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(ToDocument(sampleGraph()), doc); diff != "" {
		t.Errorf("decoded document mismatch (-want +got):\n%s", diff)
	}
}
