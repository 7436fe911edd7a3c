package graph

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddVertex(t *testing.T) {
	tests := []struct {
		name    string
		setup   []string
		add     Vertex
		wantErr error
	}{
		{name: "Simple", add: Vertex{ID: "a"}},
		{name: "EmptyID", add: Vertex{}, wantErr: ErrInvalidVertexID},
		{name: "Duplicate", setup: []string{"a"}, add: Vertex{ID: "a"}, wantErr: ErrDuplicateVertexID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(nil)
			for _, id := range tt.setup {
				if _, err := g.AddVertex(Vertex{ID: id}); err != nil {
					t.Fatalf("setup AddVertex(%q): %v", id, err)
				}
			}
			v, err := g.AddVertex(tt.add)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddVertex() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && v.Attrs == nil {
				t.Error("AddVertex() left Attrs nil")
			}
		})
	}
}

func TestAddVertexReturnsStoredPointer(t *testing.T) {
	g := New(nil)
	v, _ := g.AddVertex(Vertex{ID: "a", Attrs: Attrs{"color": "#000000"}})
	v.Attrs["color"] = "#777777"

	got, ok := g.Vertex("a")
	if !ok {
		t.Fatal("Vertex(a) not found")
	}
	if got.Attrs["color"] != "#777777" {
		t.Errorf("color = %q, want #777777", got.Attrs["color"])
	}
}

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name    string
		edge    Edge
		wantErr error
	}{
		{name: "Simple", edge: Edge{From: "a", To: "b"}},
		{name: "SelfLoop", edge: Edge{From: "a", To: "a"}},
		{name: "UnknownSource", edge: Edge{From: "x", To: "b"}, wantErr: ErrUnknownSourceVertex},
		{name: "UnknownTarget", edge: Edge{From: "a", To: "x"}, wantErr: ErrUnknownTargetVertex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(nil)
			g.AddVertex(Vertex{ID: "a"})
			g.AddVertex(Vertex{ID: "b"})
			err := g.AddEdge(tt.edge)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddEdge() error = %v, want %v", err, tt.wantErr)
			}
			want := 1
			if tt.wantErr != nil {
				want = 0
			}
			if g.EdgeCount() != want {
				t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), want)
			}
		})
	}
}

func TestParallelEdgesKept(t *testing.T) {
	g := New(nil)
	g.AddVertex(Vertex{ID: "a"})
	g.AddVertex(Vertex{ID: "b"})
	g.AddEdge(Edge{From: "a", To: "b", Attrs: Attrs{"label": "^1.0"}})
	g.AddEdge(Edge{From: "a", To: "b", Attrs: Attrs{"label": "^2.0"}})

	edges := g.Edges()
	if len(edges) != 2 {
		t.Fatalf("len(Edges()) = %d, want 2", len(edges))
	}
	if edges[0].Attrs["label"] != "^1.0" || edges[1].Attrs["label"] != "^2.0" {
		t.Errorf("edges out of insertion order: %v", edges)
	}
}

func TestVerticesCreationOrder(t *testing.T) {
	g := New(nil)
	ids := []string{"zeta", "alpha", "mid", "beta"}
	for _, id := range ids {
		g.AddVertex(Vertex{ID: id})
	}

	var got []string
	for _, v := range g.Vertices() {
		got = append(got, v.ID)
	}
	if diff := cmp.Diff(ids, got); diff != "" {
		t.Errorf("Vertices() order mismatch (-want +got):\n%s", diff)
	}
}

func TestEdgesReturnsCopy(t *testing.T) {
	g := New(nil)
	g.AddVertex(Vertex{ID: "a"})
	g.AddVertex(Vertex{ID: "b"})
	g.AddEdge(Edge{From: "a", To: "b"})

	edges := g.Edges()
	edges[0].To = "changed"
	if g.Edges()[0].To != "b" {
		t.Error("Edges() exposed internal slice")
	}
}

func TestVertexLabel(t *testing.T) {
	tests := []struct {
		name string
		v    Vertex
		want string
	}{
		{name: "NoLabel", v: Vertex{ID: "vendor/lib"}, want: "vendor/lib"},
		{name: "EmptyLabel", v: Vertex{ID: "vendor/lib", Attrs: Attrs{"label": ""}}, want: "vendor/lib"},
		{name: "Label", v: Vertex{ID: "vendor/lib", Attrs: Attrs{"label": "vendor/lib: 1.0.0"}}, want: "vendor/lib: 1.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAttrs(t *testing.T) {
	a := Attrs{"shape": "box", "color": "#000000", "label": "x"}
	if diff := cmp.Diff([]string{"color", "label", "shape"}, a.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}

	c := a.Clone()
	c["shape"] = "ellipse"
	if a["shape"] != "box" {
		t.Error("Clone() shares storage with original")
	}

	var nilAttrs Attrs
	if nilAttrs.Clone() == nil {
		t.Error("Clone() of nil returned nil")
	}
}

func TestGraphAttrs(t *testing.T) {
	g := New(Attrs{"concentrate": "true"})
	g.Attrs()["rankdir"] = "LR"

	if diff := cmp.Diff(Attrs{"concentrate": "true", "rankdir": "LR"}, g.Attrs()); diff != "" {
		t.Errorf("Attrs() mismatch (-want +got):\n%s", diff)
	}
	if New(nil).Attrs() == nil {
		t.Error("New(nil).Attrs() = nil")
	}
}
