package builder

import "testing"

func TestFillColorDistinct(t *testing.T) {
	seen := make(map[string]VertexClass)
	for _, c := range VertexClasses {
		color := FillColor(c)
		if prev, ok := seen[color]; ok {
			t.Errorf("FillColor(%s) = %s, same as %s", c, color, prev)
		}
		seen[color] = c
	}
}

func TestEdgeStyleDistinct(t *testing.T) {
	colors := make(map[string]bool)
	styles := make(map[string]bool)
	for _, c := range EdgeClasses {
		colors[EdgeColor(c)] = true
		styles[LineStyle(c)] = true
	}
	if len(colors) != len(EdgeClasses) || len(styles) != len(EdgeClasses) {
		t.Errorf("edge classes not distinguishable: %d colors, %d styles", len(colors), len(styles))
	}
}

func TestStyleValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"root fill", FillColor(VertexRoot), "#eeffee"},
		{"dependency fill", FillColor(VertexDependency), "#ffffff"},
		{"dev fill", FillColor(VertexDevDependency), "#eeeeee"},
		{"platform fill", FillColor(VertexPlatform), "#eeeeff"},
		{"provided fill", FillColor(VertexProvided), "#ffeeee"},
		{"root border", BorderColor(KindRoot), "#000000"},
		{"dependency border", BorderColor(KindDependency), "#000000"},
		{"dev border", BorderColor(KindDev), "#777777"},
		{"regular edge", EdgeColor(EdgeRegular), "#000000"},
		{"dev edge", EdgeColor(EdgeDev), "#777777"},
		{"provided edge", EdgeColor(EdgeProvided), "#cc7777"},
		{"regular line", LineStyle(EdgeRegular), "solid"},
		{"dev line", LineStyle(EdgeDev), "dashed"},
		{"provided line", LineStyle(EdgeProvided), "dotted"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %s, want %s", tt.name, tt.got, tt.want)
		}
	}
}

func TestFillColorPanicsOutsideEnum(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FillColor(99) did not panic")
		}
	}()
	FillColor(VertexClass(99))
}

func TestClassFor(t *testing.T) {
	tests := []struct {
		kind NodeKind
		typ  PackageType
		want VertexClass
	}{
		{KindRoot, PackageRegular, VertexRoot},
		{KindRoot, PackagePHPRuntime, VertexRoot},
		{KindDependency, PackageRegular, VertexDependency},
		{KindDependency, PackageExtension, VertexPlatform},
		{KindDev, PackageRegular, VertexDevDependency},
		{KindDev, PackageComposerPlatform, VertexPlatform},
	}

	for _, tt := range tests {
		if got := classFor(tt.kind, tt.typ); got != tt.want {
			t.Errorf("classFor(%s, %s) = %s, want %s", tt.kind, tt.typ, got, tt.want)
		}
	}
}

func TestClassStrings(t *testing.T) {
	if got := VertexDevDependency.String(); got != "dev-dependency" {
		t.Errorf("VertexDevDependency.String() = %q", got)
	}
	if got := EdgeProvided.String(); got != "provided" {
		t.Errorf("EdgeProvided.String() = %q", got)
	}
	if got := VertexClass(42).String(); got != "VertexClass(42)" {
		t.Errorf("VertexClass(42).String() = %q", got)
	}
}
