package builder

import (
	"fmt"

	"github.com/matzehuels/composerviz/pkg/graph"
)

// VertexClass decides a vertex's fill color.
type VertexClass int

const (
	VertexRoot VertexClass = iota
	VertexDependency
	VertexDevDependency
	VertexPlatform
	VertexProvided
)

// VertexClasses lists every vertex class.
var VertexClasses = []VertexClass{VertexRoot, VertexDependency, VertexDevDependency, VertexPlatform, VertexProvided}

func (c VertexClass) String() string {
	switch c {
	case VertexRoot:
		return "root"
	case VertexDependency:
		return "dependency"
	case VertexDevDependency:
		return "dev-dependency"
	case VertexPlatform:
		return "platform"
	case VertexProvided:
		return "provided"
	default:
		return fmt.Sprintf("VertexClass(%d)", int(c))
	}
}

// EdgeClass decides an edge's color and line style.
type EdgeClass int

const (
	EdgeRegular EdgeClass = iota
	EdgeDev
	EdgeProvided
)

// EdgeClasses lists every edge class.
var EdgeClasses = []EdgeClass{EdgeRegular, EdgeDev, EdgeProvided}

func (c EdgeClass) String() string {
	switch c {
	case EdgeRegular:
		return "regular"
	case EdgeDev:
		return "dev"
	case EdgeProvided:
		return "provided"
	default:
		return fmt.Sprintf("EdgeClass(%d)", int(c))
	}
}

// NodeKind is the traversal context a vertex was first reached from. It
// decides border and font color.
type NodeKind int

const (
	KindRoot NodeKind = iota
	KindDependency
	KindDev
)

func (k NodeKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindDependency:
		return "dependency"
	case KindDev:
		return "dev"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

const (
	colorBlack  = "#000000"
	colorGrey   = "#777777"
	colorRed    = "#cc7777"
	fillWhite   = "#ffffff"
	fillGreen   = "#eeffee"
	fillGrey    = "#eeeeee"
	fillBlue    = "#eeeeff"
	fillRed     = "#ffeeee"
	vertexShape = "box"
	vertexStyle = "rounded, filled"
)

// FillColor returns the fill color for a vertex class.
func FillColor(c VertexClass) string {
	switch c {
	case VertexRoot:
		return fillGreen
	case VertexDependency:
		return fillWhite
	case VertexDevDependency:
		return fillGrey
	case VertexPlatform:
		return fillBlue
	case VertexProvided:
		return fillRed
	}
	panic(fmt.Sprintf("builder: unknown vertex class %d", int(c)))
}

// BorderColor returns the border and font color for a node kind.
func BorderColor(k NodeKind) string {
	switch k {
	case KindRoot, KindDependency:
		return colorBlack
	case KindDev:
		return colorGrey
	}
	panic(fmt.Sprintf("builder: unknown node kind %d", int(k)))
}

// EdgeColor returns the line and label color for an edge class.
func EdgeColor(c EdgeClass) string {
	switch c {
	case EdgeRegular:
		return colorBlack
	case EdgeDev:
		return colorGrey
	case EdgeProvided:
		return colorRed
	}
	panic(fmt.Sprintf("builder: unknown edge class %d", int(c)))
}

// LineStyle returns the Graphviz line style for an edge class.
func LineStyle(c EdgeClass) string {
	switch c {
	case EdgeRegular:
		return "solid"
	case EdgeDev:
		return "dashed"
	case EdgeProvided:
		return "dotted"
	}
	panic(fmt.Sprintf("builder: unknown edge class %d", int(c)))
}

func vertexStyleAttrs(c VertexClass, k NodeKind) graph.Attrs {
	border := BorderColor(k)
	return graph.Attrs{
		"shape":     vertexShape,
		"style":     vertexStyle,
		"fillcolor": FillColor(c),
		"color":     border,
		"fontcolor": border,
	}
}

func edgeStyleAttrs(c EdgeClass) graph.Attrs {
	color := EdgeColor(c)
	return graph.Attrs{
		"color":     color,
		"fontcolor": color,
		"style":     LineStyle(c),
	}
}

// classFor picks the class of a newly created vertex.
// Root wins over platform shape, which wins over dev provenance.
func classFor(k NodeKind, t PackageType) VertexClass {
	switch {
	case k == KindRoot:
		return VertexRoot
	case t.IsPlatform():
		return VertexPlatform
	case k == KindDev:
		return VertexDevDependency
	default:
		return VertexDependency
	}
}
