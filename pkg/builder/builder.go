package builder

import (
	"io"
	"maps"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/composerviz/pkg/composer"
	"github.com/matzehuels/composerviz/pkg/errors"
	"github.com/matzehuels/composerviz/pkg/graph"
)

// Options control which packages and labels end up in the graph.
type Options struct {
	NoDev            bool // skip require-dev of the root and the lock's packages-dev
	NoExt            bool // skip links to ext-* and lib-* packages
	NoPHP            bool // skip links to php* and composer-* packages
	NoVertexVersions bool // omit "name: version" vertex labels
	NoEdgeVersions   bool // omit constraint labels on edges

	// Logger receives debug records about filtered links and provider
	// reconciliation. Nil discards them.
	Logger *log.Logger
}

// Builder constructs dependency graphs. It holds no per-build state and can
// be reused.
type Builder struct {
	opts Options
}

// New returns a Builder with the given options.
func New(opts Options) *Builder {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Builder{opts: opts}
}

// Build returns the dependency graph of root and lock.
//
// The lock must carry a packages list, and a packages-dev list unless NoDev
// is set; otherwise MISSING_LOCK_DATA is returned. An unclassifiable package
// name aborts the build with UNCLASSIFIABLE_PACKAGE.
func (b *Builder) Build(root *composer.Package, lock *composer.Lock) (*graph.Graph, error) {
	if root == nil {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "no root package")
	}
	if err := lock.Validate(!b.opts.NoDev); err != nil {
		return nil, err
	}

	s := &state{
		opts:    b.opts,
		logger:  b.opts.Logger,
		g:       graph.New(graph.Attrs{"concentrate": "true"}),
		classes: make(map[string]VertexClass),
	}

	if err := s.processPackage(root, KindRoot, !b.opts.NoDev); err != nil {
		return nil, err
	}
	for i := range lock.Packages {
		if err := s.processPackage(&lock.Packages[i], KindDependency, false); err != nil {
			return nil, err
		}
	}
	if !b.opts.NoDev {
		for i := range lock.PackagesDev {
			if err := s.processPackage(&lock.PackagesDev[i], KindDev, false); err != nil {
				return nil, err
			}
		}
	}

	if err := s.linkPHPVariants(); err != nil {
		return nil, err
	}
	if err := s.linkProviders(); err != nil {
		return nil, err
	}
	return s.g, nil
}

// provide is a provide or replace declaration awaiting reconciliation.
type provide struct {
	declarer   string
	target     string
	constraint string
}

// state is owned by a single Build call.
type state struct {
	opts        Options
	logger      *log.Logger
	g           *graph.Graph
	classes     map[string]VertexClass
	phpVariants []string
	provides    []provide
}

func (s *state) processPackage(p *composer.Package, kind NodeKind, includeDev bool) error {
	v, err := s.vertex(p.Name, kind)
	if err != nil {
		return err
	}
	if !s.opts.NoVertexVersions && p.Version != "" {
		v.Attrs["label"] = p.Name + ": " + p.Version
	}

	targetKind, edgeClass := KindDependency, EdgeRegular
	if kind == KindDev {
		targetKind, edgeClass = KindDev, EdgeDev
	}
	if err := s.linkRequires(v.ID, p.Require, targetKind, edgeClass); err != nil {
		return err
	}

	for _, links := range []composer.Links{p.Provide, p.Replace} {
		for _, l := range links {
			s.provides = append(s.provides, provide{declarer: p.Name, target: l.Target, constraint: l.Constraint})
		}
	}

	if includeDev {
		return s.linkRequires(v.ID, p.RequireDev, KindDev, EdgeDev)
	}
	return nil
}

func (s *state) linkRequires(from string, links composer.Links, kind NodeKind, class EdgeClass) error {
	for _, l := range links {
		skip, err := s.ignore(l.Target)
		if err != nil {
			return err
		}
		if skip {
			s.logger.Debug("filtered requirement", "from", from, "to", l.Target)
			continue
		}
		to, err := s.vertex(l.Target, kind)
		if err != nil {
			return err
		}
		if err := s.edge(from, to.ID, l.Constraint, class); err != nil {
			return err
		}
	}
	return nil
}

// ignore reports whether a link to name is dropped by the platform filters.
func (s *state) ignore(name string) (bool, error) {
	t, err := Classify(name)
	if err != nil {
		return false, err
	}
	switch t {
	case PackageExtension:
		return s.opts.NoExt, nil
	case PackagePHPRuntime, PackageComposerPlatform:
		return s.opts.NoPHP, nil
	}
	return false, nil
}

// vertex returns the vertex for name, creating and classifying it on first
// reference.
func (s *state) vertex(name string, kind NodeKind) (*graph.Vertex, error) {
	if v, ok := s.g.Vertex(name); ok {
		return v, nil
	}
	t, err := Classify(name)
	if err != nil {
		return nil, err
	}
	class := classFor(kind, t)
	v, err := s.g.AddVertex(graph.Vertex{ID: name, Attrs: vertexStyleAttrs(class, kind)})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "add vertex %q", name)
	}
	s.classes[name] = class
	if t == PackagePHPRuntime && name != PHP {
		s.phpVariants = append(s.phpVariants, name)
	}
	return v, nil
}

func (s *state) edge(from, to, constraint string, class EdgeClass) error {
	attrs := edgeStyleAttrs(class)
	if !s.opts.NoEdgeVersions && constraint != "" {
		attrs["label"] = constraint
	}
	if err := s.g.AddEdge(graph.Edge{From: from, To: to, Attrs: attrs}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "add edge %s -> %s", from, to)
	}
	return nil
}

// linkPHPVariants connects every php runtime variant to the canonical php
// vertex, which is created if absent.
func (s *state) linkPHPVariants() error {
	if len(s.phpVariants) == 0 {
		return nil
	}
	php, err := s.vertex(PHP, KindDependency)
	if err != nil {
		return err
	}
	for _, name := range s.phpVariants {
		if err := s.edge(name, php.ID, "", EdgeProvided); err != nil {
			return err
		}
	}
	return nil
}

// linkProviders draws provider edges for provided names present in the graph.
func (s *state) linkProviders() error {
	for _, p := range s.provides {
		target, ok := s.g.Vertex(p.target)
		if !ok {
			s.logger.Debug("unused provide", "package", p.declarer, "provides", p.target)
			continue
		}
		if s.classes[p.target] == VertexDependency {
			s.classes[p.target] = VertexProvided
			maps.Copy(target.Attrs, vertexStyleAttrs(VertexProvided, KindDependency))
			s.logger.Debug("reclassified provided package", "package", p.target, "provider", p.declarer)
		}
		if err := s.edge(p.target, p.declarer, p.constraint, EdgeProvided); err != nil {
			return err
		}
	}
	return nil
}
