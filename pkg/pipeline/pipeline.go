// Package pipeline runs the load → build → render sequence shared by the CLI
// and tests.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read composer.json and composer.lock from disk
//  2. Build: turn the package records into an attributed graph
//  3. Render: serialize the graph to DOT and, for image formats, run Graphviz
//
// Rendered images are cached by the hash of their DOT text and format, so
// re-running on an unchanged project skips Graphviz entirely.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    WorkingDir: ".",
//	    Format:     "svg",
//	    NoDev:      true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("deps.svg", result.Artifact, 0o644)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/composerviz/pkg/builder"
	"github.com/matzehuels/composerviz/pkg/cache"
	"github.com/matzehuels/composerviz/pkg/composer"
	"github.com/matzehuels/composerviz/pkg/graph"
	"github.com/matzehuels/composerviz/pkg/render"
)

// DefaultFormat is the output format when none is given.
const DefaultFormat = render.FormatDOT

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input
	WorkingDir string `json:"working_dir,omitempty"` // directory holding composer.json
	Manifest   string `json:"manifest,omitempty"`    // manifest path; overrides WorkingDir lookup
	Lock       string `json:"lock,omitempty"`        // lock path; derived from Manifest when empty

	// Builder filters
	NoDev         bool `json:"no_dev,omitempty"`
	NoExt         bool `json:"no_ext,omitempty"`
	NoPHP         bool `json:"no_php,omitempty"`
	NoPkgVersions bool `json:"no_pkg_versions,omitempty"`
	NoDepVersions bool `json:"no_dep_versions,omitempty"`

	// Output
	Format  render.Format `json:"format,omitempty"`
	Refresh bool          `json:"refresh,omitempty"` // ignore cached artifacts

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the built dependency graph.
	Graph *graph.Graph

	// DOT is the Graphviz serialization of Graph.
	DOT string

	// Artifact is the output in Format.
	Artifact []byte

	// Format is the format of Artifact.
	Format render.Format

	// Stats contains timing and size information.
	Stats Stats

	// CacheHit reports whether Artifact came from the cache.
	CacheHit bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount int
	EdgeCount   int
	LoadTime    time.Duration
	BuildTime   time.Duration
	RenderTime  time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults resolves paths and applies defaults.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Manifest == "" {
		dir := o.WorkingDir
		if dir == "" {
			dir = "."
		}
		o.Manifest = composer.ManifestPath(dir)
	}
	if o.Lock == "" {
		o.Lock = composer.LockPath(o.Manifest)
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	format, err := render.ParseFormat(string(o.Format))
	if err != nil {
		return err
	}
	o.Format = format
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// BuilderOptions returns the builder configuration for these options.
func (o *Options) BuilderOptions() builder.Options {
	return builder.Options{
		NoDev:            o.NoDev,
		NoExt:            o.NoExt,
		NoPHP:            o.NoPHP,
		NoVertexVersions: o.NoPkgVersions,
		NoEdgeVersions:   o.NoDepVersions,
		Logger:           o.Logger,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: string(o.Format)}
}
