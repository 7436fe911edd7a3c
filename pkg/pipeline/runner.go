package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/composerviz/pkg/builder"
	"github.com/matzehuels/composerviz/pkg/cache"
	"github.com/matzehuels/composerviz/pkg/composer"
	"github.com/matzehuels/composerviz/pkg/graph"
	"github.com/matzehuels/composerviz/pkg/observability"
	"github.com/matzehuels/composerviz/pkg/render"
)

// artifactKeyType labels rendered image entries in cache hook events.
const artifactKeyType = "artifact"

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger, so one Runner can
// serve several Execute calls.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → render pipeline.
// Loader and builder errors are returned unchanged apart from a stage prefix.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	result := &Result{Format: opts.Format}

	// Stage 1: Load
	loadStart := time.Now()
	root, lock, err := Load(opts)
	result.Stats.LoadTime = time.Since(loadStart)
	hooks := observability.Pipeline()
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.Manifest, 0, result.Stats.LoadTime, err)
		return nil, fmt.Errorf("load: %w", err)
	}
	hooks.OnLoadComplete(ctx, opts.Manifest, len(lock.Packages)+len(lock.PackagesDev), result.Stats.LoadTime, nil)
	r.Logger.Debug("loaded project",
		"manifest", opts.Manifest,
		"packages", len(lock.Packages),
		"dev_packages", len(lock.PackagesDev))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Build
	buildStart := time.Now()
	g, err := builder.New(opts.BuilderOptions()).Build(root, lock)
	if err != nil {
		hooks.OnBuildComplete(ctx, 0, 0, time.Since(buildStart), err)
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Graph = g
	result.DOT = render.ToDOT(g)
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.VertexCount = g.VertexCount()
	result.Stats.EdgeCount = g.EdgeCount()
	hooks.OnBuildComplete(ctx, g.VertexCount(), g.EdgeCount(), result.Stats.BuildTime, nil)

	r.Logger.Info("built dependency graph",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.BuildTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, string(opts.Format))
	artifact, hit, err := r.RenderWithCacheInfo(ctx, g, result.DOT, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, string(opts.Format), len(artifact), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifact = artifact
	result.CacheHit = hit

	r.Logger.Info("rendered output",
		"format", opts.Format,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads the manifest and lock file named by opts.
func Load(opts Options) (*composer.Package, *composer.Lock, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, err
	}
	root, err := composer.LoadManifest(opts.Manifest)
	if err != nil {
		return nil, nil, err
	}
	lock, err := composer.LoadLock(opts.Lock)
	if err != nil {
		return nil, nil, err
	}
	return root, lock, nil
}

// RenderWithCacheInfo renders g in opts.Format and reports whether the
// artifact came from the cache. Only Graphviz output is cached; dot and json
// are cheaper to produce than to look up.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *graph.Graph, dot string, opts Options) ([]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	if !opts.Format.IsImage() {
		data, err := render.Render(ctx, g, opts.Format)
		return data, false, err
	}

	cacheKey := r.Keyer.ArtifactKey(cache.Hash([]byte(dot)), opts.ArtifactKeyOpts())
	hooks := observability.Cache()

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, cacheKey)
		switch {
		case err != nil:
			r.Logger.Warn("cache read failed", "error", err)
		case hit:
			hooks.OnCacheHit(ctx, artifactKeyType)
			return data, true, nil
		}
		hooks.OnCacheMiss(ctx, artifactKeyType)
	}

	data, err := render.RenderDOT(ctx, dot, opts.Format)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err != nil {
		r.Logger.Warn("cache write failed", "error", err)
	} else {
		hooks.OnCacheSet(ctx, artifactKeyType, len(data))
	}
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
