package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/composerviz/pkg/builder"
	"github.com/matzehuels/composerviz/pkg/errors"
	"github.com/matzehuels/composerviz/pkg/pipeline"
	"github.com/matzehuels/composerviz/pkg/render"
)

// vizOptions holds the flags of the viz command.
type vizOptions struct {
	output     string
	format     string
	workingDir string
	noCache    bool
	refresh    bool

	noDev         bool
	noPHP         bool
	noExt         bool
	noPlatform    bool
	noPkgVersions bool
	noDepVersions bool
	noVersions    bool
}

// pipelineOptions folds the shorthand flags into pipeline options.
func (o *vizOptions) pipelineOptions(format render.Format) pipeline.Options {
	return pipeline.Options{
		WorkingDir:    o.workingDir,
		NoDev:         o.noDev,
		NoExt:         o.noExt || o.noPlatform,
		NoPHP:         o.noPHP || o.noPlatform,
		NoPkgVersions: o.noPkgVersions || o.noVersions,
		NoDepVersions: o.noDepVersions || o.noVersions,
		Format:        format,
		Refresh:       o.refresh,
	}
}

// vertexClassHelp describes each vertex class in the viz help legend.
var vertexClassHelp = map[builder.VertexClass]string{
	builder.VertexRoot:          "root package",
	builder.VertexDependency:    "dependency",
	builder.VertexDevDependency: "dev dependency",
	builder.VertexPlatform:      "platform package (php, ext-*, lib-*, composer-*)",
	builder.VertexProvided:      "package satisfied through provide or replace",
}

// fillLegend lists the vertex fill colors in the order of builder.VertexClasses.
func fillLegend() string {
	var b strings.Builder
	b.WriteString("Vertex fills:")
	for _, c := range builder.VertexClasses {
		fmt.Fprintf(&b, "\n  %s  %s", builder.FillColor(c), vertexClassHelp[c])
	}
	return b.String()
}

// vizCommand creates the viz command.
func (c *CLI) vizCommand() *cobra.Command {
	opts := &vizOptions{}

	cmd := &cobra.Command{
		Use:   "viz",
		Short: "Draw the dependency graph of a Composer project",
		Long: `Draw the dependency graph of a Composer project.

The graph is read from composer.json and composer.lock in the working
directory. Without --output the Graphviz DOT source is written to stdout.
With --output the format follows the file extension (png when there is none)
unless --format is given.

` + fillLegend(),
		Example: `  # Pipe DOT to Graphviz
  composerviz viz | dot -Tsvg -o deps.svg

  # Render directly, production dependencies only
  composerviz viz --no-dev -o deps.png

  # Hide php and ext-* vertices and all version labels
  composerviz viz --no-platform --no-versions -o deps.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(opts.workingDir)
			if err != nil {
				return err
			}
			if path != "" {
				loggerFromContext(cmd.Context()).Debug("loaded config", "path", path)
			}
			cfg.apply(cmd, opts)
			return c.runViz(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg, png, jpg, pdf, json (default: from --output extension)")
	cmd.Flags().StringVarP(&opts.workingDir, "working-dir", "d", "", "project directory (default: current directory)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the rendered image cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached image exists")
	cmd.Flags().BoolVar(&opts.noDev, "no-dev", false, "skip require-dev and packages-dev")
	cmd.Flags().BoolVar(&opts.noPHP, "no-php", false, "skip php and composer platform packages")
	cmd.Flags().BoolVar(&opts.noExt, "no-ext", false, "skip ext-* and lib-* packages")
	cmd.Flags().BoolVar(&opts.noPlatform, "no-platform", false, "same as --no-php --no-ext")
	cmd.Flags().BoolVar(&opts.noPkgVersions, "no-pkg-versions", false, "omit installed versions from vertex labels")
	cmd.Flags().BoolVar(&opts.noDepVersions, "no-dep-versions", false, "omit version constraints from edge labels")
	cmd.Flags().BoolVar(&opts.noVersions, "no-versions", false, "same as --no-pkg-versions --no-dep-versions")

	return cmd
}

func (c *CLI) runViz(cmd *cobra.Command, opts *vizOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	format, err := render.DetectFormat(opts.output, opts.format)
	if err != nil {
		return err
	}

	toStdout := opts.output == "" || opts.output == "-"
	out := cmd.OutOrStdout()
	if toStdout && format.Binary() && isTerminal(out) {
		return errors.New(errors.ErrCodeInvalidInput, "refusing to write %s data to a terminal", format).
			WithHint("pass --output or redirect stdout")
	}

	runner := c.newRunner(opts.noCache)
	defer runner.Close()

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, "Building dependency graph...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts.pipelineOptions(format))
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", result.Format))

	if toStdout {
		_, err := out.Write(result.Artifact)
		return err
	}

	if err := writeOutput(opts.output, result.Artifact); err != nil {
		return err
	}
	printSuccess("Dependency graph written")
	printFile(opts.output)
	printStats(result.Stats.VertexCount, result.Stats.EdgeCount, len(result.Artifact), result.CacheHit)
	return nil
}

// writeOutput writes data to path, creating parent directories as needed.
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "create output directory %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", path)
	}
	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
