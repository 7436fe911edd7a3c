package cli

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConfigPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/etc/xdg")
	got := configPaths("/work/app")
	want := []string{
		filepath.Join("/work/app", projectConfigName),
		filepath.Join("/etc/xdg", appName, "config.toml"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("configPaths() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigLookupOrder(t *testing.T) {
	testEnv(t)
	userDir, _ := configDir()
	writeFile(t, filepath.Join(userDir, "config.toml"), "format = \"svg\"\n")

	project := t.TempDir()
	cfg, path, err := loadConfig(project)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(userDir, "config.toml") || cfg.Format != "svg" {
		t.Errorf("got %q from %q, want user config", cfg.Format, path)
	}

	writeFile(t, filepath.Join(project, projectConfigName), "format = \"pdf\"\n")
	cfg, path, err = loadConfig(project)
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(project, projectConfigName) || cfg.Format != "pdf" {
		t.Errorf("got %q from %q, want project config", cfg.Format, path)
	}
}

func TestLoadConfigNone(t *testing.T) {
	testEnv(t)
	cfg, path, err := loadConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if path != "" {
		t.Errorf("path = %q, want none", path)
	}
	if diff := cmp.Diff(fileConfig{}, *cfg); diff != "" {
		t.Errorf("empty config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigApply(t *testing.T) {
	yes, no := true, false
	cfg := &fileConfig{
		Format:     "svg",
		NoDev:      &yes,
		NoExt:      &yes,
		NoVersions: &yes,
		NoCache:    &no,
	}

	cmd := New(io.Discard, LogInfo).vizCommand()
	if err := cmd.Flags().Parse([]string{"--no-ext=false", "--no-cache"}); err != nil {
		t.Fatal(err)
	}

	opts := &vizOptions{noCache: true}
	cfg.apply(cmd, opts)

	want := vizOptions{format: "svg", noDev: true, noVersions: true, noCache: true}
	if diff := cmp.Diff(want, *opts, cmp.AllowUnexported(vizOptions{})); diff != "" {
		t.Errorf("apply() mismatch (-want +got):\n%s", diff)
	}
}

func TestVizPipelineOptions(t *testing.T) {
	opts := vizOptions{workingDir: "/p", noPlatform: true, noVersions: true, refresh: true}
	got := opts.pipelineOptions("svg")
	if !got.NoPHP || !got.NoExt {
		t.Error("--no-platform should set NoPHP and NoExt")
	}
	if !got.NoPkgVersions || !got.NoDepVersions {
		t.Error("--no-versions should set both version filters")
	}
	if got.WorkingDir != "/p" || got.Format != "svg" || !got.Refresh {
		t.Errorf("pipelineOptions() = %+v", got)
	}
}

func TestConfigFormatYieldsToOutputExtension(t *testing.T) {
	cfg := &fileConfig{Format: "png"}
	tests := []struct {
		output string
		want   string
	}{
		{output: "deps.svg", want: ""},
		{output: "out/deps.dot", want: ""},
		{output: "deps", want: "png"},
		{output: "", want: "png"},
		{output: "-", want: "png"},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			cmd := New(io.Discard, LogInfo).vizCommand()
			opts := &vizOptions{output: tt.output}
			cfg.apply(cmd, opts)
			if opts.format != tt.want {
				t.Errorf("format = %q, want %q", opts.format, tt.want)
			}
		})
	}
}
