package cli

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/composerviz/pkg/errors"
)

// projectConfigName is looked up in the working directory before the user
// config directory.
const projectConfigName = appName + ".toml"

// fileConfig mirrors the viz flags that can be given defaults in a config
// file. Nil pointers mean "not set".
type fileConfig struct {
	Format        string `toml:"format"`
	NoCache       *bool  `toml:"no_cache"`
	NoDev         *bool  `toml:"no_dev"`
	NoPHP         *bool  `toml:"no_php"`
	NoExt         *bool  `toml:"no_ext"`
	NoPlatform    *bool  `toml:"no_platform"`
	NoPkgVersions *bool  `toml:"no_pkg_versions"`
	NoDepVersions *bool  `toml:"no_dep_versions"`
	NoVersions    *bool  `toml:"no_versions"`
}

// configPaths returns the candidate config files in lookup order.
func configPaths(workingDir string) []string {
	if workingDir == "" {
		workingDir = "."
	}
	paths := []string{filepath.Join(workingDir, projectConfigName)}
	if dir, err := configDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "config.toml"))
	}
	return paths
}

// loadConfig reads the first config file that exists. It returns an empty
// config and path when there is none.
func loadConfig(workingDir string) (*fileConfig, string, error) {
	for _, path := range configPaths(workingDir) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := readConfig(path)
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}
	return &fileConfig{}, "", nil
}

func readConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", ")).
			WithHint("supported keys: format, no_cache, no_dev, no_php, no_ext, no_platform, no_pkg_versions, no_dep_versions, no_versions")
	}
	return &cfg, nil
}

// apply copies config values into opts for every flag the user did not set
// on the command line. The format default only applies when the output path
// has no extension.
func (fc *fileConfig) apply(cmd *cobra.Command, opts *vizOptions) {
	flags := cmd.Flags()
	setBool := func(name string, dst *bool, v *bool) {
		if v != nil && !flags.Changed(name) {
			*dst = *v
		}
	}
	// An output extension names the format more precisely than a default.
	if fc.Format != "" && !flags.Changed("format") && filepath.Ext(opts.output) == "" {
		opts.format = fc.Format
	}
	setBool("no-cache", &opts.noCache, fc.NoCache)
	setBool("no-dev", &opts.noDev, fc.NoDev)
	setBool("no-php", &opts.noPHP, fc.NoPHP)
	setBool("no-ext", &opts.noExt, fc.NoExt)
	setBool("no-platform", &opts.noPlatform, fc.NoPlatform)
	setBool("no-pkg-versions", &opts.noPkgVersions, fc.NoPkgVersions)
	setBool("no-dep-versions", &opts.noDepVersions, fc.NoDepVersions)
	setBool("no-versions", &opts.noVersions, fc.NoVersions)
}
