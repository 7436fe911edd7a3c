package composer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/composerviz/pkg/errors"
)

const (
	// DefaultManifest is the manifest file name used when COMPOSER is unset.
	DefaultManifest = "composer.json"

	// EnvManifest names the environment variable Composer reads the manifest
	// file name from.
	EnvManifest = "COMPOSER"
)

// ManifestPath returns the manifest path inside dir, honoring the COMPOSER
// environment variable the same way Composer does.
func ManifestPath(dir string) string {
	name := os.Getenv(EnvManifest)
	if name == "" {
		name = DefaultManifest
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// LockPath derives the lock file path from a manifest path:
// "composer.json" becomes "composer.lock", any other name gets ".lock"
// appended.
func LockPath(manifest string) string {
	if strings.HasSuffix(manifest, ".json") {
		return strings.TrimSuffix(manifest, ".json") + ".lock"
	}
	return manifest + ".lock"
}

// LoadManifest reads and parses the root manifest at path.
func LoadManifest(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s not found", path).
			WithHint("run composerviz from a project directory or pass --working-dir")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	pkg, err := ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pkg, nil
}

// ParseManifest parses composer.json content into the root package record.
// A manifest without a name is given [RootSentinel]. Names are folded to
// lowercase like link targets.
func ParseManifest(data []byte) (*Package, error) {
	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	pkg.Name = strings.ToLower(pkg.Name)
	if pkg.Name == "" {
		pkg.Name = RootSentinel
	}
	if err := validateRecord(pkg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedRecord, err, "root package")
	}
	return &pkg, nil
}

// LoadLock reads and parses the lock file at path. A missing file is
// reported as MISSING_LOCK_DATA: the transitive graph cannot be drawn
// without it.
func LoadLock(path string) (*Lock, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeMissingLockData, err, "lock file %s not found", path).
			WithHint("run `composer update` to create it")
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	lock, err := ParseLock(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lock, nil
}

// ParseLock parses composer.lock content. The "packages" list is required;
// "packages-dev" is checked by [Lock.Validate] because it only matters when
// development packages are drawn.
func ParseLock(data []byte) (*Lock, error) {
	var lock Lock
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&lock); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode lock file")
	}
	if lock.Packages == nil {
		return nil, errors.New(errors.ErrCodeMissingLockData, "lock data has no \"packages\" list")
	}
	lowerNames(lock.Packages)
	lowerNames(lock.PackagesDev)
	if err := validateList("packages", lock.Packages); err != nil {
		return nil, err
	}
	if err := validateList("packages-dev", lock.PackagesDev); err != nil {
		return nil, err
	}
	return &lock, nil
}

// Validate reports MISSING_LOCK_DATA when a required list is absent.
// requireDev makes "packages-dev" required as well.
func (l *Lock) Validate(requireDev bool) error {
	if l == nil {
		return errors.New(errors.ErrCodeMissingLockData, "no lock data")
	}
	if l.Packages == nil {
		return errors.New(errors.ErrCodeMissingLockData, "lock data has no \"packages\" list")
	}
	if requireDev && l.PackagesDev == nil {
		return errors.New(errors.ErrCodeMissingLockData, "lock data has no \"packages-dev\" list").
			WithHint("pass --no-dev to draw production packages only")
	}
	return nil
}

func lowerNames(pkgs []Package) {
	for i := range pkgs {
		pkgs[i].Name = strings.ToLower(pkgs[i].Name)
	}
}

func validateList(key string, pkgs []Package) error {
	for i, p := range pkgs {
		if err := validateRecord(p); err != nil {
			return errors.Wrap(errors.ErrCodeMalformedRecord, err, "%s[%d]", key, i)
		}
	}
	return nil
}

func validateRecord(p Package) error {
	if err := errors.ValidatePackageName(p.Name); err != nil {
		return err
	}
	for _, links := range []Links{p.Require, p.RequireDev, p.Provide, p.Replace} {
		for _, link := range links {
			if err := errors.ValidatePackageName(link.Target); err != nil {
				return fmt.Errorf("%s: link target: %w", p.Name, err)
			}
		}
	}
	return nil
}
