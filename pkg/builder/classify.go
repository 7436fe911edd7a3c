package builder

import (
	"strings"

	"github.com/matzehuels/composerviz/pkg/composer"
	"github.com/matzehuels/composerviz/pkg/errors"
)

// PHP is the canonical PHP runtime package name.
const PHP = "php"

// PackageType is the shape of a package name.
type PackageType int

const (
	PackageRegular PackageType = iota
	PackageExtension
	PackagePHPRuntime
	PackageComposerPlatform
)

func (t PackageType) String() string {
	switch t {
	case PackageRegular:
		return "regular"
	case PackageExtension:
		return "extension"
	case PackagePHPRuntime:
		return "php-runtime"
	case PackageComposerPlatform:
		return "composer-platform"
	default:
		return "unknown"
	}
}

// IsPlatform reports whether the type denotes a platform pseudo-package.
func (t PackageType) IsPlatform() bool {
	return t != PackageRegular
}

// Classify returns the type of a package name based on its lexical shape.
// Names matching none of the known shapes return an UNCLASSIFIABLE_PACKAGE
// error.
func Classify(name string) (PackageType, error) {
	switch {
	case strings.Contains(name, "/") || name == composer.RootSentinel:
		return PackageRegular, nil
	case strings.HasPrefix(name, "ext-") || strings.HasPrefix(name, "lib-"):
		return PackageExtension, nil
	case strings.HasPrefix(name, PHP):
		return PackagePHPRuntime, nil
	case strings.HasPrefix(name, "composer-"):
		return PackageComposerPlatform, nil
	}
	return 0, errors.New(errors.ErrCodeUnclassifiablePackage, "unable to determine package type of %q", name)
}
