package errors

import (
	"strings"
	"unicode"
)

// maxPackageNameLength bounds package names read from manifests and lock files.
const maxPackageNameLength = 256

// ValidatePackageName validates a package name read from a manifest or lock file.
//
// The rules are intentionally shape-agnostic: platform names such as "php",
// "ext-json" or "composer-plugin-api" pass, and so do namespaced names. What
// kind of package a name denotes is decided later by the graph builder.
//
// Rejected:
//   - Empty names
//   - Control characters and null bytes
//   - Whitespace
//   - Path traversal sequences and backslashes
//   - Names longer than 256 characters
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeMalformedRecord, "package name cannot be empty")
	}

	if len(name) > maxPackageNameLength {
		return New(ErrCodeMalformedRecord, "package name too long (max %d characters)", maxPackageNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeMalformedRecord, "package name contains invalid control characters: %q", name)
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeMalformedRecord, "package name contains whitespace: %q", name)
		}
	}

	for _, pattern := range []string{"..", "//", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeMalformedRecord, "package name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateOutputPath validates an output file path given on the command line.
// An empty path means standard output and is accepted.
func ValidateOutputPath(path string) error {
	if path == "" {
		return nil
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}
	if strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidInput, "output path %q is a directory", path)
	}
	return nil
}
