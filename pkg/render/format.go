package render

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/composerviz/pkg/errors"
)

// Format is an output format name.
type Format string

const (
	FormatDOT  Format = "dot"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatDOT, FormatSVG, FormatPNG, FormatJPG, FormatPDF, FormatJSON}

// DefaultFileFormat is used for output files without an extension.
const DefaultFileFormat = FormatPNG

var formatAliases = map[string]Format{
	"gv":   FormatDOT,
	"jpeg": FormatJPG,
}

// IsImage reports whether the format is produced by Graphviz rendering.
func (f Format) IsImage() bool {
	switch f {
	case FormatSVG, FormatPNG, FormatJPG, FormatPDF:
		return true
	}
	return false
}

// Binary reports whether the format must not be written to a terminal.
func (f Format) Binary() bool {
	return f == FormatPNG || f == FormatJPG || f == FormatPDF
}

// ParseFormat parses a format name, accepting "gv" and "jpeg" as aliases.
// Unknown names return an INVALID_FORMAT error.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", name).
		WithHint("supported formats: %s", formatList())
}

// DetectFormat resolves the output format. An explicit format wins. Otherwise
// the output file extension decides, with png for files without one. Empty
// output or "-" means standard output, which defaults to dot.
func DetectFormat(output, explicit string) (Format, error) {
	if explicit != "" {
		return ParseFormat(explicit)
	}
	if output == "" || output == "-" {
		return FormatDOT, nil
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if ext == "" {
		return DefaultFileFormat, nil
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer format from extension %q of %s", ext, output).
			WithHint("pass --format (%s)", formatList())
	}
	return f, nil
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
