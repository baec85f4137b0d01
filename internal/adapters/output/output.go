// internal/adapters/output/output.go
package output

import (
	"fmt"
	"io"
	"strings"

	"ispdb/internal/core/ports"
)

// Format identifica un formato de salida.
type Format string

const (
	FormatRaw  Format = "raw"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lista los formatos soportados.
func Formats() []Format {
	return []Format{FormatRaw, FormatJSON, FormatYAML}
}

// ParseFormat valida el nombre de un formato (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want raw, json or yaml)", s)
}

// New crea el ResultWriter para format sobre w.
func New(format Format, w io.Writer) (ports.ResultWriter, error) {
	switch format {
	case FormatRaw, "":
		return NewRawWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatYAML:
		return NewYAMLWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
