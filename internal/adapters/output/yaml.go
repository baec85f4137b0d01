// internal/adapters/output/yaml.go
package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"ispdb/internal/core/domain"
)

// YAMLWriter acumula los resultados y los emite como una lista YAML en Flush.
type YAMLWriter struct {
	w       io.Writer
	results []domain.Result
}

// NewYAMLWriter crea un YAMLWriter.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{w: w, results: []domain.Result{}}
}

// Write implementa ports.ResultWriter.
func (y *YAMLWriter) Write(result domain.Result) error {
	y.results = append(y.results, result)
	return nil
}

// Flush escribe la lista YAML.
func (y *YAMLWriter) Flush() error {
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	if err := enc.Encode(y.results); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
