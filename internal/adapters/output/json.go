// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"ispdb/internal/core/domain"
)

// JSONWriter acumula los resultados y los emite como un array en Flush.
type JSONWriter struct {
	w       io.Writer
	results []domain.Result
}

// NewJSONWriter crea un JSONWriter.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, results: []domain.Result{}}
}

// Write implementa ports.ResultWriter.
func (j *JSONWriter) Write(result domain.Result) error {
	j.results = append(j.results, result)
	return nil
}

// Flush escribe el array JSON indentado.
func (j *JSONWriter) Flush() error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(j.results); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
