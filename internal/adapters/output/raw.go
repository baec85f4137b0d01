// internal/adapters/output/raw.go
package output

import (
	"fmt"
	"io"

	"ispdb/internal/core/domain"
)

// RawWriter imprime cada documento tal cual, seguido de un salto de línea,
// en cuanto se encuentra.
type RawWriter struct {
	w io.Writer
}

// NewRawWriter crea un RawWriter.
func NewRawWriter(w io.Writer) *RawWriter {
	return &RawWriter{w: w}
}

// Write implementa ports.ResultWriter.
func (r *RawWriter) Write(result domain.Result) error {
	_, err := fmt.Fprintln(r.w, result.Document)
	return err
}

// Flush no hace nada: la salida no se acumula.
func (r *RawWriter) Flush() error {
	return nil
}
