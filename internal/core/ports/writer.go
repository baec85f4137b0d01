// internal/core/ports/writer.go
package ports

import "ispdb/internal/core/domain"

// ResultWriter recibe los documentos encontrados por el driver.
type ResultWriter interface {
	// Write reporta un resultado en cuanto se encuentra
	Write(result domain.Result) error

	// Flush emite lo que el formato haya acumulado
	Flush() error
}
