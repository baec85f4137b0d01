// internal/core/ports/lookup.go
package ports

import (
	"context"

	"ispdb/internal/core/domain"
)

// Lookup es un candidato del pipeline: una fuente concreta de configuración.
// Construirlo no tiene efectos; toda la actividad de red ocurre en Query.
type Lookup interface {
	// Protocol retorna la clase de transporte del candidato
	Protocol() domain.Protocol

	// Target describe lo que se consulta (URL o dominio), para logs y resultados
	Target() string

	// Query ejecuta la consulta una sola vez. Un documento vacío significa
	// "sin configuración": los fallos esperados (red, status, marcador, DNS)
	// nunca se retornan como error. El error queda para fallos inesperados.
	Query(ctx context.Context) (string, error)
}

// MXResolver resuelve registros MX de un dominio.
type MXResolver interface {
	// LookupMX retorna los registros en el orden de la respuesta
	LookupMX(ctx context.Context, domain string) ([]domain.MXRecord, error)
}
