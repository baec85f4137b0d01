// internal/platform/ui/presenter.go
package ui

import "time"

// Presenter muestra el progreso de una ejecución del pipeline.
// Nunca escribe en el stream de resultados.
type Presenter interface {
	// Start muestra la dirección consultada y los protocolos permitidos
	Start(info RunInfo)

	// LookupDone notifica el resultado de un candidato de nivel superior
	LookupDone(info LookupInfo)

	// Finish muestra el resumen final
	Finish(stats RunStats)
}

// RunInfo contiene información inicial de la ejecución
type RunInfo struct {
	Email     string
	Protocols []string
}

// LookupInfo describe un candidato ya consultado
type LookupInfo struct {
	Protocol string
	Target   string
	Found    bool
	Duration time.Duration
}

// RunStats contiene estadísticas finales
type RunStats struct {
	Queried  int
	Found    int
	Duration time.Duration
}
