// internal/platform/ui/noop_presenter.go
package ui

// NoopPresenter es una implementación vacía del Presenter
// que no produce ninguna salida. Útil para modo silent.
type NoopPresenter struct{}

// NewNoopPresenter crea una instancia del presenter sin salida
func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

// Start no hace nada
func (n *NoopPresenter) Start(info RunInfo) {}

// LookupDone no hace nada
func (n *NoopPresenter) LookupDone(info LookupInfo) {}

// Finish no hace nada
func (n *NoopPresenter) Finish(stats RunStats) {}
