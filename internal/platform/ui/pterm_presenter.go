// internal/platform/ui/pterm_presenter.go
package ui

import (
	"io"
	"strings"
	"sync"

	"github.com/pterm/pterm"
)

// PTermPresenter implementa Presenter usando pterm, una línea por candidato.
type PTermPresenter struct {
	mu sync.Mutex

	info    *pterm.PrefixPrinter
	found   *pterm.PrefixPrinter
	missing *pterm.PrefixPrinter
}

// NewPTermPresenter crea un presenter que escribe en w (normalmente stderr)
func NewPTermPresenter(w io.Writer) *PTermPresenter {
	missing := pterm.PrefixPrinter{
		Prefix: pterm.Prefix{
			Text:  " MISS  ",
			Style: pterm.NewStyle(pterm.BgGray, pterm.FgBlack),
		},
		MessageStyle: StatusMissing.Style(),
	}
	found := pterm.Success
	found.MessageStyle = StatusFound.Style()

	return &PTermPresenter{
		info:    pterm.Info.WithWriter(w),
		found:   found.WithWriter(w),
		missing: missing.WithWriter(w),
	}
}

// Start muestra la dirección y los protocolos activos
func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	protocols := strings.Join(info.Protocols, ", ")
	if protocols == "" {
		protocols = "none"
	}
	p.info.Printfln("Looking up %s (protocols: %s)", info.Email, protocols)
}

// LookupDone muestra el resultado de un candidato
func (p *PTermPresenter) LookupDone(info LookupInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	status := StatusOf(info.Found)
	printer := p.missing
	if info.Found {
		printer = p.found
	}
	printer.Printfln("%s [%s] %s (%dms)", status.Symbol(), info.Protocol, info.Target, info.Duration.Milliseconds())
}

// Finish muestra el resumen final
func (p *PTermPresenter) Finish(stats RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info.Printfln("%d of %d lookups returned a configuration in %s",
		stats.Found, stats.Queried, stats.Duration.Round(1e6))
}
