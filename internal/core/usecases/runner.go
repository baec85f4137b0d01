// internal/core/usecases/runner.go
package usecases

import (
	"context"
	"fmt"
	"time"

	"ispdb/internal/core/domain"
	"ispdb/internal/core/ports"
	"ispdb/internal/platform/logx"
	"ispdb/internal/platform/ui"
)

// Runner es el driver de nivel superior: consulta todos los candidatos en
// orden y reporta cada documento encontrado. No se detiene en el primer
// éxito (a diferencia de DNSLookup).
type Runner struct {
	pipeline  *Pipeline
	writer    ports.ResultWriter
	presenter ui.Presenter
	logger    logx.Logger
	silent    bool
}

// RunnerOptions configura el driver.
type RunnerOptions struct {
	Pipeline  *Pipeline
	Writer    ports.ResultWriter
	Presenter ui.Presenter
	Logger    logx.Logger

	// Silent suprime la escritura de resultados
	Silent bool
}

// NewRunner crea un driver.
func NewRunner(opts RunnerOptions) *Runner {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	if opts.Presenter == nil {
		opts.Presenter = ui.NewNoopPresenter()
	}

	return &Runner{
		pipeline:  opts.Pipeline,
		writer:    opts.Writer,
		presenter: opts.Presenter,
		logger:    opts.Logger.With("component", "runner"),
		silent:    opts.Silent,
	}
}

// Run consume la secuencia completa de candidatos para email.
// Solo retorna error ante fallos inesperados (candidato mal formado o
// fallo del writer); los lookups fallidos son parte normal de la ejecución.
func (r *Runner) Run(ctx context.Context, email string, protocols []domain.Protocol) (domain.Summary, error) {
	var summary domain.Summary
	start := time.Now()

	r.presenter.Start(ui.RunInfo{Email: email, Protocols: protocolNames(protocols)})
	r.logger.Debug("starting lookups", "email", email, "protocols", protocolNames(protocols))

	for lookup, err := range r.pipeline.Generate(email, protocols) {
		if err != nil {
			return summary, fmt.Errorf("build lookup: %w", err)
		}

		lookupStart := time.Now()
		doc, err := lookup.Query(ctx)
		if err != nil {
			return summary, fmt.Errorf("query %s %s: %w", lookup.Protocol(), lookup.Target(), err)
		}
		summary.Queried++

		found := doc != ""
		r.presenter.LookupDone(ui.LookupInfo{
			Protocol: lookup.Protocol().String(),
			Target:   lookup.Target(),
			Found:    found,
			Duration: time.Since(lookupStart),
		})
		if !found {
			continue
		}
		summary.Found++

		if r.silent || r.writer == nil {
			continue
		}
		if err := r.writer.Write(domain.Result{
			Protocol: lookup.Protocol(),
			Source:   lookup.Target(),
			Document: doc,
		}); err != nil {
			return summary, fmt.Errorf("write result: %w", err)
		}
	}

	if !r.silent && r.writer != nil {
		if err := r.writer.Flush(); err != nil {
			return summary, fmt.Errorf("flush results: %w", err)
		}
	}

	r.presenter.Finish(ui.RunStats{
		Queried:  summary.Queried,
		Found:    summary.Found,
		Duration: time.Since(start),
	})
	r.logger.Debug("lookups finished", "queried", summary.Queried, "found", summary.Found)

	return summary, nil
}

func protocolNames(protocols []domain.Protocol) []string {
	out := make([]string, 0, len(protocols))
	for _, p := range protocols {
		out = append(out, p.String())
	}
	return out
}
