// internal/core/usecases/dns_lookup.go
package usecases

import (
	"context"

	"ispdb/internal/core/domain"
	"ispdb/internal/core/ports"
	"ispdb/internal/platform/errors"
	"ispdb/internal/platform/logx"
)

// DNSLookup descubre dominios de correo a partir de los registros MX del
// dominio y vuelve a ejecutar el pipeline (solo URLs) contra cada uno.
type DNSLookup struct {
	email  string
	domain string

	pipeline *Pipeline
	resolver ports.MXResolver
	logger   logx.Logger
}

// Protocol retorna siempre dns.
func (l *DNSLookup) Protocol() domain.Protocol { return domain.ProtocolDNS }

// Target retorna el dominio cuyos MX se resuelven.
func (l *DNSLookup) Target() string { return l.domain }

// subProtocols: los sub-pipelines nunca incluyen dns, así que solo hay una
// resolución MX por pipeline de nivel superior.
func (l *DNSLookup) subProtocols() []domain.Protocol {
	return domain.WithoutProtocol(domain.AllProtocols(), domain.ProtocolDNS)
}

// Query retorna el primer documento encontrado por cualquier sub-candidato,
// recorriendo hosts y candidatos en orden y cortando en el primer éxito.
func (l *DNSLookup) Query(ctx context.Context) (string, error) {
	records, err := l.resolver.LookupMX(ctx, l.domain)
	if err != nil && !errors.IsNoRecords(err) {
		l.logger.Debug("MX lookup failed", "protocol", domain.ProtocolDNS, "domain", l.domain, "outcome", err.Error())
		return "", nil
	}
	if len(records) == 0 {
		l.logger.Debug("MX lookup returned no records", "protocol", domain.ProtocolDNS, "domain", l.domain)
		return "", nil
	}

	protocols := l.subProtocols()
	for host := range MailDomains(records) {
		l.logger.Debug("verifying mail domain", "protocol", domain.ProtocolDNS, "domain", l.domain, "host", host)

		for lookup, err := range l.pipeline.GenerateFor(l.email, host, protocols) {
			if errors.Is(err, domain.ErrMalformedLookup) {
				// El nombre viene de la respuesta DNS; se salta el dominio.
				l.logger.Debug("skipping mail domain", "protocol", domain.ProtocolDNS, "domain", l.domain, "host", host, "outcome", err.Error())
				break
			}
			if err != nil {
				return "", err
			}
			doc, err := lookup.Query(ctx)
			if err != nil {
				return "", err
			}
			if doc != "" {
				return doc, nil
			}
		}
	}

	return "", nil
}
