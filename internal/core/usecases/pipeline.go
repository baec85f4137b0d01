// internal/core/usecases/pipeline.go
package usecases

import (
	"iter"

	"ispdb/internal/core/domain"
	"ispdb/internal/core/ports"
	"ispdb/internal/platform/httpclient"
	"ispdb/internal/platform/logx"
)

// ThunderbirdISPDB es la base de datos pública de configuraciones.
const ThunderbirdISPDB = "https://autoconfig.thunderbird.net/v1.1/"

// AutoconfigURLs retorna las URLs candidatas para domain, en orden fijo.
// email se inserta tal cual en los query strings.
func AutoconfigURLs(email, mailDomain string) []string {
	return []string{
		"https://autoconfig." + mailDomain,
		"https://autoconfig." + mailDomain + "/mail/config-v1.1.xml?emailaddress=" + email,
		"https://" + mailDomain + "/.well-known/autoconfig/mail/config-v1.1.xml",
		"http://autoconfig." + mailDomain + "/mail/config-v1.1.xml?emailaddress=" + email,
		"http://" + mailDomain + "/.well-known/autoconfig/mail/config-v1.1.xml",
		ThunderbirdISPDB + mailDomain,
	}
}

// Pipeline genera los candidatos de lookup para una dirección de correo.
type Pipeline struct {
	client   *httpclient.Client
	resolver ports.MXResolver
	logger   logx.Logger
}

// PipelineOptions configura el pipeline.
type PipelineOptions struct {
	Client   *httpclient.Client
	Resolver ports.MXResolver
	Logger   logx.Logger
}

// NewPipeline crea un pipeline. Client y Resolver son obligatorios.
func NewPipeline(opts PipelineOptions) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}

	return &Pipeline{
		client:   opts.Client,
		resolver: opts.Resolver,
		logger:   opts.Logger.With("component", "pipeline"),
	}
}

// Generate produce los candidatos para email usando su propio dominio.
func (p *Pipeline) Generate(email string, protocols []domain.Protocol) iter.Seq2[ports.Lookup, error] {
	return p.GenerateFor(email, domain.EmailDomain(email), protocols)
}

// GenerateFor produce, de forma perezosa, las URLs candidatas contra mailDomain
// seguidas del candidato DNS, emitiendo solo los que tienen protocolo permitido.
// Recorrer la secuencia no hace I/O. Un candidato mal formado se emite como
// error y termina la secuencia.
func (p *Pipeline) GenerateFor(email, mailDomain string, protocols []domain.Protocol) iter.Seq2[ports.Lookup, error] {
	if mailDomain == "" {
		mailDomain = domain.EmailDomain(email)
	}

	return func(yield func(ports.Lookup, error) bool) {
		for _, rawURL := range AutoconfigURLs(email, mailDomain) {
			lookup, err := NewURLLookup(rawURL, p.client, p.logger)
			if err != nil {
				yield(nil, err)
				return
			}
			if !domain.ContainsProtocol(protocols, lookup.Protocol()) {
				continue
			}
			if !yield(lookup, nil) {
				return
			}
		}

		if !domain.ContainsProtocol(protocols, domain.ProtocolDNS) {
			return
		}
		yield(&DNSLookup{
			email:    email,
			domain:   mailDomain,
			pipeline: p,
			resolver: p.resolver,
			logger:   p.logger,
		}, nil)
	}
}
