// internal/core/usecases/url_lookup.go
package usecases

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"ispdb/internal/core/domain"
	"ispdb/internal/platform/errors"
	"ispdb/internal/platform/httpclient"
	"ispdb/internal/platform/logx"
)

// ClientConfigMarker identifica un documento de configuración de cliente.
// El espacio final evita coincidir con nombres de tag parciales.
const ClientConfigMarker = "<clientConfig "

// URLLookup consulta una única URL de autoconfig.
type URLLookup struct {
	url      string
	protocol domain.Protocol
	host     string

	client *httpclient.Client
	logger logx.Logger
}

// NewURLLookup construye el candidato; el protocolo sale del scheme de la URL.
func NewURLLookup(rawURL string, client *httpclient.Client, logger logx.Logger) (*URLLookup, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedLookup, err)
	}
	protocol, err := domain.ParseProtocol(strings.ToLower(u.Scheme))
	if err != nil || protocol == domain.ProtocolDNS {
		return nil, fmt.Errorf("%w: unsupported scheme in %q", domain.ErrMalformedLookup, rawURL)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("%w: missing host in %q", domain.ErrMalformedLookup, rawURL)
	}

	return &URLLookup{
		url:      rawURL,
		protocol: protocol,
		host:     u.Hostname(),
		client:   client,
		logger:   logger,
	}, nil
}

// Protocol retorna el scheme de la URL.
func (l *URLLookup) Protocol() domain.Protocol { return l.protocol }

// Target retorna la URL tal como fue construida.
func (l *URLLookup) Target() string { return l.url }

// Query hace un GET. Solo un 200 con cuerpo que contiene el marcador cuenta
// como documento; cualquier otro resultado se loguea y se descarta.
func (l *URLLookup) Query(ctx context.Context) (string, error) {
	body, err := l.fetch(ctx)
	if err != nil {
		kv := []any{
			"protocol", l.protocol,
			"host", l.host,
			"url", l.url,
			"outcome", outcomeOf(err),
		}
		// Lo esperado va a debug; lo demás se ve sin --debug.
		if errors.IsSoft(err) {
			l.logger.Debug("lookup failed", kv...)
		} else {
			l.logger.Warn("lookup failed", kv...)
		}
		return "", nil
	}

	l.logger.Debug("lookup succeeded",
		"protocol", l.protocol,
		"host", l.host,
		"url", l.url,
		"outcome", "ok",
	)
	return body, nil
}

func (l *URLLookup) fetch(ctx context.Context) (string, error) {
	resp, err := l.client.Get(ctx, l.url)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Wrapf(errors.ErrUnexpectedStatus, "status=%d", resp.StatusCode)
	}
	if resp.Body == "" || !strings.Contains(resp.Body, ClientConfigMarker) {
		return "", errors.Wrap(errors.ErrMissingMarker, "no-xml")
	}
	return resp.Body, nil
}

// outcomeOf resume un fallo para el log.
func outcomeOf(err error) string {
	switch {
	case errors.IsTimeout(err):
		return "error=timeout"
	case errors.Is(err, errors.ErrUnexpectedStatus), errors.Is(err, errors.ErrMissingMarker):
		return err.Error()
	default:
		return "error=" + err.Error()
	}
}
