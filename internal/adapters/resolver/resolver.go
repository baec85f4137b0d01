// Package resolver resolves MX records with github.com/miekg/dns.
package resolver

import (
	"context"
	"net"
	"time"

	"github.com/miekg/dns"

	"ispdb/internal/core/domain"
	"ispdb/internal/platform/errors"
	"ispdb/internal/platform/logx"
)

// DefaultResolvConf is read when no servers are configured.
const DefaultResolvConf = "/etc/resolv.conf"

// fallbackServer is used when resolv.conf is missing or empty.
const fallbackServer = "127.0.0.1:53"

// Config holds the resolver configuration.
type Config struct {
	// Servers are host:port pairs tried in order on transport errors.
	Servers []string

	// Timeout bounds each exchange.
	// Default: 2 seconds
	Timeout time.Duration
}

// Resolver sends MX questions to recursive servers.
type Resolver struct {
	udp     *dns.Client
	tcp     *dns.Client
	servers []string
	logger  logx.Logger
}

// New creates a resolver. Without explicit servers it loads DefaultResolvConf.
func New(cfg Config, logger logx.Logger) *Resolver {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	servers := make([]string, 0, len(cfg.Servers))
	for _, s := range cfg.Servers {
		servers = append(servers, withPort(s))
	}
	if len(servers) == 0 {
		servers = systemServers(DefaultResolvConf)
	}

	return &Resolver{
		udp:     &dns.Client{Net: "udp", Timeout: cfg.Timeout},
		tcp:     &dns.Client{Net: "tcp", Timeout: cfg.Timeout},
		servers: servers,
		logger:  logger.With("component", "resolver"),
	}
}

// Servers returns the configured server addresses.
func (r *Resolver) Servers() []string {
	return append([]string{}, r.servers...)
}

// LookupMX returns the MX records of name in answer order.
// NXDOMAIN and empty answers are reported as errors.ErrNoRecords.
func (r *Resolver) LookupMX(ctx context.Context, name string) ([]domain.MXRecord, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), dns.TypeMX)
	msg.RecursionDesired = true

	resp, err := r.exchange(ctx, msg)
	if err != nil {
		return nil, errors.Wrapf(err, "MX %s", name)
	}

	switch resp.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return nil, errors.Wrapf(errors.ErrNoRecords, "MX %s: NXDOMAIN", name)
	default:
		return nil, errors.Wrapf(errors.ErrInvalidResponse, "MX %s: %s", name, dns.RcodeToString[resp.Rcode])
	}

	records := make([]domain.MXRecord, 0, len(resp.Answer))
	for _, rr := range resp.Answer {
		if mx, ok := rr.(*dns.MX); ok {
			records = append(records, domain.MXRecord{Host: mx.Mx, Pref: mx.Preference})
		}
	}
	if len(records) == 0 {
		return nil, errors.Wrapf(errors.ErrNoRecords, "MX %s", name)
	}

	r.logger.Debug("MX records resolved", "domain", name, "count", len(records))
	return records, nil
}

// exchange asks each server in turn, moving on only after a transport
// error. A truncated UDP answer is repeated over TCP on the same server.
func (r *Resolver) exchange(ctx context.Context, msg *dns.Msg) (*dns.Msg, error) {
	var lastErr error = errors.ErrConnectionFailed

	for _, server := range r.servers {
		resp, _, err := r.udp.ExchangeContext(ctx, msg, server)
		if err == nil && resp.Truncated {
			resp, _, err = r.tcp.ExchangeContext(ctx, msg, server)
		}
		if err == nil {
			return resp, nil
		}

		r.logger.Debug("DNS exchange failed", "server", server, "error", err.Error())
		lastErr = classify(err)
		if ctx.Err() != nil {
			break
		}
	}

	return nil, lastErr
}

func classify(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.Wrap(errors.ErrTimeout, err.Error())
	}
	return errors.Wrap(errors.ErrConnectionFailed, err.Error())
}

func systemServers(path string) []string {
	conf, err := dns.ClientConfigFromFile(path)
	if err != nil || len(conf.Servers) == 0 {
		return []string{fallbackServer}
	}
	servers := make([]string, 0, len(conf.Servers))
	for _, s := range conf.Servers {
		servers = append(servers, net.JoinHostPort(s, conf.Port))
	}
	return servers
}

// withPort appends :53 to bare hosts and IPs.
func withPort(server string) string {
	if _, _, err := net.SplitHostPort(server); err == nil {
		return server
	}
	return net.JoinHostPort(server, "53")
}
