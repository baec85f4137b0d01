// internal/testutil/dnsserver.go
package testutil

import (
	"net"
	"strings"
	"sync"
	"testing"

	"github.com/miekg/dns"
)

// DNSServer es un servidor DNS en memoria que solo responde preguntas MX.
type DNSServer struct {
	Addr string

	mu      sync.Mutex
	zones   map[string][]*dns.MX
	queries []string
}

// StartDNSServer levanta un servidor UDP en 127.0.0.1 y lo detiene al final del test.
// zones mapea dominio -> exchanges, en el orden en que deben aparecer en la respuesta.
// Un dominio presente con lista vacía responde NOERROR sin registros; uno ausente, NXDOMAIN.
func StartDNSServer(t *testing.T, zones map[string][]string) *DNSServer {
	t.Helper()

	s := &DNSServer{zones: make(map[string][]*dns.MX)}
	for name, hosts := range zones {
		fqdn := dns.CanonicalName(name)
		records := make([]*dns.MX, 0, len(hosts))
		for i, host := range hosts {
			records = append(records, &dns.MX{
				Hdr: dns.RR_Header{
					Name:   fqdn,
					Rrtype: dns.TypeMX,
					Class:  dns.ClassINET,
					Ttl:    60,
				},
				Preference: uint16(10 * (i + 1)),
				Mx:         dns.Fqdn(host),
			})
		}
		s.zones[fqdn] = records
	}

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen udp: %v", err)
	}
	s.Addr = pc.LocalAddr().String()

	started := make(chan struct{})
	server := &dns.Server{
		PacketConn:        pc,
		Handler:           dns.HandlerFunc(s.serve),
		NotifyStartedFunc: func() { close(started) },
	}
	go func() {
		_ = server.ActivateAndServe()
	}()
	<-started

	t.Cleanup(func() {
		_ = server.Shutdown()
	})
	return s
}

// Queries retorna los nombres consultados, en orden.
func (s *DNSServer) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.queries...)
}

func (s *DNSServer) serve(w dns.ResponseWriter, r *dns.Msg) {
	m := new(dns.Msg)
	m.SetReply(r)

	if len(r.Question) == 1 {
		q := r.Question[0]
		name := dns.CanonicalName(q.Name)

		s.mu.Lock()
		s.queries = append(s.queries, strings.TrimSuffix(name, "."))
		records, ok := s.zones[name]
		s.mu.Unlock()

		switch {
		case !ok:
			m.SetRcode(r, dns.RcodeNameError)
		case q.Qtype == dns.TypeMX:
			for _, rr := range records {
				m.Answer = append(m.Answer, rr)
			}
		}
	}

	_ = w.WriteMsg(m)
}
