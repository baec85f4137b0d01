// internal/core/usecases/mocks_test.go
package usecases

import (
	"context"
	"sync"

	"ispdb/internal/core/domain"
	"ispdb/internal/platform/errors"
	"ispdb/internal/platform/httpclient"
	"ispdb/internal/platform/logx"
	"ispdb/internal/testutil"
)

// mockResolver responde MX desde un mapa y cuenta las consultas.
type mockResolver struct {
	mu      sync.Mutex
	records map[string][]string
	calls   []string
}

func newMockResolver(records map[string][]string) *mockResolver {
	return &mockResolver{records: records}
}

func (m *mockResolver) LookupMX(ctx context.Context, name string) ([]domain.MXRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)

	hosts, ok := m.records[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrNoRecords, "MX %s: NXDOMAIN", name)
	}
	out := make([]domain.MXRecord, 0, len(hosts))
	for i, h := range hosts {
		out = append(out, domain.MXRecord{Host: h, Pref: uint16(10 * (i + 1))})
	}
	return out, nil
}

func (m *mockResolver) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.calls...)
}

// mockWriter registra los resultados recibidos.
type mockWriter struct {
	results  []domain.Result
	flushed  int
	writeErr error
}

func (m *mockWriter) Write(result domain.Result) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.results = append(m.results, result)
	return nil
}

func (m *mockWriter) Flush() error {
	m.flushed++
	return nil
}

// newTestPipeline arma un pipeline sobre un transport falso.
func newTestPipeline(transport *testutil.FakeTransport, resolver *mockResolver, logger logx.Logger) *Pipeline {
	if logger == nil {
		logger = logx.Nop()
	}
	client, err := httpclient.New(httpclient.Config{Transport: transport}, logger)
	if err != nil {
		panic(err)
	}
	if resolver == nil {
		resolver = newMockResolver(nil)
	}
	return NewPipeline(PipelineOptions{Client: client, Resolver: resolver, Logger: logger})
}

// urlCount cuenta cuántas veces se pidió url.
func urlCount(calls []string, url string) int {
	n := 0
	for _, c := range calls {
		if c == url {
			n++
		}
	}
	return n
}
