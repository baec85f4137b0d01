// internal/testutil/transport.go
package testutil

import (
	"io"
	"net/http"
	"strings"
	"sync"
)

// Route describe la respuesta simulada para una URL.
type Route struct {
	Status int
	Body   string
	Err    error
}

// FakeTransport es un http.RoundTripper que responde según la URL exacta
// de la petición y registra cada llamada en orden.
type FakeTransport struct {
	mu       sync.Mutex
	routes   map[string]Route
	fallback Route
	calls    []string
}

// NewFakeTransport crea un transport cuyo fallback es 404 vacío.
func NewFakeTransport() *FakeTransport {
	return &FakeTransport{
		routes:   make(map[string]Route),
		fallback: Route{Status: http.StatusNotFound},
	}
}

// Handle registra la respuesta para url.
func (f *FakeTransport) Handle(url string, route Route) *FakeTransport {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[url] = route
	return f
}

// HandleAny reemplaza el fallback usado para URLs no registradas.
func (f *FakeTransport) HandleAny(route Route) *FakeTransport {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fallback = route
	return f
}

// Calls retorna las URLs solicitadas en orden.
func (f *FakeTransport) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.calls...)
}

// RoundTrip implementa http.RoundTripper.
func (f *FakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	url := req.URL.String()

	f.mu.Lock()
	f.calls = append(f.calls, url)
	route, ok := f.routes[url]
	if !ok {
		route = f.fallback
	}
	f.mu.Unlock()

	if route.Err != nil {
		return nil, route.Err
	}

	status := route.Status
	if status == 0 {
		status = http.StatusOK
	}

	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(route.Body)),
		Request:    req,
	}, nil
}
