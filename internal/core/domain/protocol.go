// internal/core/domain/protocol.go
package domain

import "fmt"

// Protocol identifica la clase de transporte de un lookup.
type Protocol string

const (
	// ProtocolHTTPS consulta URLs https://
	ProtocolHTTPS Protocol = "https"

	// ProtocolHTTP consulta URLs http://
	ProtocolHTTP Protocol = "http"

	// ProtocolDNS descubre dominios de correo a partir de registros MX
	ProtocolDNS Protocol = "dns"
)

// protocolOrder es el orden global de prioridad. Nunca se reordena;
// las exclusiones solo eliminan miembros.
var protocolOrder = [...]Protocol{ProtocolHTTPS, ProtocolHTTP, ProtocolDNS}

// AllProtocols retorna una copia del orden completo de protocolos.
func AllProtocols() []Protocol {
	out := make([]Protocol, len(protocolOrder))
	copy(out, protocolOrder[:])
	return out
}

// IsValid verifica si el protocolo pertenece a la enumeración.
func (p Protocol) IsValid() bool {
	switch p {
	case ProtocolHTTPS, ProtocolHTTP, ProtocolDNS:
		return true
	default:
		return false
	}
}

// String retorna la representación string del protocolo.
func (p Protocol) String() string {
	return string(p)
}

// ParseProtocol convierte un string (p.ej. el scheme de una URL) en Protocol.
func ParseProtocol(s string) (Protocol, error) {
	p := Protocol(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownProtocol, s)
	}
	return p, nil
}

// Exclusions agrupa los flags de exclusión de protocolos.
type Exclusions struct {
	NoHTTPS bool
	NoHTTP  bool
	NoDNS   bool
}

// excludes indica si p está excluido.
func (e Exclusions) excludes(p Protocol) bool {
	switch p {
	case ProtocolHTTPS:
		return e.NoHTTPS
	case ProtocolHTTP:
		return e.NoHTTP
	case ProtocolDNS:
		return e.NoDNS
	default:
		return true
	}
}

// FilterProtocols retorna los protocolos permitidos en orden fijo.
// Excluir los tres es válido y produce una lista vacía.
func FilterProtocols(ex Exclusions) []Protocol {
	out := make([]Protocol, 0, len(protocolOrder))
	for _, p := range protocolOrder {
		if !ex.excludes(p) {
			out = append(out, p)
		}
	}
	return out
}

// ContainsProtocol verifica si p está en la lista.
func ContainsProtocol(protocols []Protocol, p Protocol) bool {
	for _, candidate := range protocols {
		if candidate == p {
			return true
		}
	}
	return false
}

// WithoutProtocol retorna una copia de protocols sin p, preservando el orden.
func WithoutProtocol(protocols []Protocol, p Protocol) []Protocol {
	out := make([]Protocol, 0, len(protocols))
	for _, candidate := range protocols {
		if candidate != p {
			out = append(out, candidate)
		}
	}
	return out
}
