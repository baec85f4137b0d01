// internal/core/usecases/mail_domains.go
package usecases

import (
	"iter"
	"strings"

	"github.com/miekg/dns"

	"ispdb/internal/core/domain"
	"ispdb/internal/platform/validator"
)

// MailDomains recorre, para cada exchange en el orden de los registros,
// la cadena de dominios padre empezando por el padre del exchange.
//
// La cadena de un exchange se corta al llegar a un dominio ya visitado
// (se pasa al siguiente exchange) o a un dominio de una sola etiqueta o a
// la raíz, que nunca se emiten. El conjunto de visitados vive solo durante
// una iteración de la secuencia.
func MailDomains(records []domain.MXRecord) iter.Seq[string] {
	return func(yield func(string) bool) {
		visited := make(map[string]struct{})

		for _, record := range records {
			name := dns.CanonicalName(record.Host)
			for {
				parent, ok := parentDomain(name)
				if !ok {
					break
				}
				if _, seen := visited[parent]; seen {
					break
				}
				visited[parent] = struct{}{}

				host := validator.NormalizeDomain(parent)
				if !strings.Contains(host, ".") {
					break
				}
				if !yield(host) {
					return
				}
				name = parent
			}
		}
	}
}

// parentDomain quita la primera etiqueta de un nombre absoluto.
// La raíz no tiene padre.
func parentDomain(name string) (string, bool) {
	if name == "" || name == "." {
		return "", false
	}
	offset, end := dns.NextLabel(name, 0)
	if end {
		return ".", true
	}
	return name[offset:], true
}
