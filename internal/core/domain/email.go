// internal/core/domain/email.go
package domain

import "strings"

// SplitEmail separa una dirección en parte local y dominio usando la última '@'.
// La dirección ya viene validada; sin '@' todo se considera dominio vacío.
func SplitEmail(email string) (local, domainPart string) {
	i := strings.LastIndex(email, "@")
	if i < 0 {
		return email, ""
	}
	return email[:i], email[i+1:]
}

// EmailDomain retorna el dominio (todo lo que sigue a la última '@').
func EmailDomain(email string) string {
	_, d := SplitEmail(email)
	return d
}
