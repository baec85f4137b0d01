// internal/platform/validator/validator.go
package validator

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"

	"ispdb/internal/platform/errors"
)

// MaxEmailLength is the RFC 3696 errata limit for a whole address.
const MaxEmailLength = 320

var (
	// dot-atom or quoted-string local part
	localPartRegex = regexp.MustCompile(`(?i)^(?:` +
		`[-!#$%&'*+/=?^_` + "`" + `{}|~0-9A-Z]+(?:\.[-!#$%&'*+/=?^_` + "`" + `{}|~0-9A-Z]+)*` +
		`|"(?:[\x01-\x08\x0b\x0c\x0e-\x1f!#-\[\]-\x7f]|\\[\x01-\x09\x0b\x0c\x0e-\x7f])*"` +
		`)$`)

	// labels up to 63 chars, at least one dot, TLD of 2-63 chars
	domainRegex = regexp.MustCompile(`(?i)^(?:[A-Z0-9](?:[A-Z0-9-]{0,61}[A-Z0-9])?\.)+([A-Z0-9-]{2,63})$`)
)

// ValidateEmail checks the address syntax. The domain may be an IDN; it is
// validated in its ASCII form and must not itself be a public suffix.
func ValidateEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") || len(email) > MaxEmailLength {
		return errors.Wrapf(errors.ErrInvalidEmail, "%q", email)
	}

	at := strings.LastIndex(email, "@")
	local, domain := email[:at], email[at+1:]

	if !localPartRegex.MatchString(local) {
		return errors.Wrapf(errors.ErrInvalidEmail, "%q: bad local part", email)
	}
	if !IsDomain(domain) {
		return errors.Wrapf(errors.ErrInvalidEmail, "%q: bad domain", email)
	}
	return nil
}

// IsDomain verifica si un string es un dominio de correo válido.
// Soporta dominios internacionales (IDN) vía punycode.
func IsDomain(domain string) bool {
	ascii, err := idna.Lookup.ToASCII(domain)
	if err != nil || ascii == "" {
		return false
	}

	m := domainRegex.FindStringSubmatch(ascii)
	if m == nil || strings.HasSuffix(m[1], "-") {
		return false
	}

	suffix, _ := publicsuffix.PublicSuffix(strings.ToLower(ascii))
	return suffix != strings.ToLower(ascii)
}

// NormalizeDomain normaliza un dominio a su forma canónica.
func NormalizeDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	return strings.TrimSuffix(domain, ".")
}
