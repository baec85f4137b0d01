// internal/testutil/fixtures.go
package testutil

// FixtureEmail es la dirección usada por los tests end-to-end.
const FixtureEmail = "test@testable.com"

// FixtureDocument es el documento mínimo reconocido como configuración válida.
const FixtureDocument = "<clientConfig />"

// FixtureValidEmails contiene direcciones que el validador debe aceptar.
var FixtureValidEmails = []string{
	"email@testable.com",
	"fred@example.com",
	"first.last@sub.example.co.uk",
	"user+tag@example.org",
	`"quoted.local"@example.com`,
}

// FixtureInvalidEmails contiene direcciones que el validador debe rechazar.
var FixtureInvalidEmails = []string{
	"",
	"email_testable.com",
	"@testable.com",
	"email@",
	"email@localhost",
	"a..b@example.com",
	"email@-bad.com",
	"email@example.c",
}
