// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
	"runtime"
)

const helpText = `
ispdb - query the ISPDB and autoconfig endpoints for an email address

USAGE:
  ispdb [options] <email>

LOOKUP ORDER:
  1 GET https://autoconfig.<domain>
  2 GET https://autoconfig.<domain>/mail/config-v1.1.xml?emailaddress=<email>
  3 GET https://<domain>/.well-known/autoconfig/mail/config-v1.1.xml
  4 GET http://autoconfig.<domain>/mail/config-v1.1.xml?emailaddress=<email>
  5 GET http://<domain>/.well-known/autoconfig/mail/config-v1.1.xml
  6 GET https://autoconfig.thunderbird.net/v1.1/<domain>
  7 DNS MX <domain>, then steps 1-6 for each parent domain of the exchanges

  Every configuration found by steps 1-7 is printed. Exit status is 0
  even when nothing is found.

EXAMPLES:
  ispdb fred@example.com
  ispdb --no-http --format json fred@example.com
  ispdb -d --resolver 1.1.1.1 fred@example.com

`

// PrintHelp prints the help header.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer, version, commit, date string) {
	fmt.Fprintf(w, "ispdb version %s\n", version)
	fmt.Fprintf(w, "  Commit:  %s\n", commit)
	fmt.Fprintf(w, "  Built:   %s\n", date)
	fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
}
