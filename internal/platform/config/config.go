// internal/platform/config/config.go
package config

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"ispdb/internal/core/domain"
	"ispdb/internal/platform/errors"
	"ispdb/internal/platform/validator"
)

// ErrHelp is returned when -h/--help was requested.
var ErrHelp = pflag.ErrHelp

type Config struct {
	// Positional
	Email string

	// Verbosity (mutually exclusive)
	Debug  bool
	Silent bool

	// Protocol exclusions
	Exclusions domain.Exclusions

	// Lookup tuning
	Timeout   time.Duration // per HTTP request
	Resolvers []string      // host[:port]; empty = /etc/resolv.conf
	ProxyURL  string

	// Output
	Format   string
	Progress bool

	ShowVersion bool
}

// DefaultConfig retorna una configuración por defecto.
func DefaultConfig() Config {
	return Config{
		Timeout: 1 * time.Second,
		Format:  "raw",
	}
}

// Protocols returns the allowed protocols in fixed priority order.
func (c Config) Protocols() []domain.Protocol {
	return domain.FilterProtocols(c.Exclusions)
}

// Load parses args (without the program name). Usage problems are
// returned wrapped in errors.ErrInvalidInput; -h yields ErrHelp.
func Load(args []string, stderr io.Writer) (Config, error) {
	cfg := DefaultConfig()

	fs := newFlagSet(&cfg, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cfg, ErrHelp
		}
		return cfg, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	if cfg.ShowVersion {
		return cfg, nil
	}

	if err := finalize(&cfg, fs.Args()); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newFlagSet(cfg *Config, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("ispdb", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	fs.BoolVarP(&cfg.ShowVersion, "version", "v", false, "Show the version and exit")
	fs.BoolVarP(&cfg.Debug, "debug", "d", cfg.Debug, "Debug logging of every lookup")
	fs.BoolVarP(&cfg.Silent, "silent", "s", cfg.Silent, "Do not print configurations, only the exit code matters")

	fs.BoolVar(&cfg.Exclusions.NoHTTPS, "no-https", false, "Skip https:// lookups")
	fs.BoolVar(&cfg.Exclusions.NoHTTP, "no-http", false, "Skip http:// lookups")
	fs.BoolVar(&cfg.Exclusions.NoDNS, "no-dns", false, "Skip MX based discovery")

	fs.DurationVarP(&cfg.Timeout, "timeout", "T", cfg.Timeout, "Per-request HTTP timeout")
	fs.StringSliceVar(&cfg.Resolvers, "resolver", nil, "DNS server host[:port] (repeatable, default from /etc/resolv.conf)")
	fs.StringVar(&cfg.ProxyURL, "proxy", "", "HTTP(S) proxy URL for outbound requests")

	fs.StringVarP(&cfg.Format, "format", "f", cfg.Format, "Output format: raw, json or yaml")
	fs.BoolVarP(&cfg.Progress, "progress", "p", false, "Show per-lookup progress on stderr")

	fs.Usage = func() {
		PrintHelp(stderr)
		fmt.Fprintln(stderr, "FLAGS:")
		fs.PrintDefaults()
	}
	return fs
}

func finalize(cfg *Config, positional []string) error {
	if cfg.Debug && cfg.Silent {
		return errors.Wrap(errors.ErrInvalidInput, "--debug and --silent are mutually exclusive")
	}

	switch len(positional) {
	case 0:
		return errors.Wrap(errors.ErrInvalidInput, "the email argument is required")
	case 1:
	default:
		return errors.Wrapf(errors.ErrInvalidInput, "unexpected arguments: %s", strings.Join(positional[1:], " "))
	}

	cfg.Email = strings.TrimSpace(positional[0])
	if err := validator.ValidateEmail(cfg.Email); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	if cfg.Timeout <= 0 {
		return errors.Wrapf(errors.ErrInvalidInput, "timeout must be positive, got %s", cfg.Timeout)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	return nil
}
