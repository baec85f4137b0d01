// internal/platform/config/config_test.go
package config

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"ispdb/internal/core/domain"
	"ispdb/internal/platform/errors"
	"ispdb/internal/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]string{"email@testable.com"}, io.Discard)
	testutil.AssertNoError(t, err, "load")

	testutil.AssertEqual(t, cfg.Email, "email@testable.com", "email")
	testutil.AssertFalse(t, cfg.Silent, "silent")
	testutil.AssertFalse(t, cfg.Debug, "debug")
	testutil.AssertFalse(t, cfg.Exclusions.NoHTTPS, "no-https")
	testutil.AssertFalse(t, cfg.Exclusions.NoHTTP, "no-http")
	testutil.AssertFalse(t, cfg.Exclusions.NoDNS, "no-dns")
	testutil.AssertEqual(t, cfg.Timeout, time.Second, "timeout")
	testutil.AssertEqual(t, cfg.Format, "raw", "format")
	testutil.AssertEqual(t, len(cfg.Protocols()), 3, "all protocols allowed")
}

func TestLoad_Exclusions(t *testing.T) {
	for _, p := range domain.AllProtocols() {
		t.Run(string(p), func(t *testing.T) {
			cfg, err := Load([]string{"--no-" + string(p), "test@testable.com"}, io.Discard)
			testutil.AssertNoError(t, err, "load")

			want := domain.WithoutProtocol(domain.AllProtocols(), p)
			got := cfg.Protocols()
			if len(got) != len(want) {
				t.Fatalf("got %v, want %v", got, want)
			}
			for i := range want {
				testutil.AssertEqual(t, got[i], want[i], "protocol order")
			}
		})
	}
}

func TestLoad_Options(t *testing.T) {
	cfg, err := Load([]string{
		"-d", "-T", "250ms", "--resolver", "1.1.1.1", "--resolver", "9.9.9.9:53",
		"--proxy", "http://proxy:3128", "-f", "JSON", "-p", "fred@example.com",
	}, io.Discard)
	testutil.AssertNoError(t, err, "load")

	testutil.AssertTrue(t, cfg.Debug, "debug")
	testutil.AssertEqual(t, cfg.Timeout, 250*time.Millisecond, "timeout")
	testutil.AssertStrings(t, cfg.Resolvers, []string{"1.1.1.1", "9.9.9.9:53"}, "resolvers")
	testutil.AssertEqual(t, cfg.ProxyURL, "http://proxy:3128", "proxy")
	testutil.AssertEqual(t, cfg.Format, "json", "format lowercased")
	testutil.AssertTrue(t, cfg.Progress, "progress")
}

func TestLoad_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no args", []string{}},
		{"incompatible flags", []string{"-s", "-d", "email@testable.com"}},
		{"not an email", []string{"email_testable.com"}},
		{"empty local part", []string{"@testable.com"}},
		{"empty domain", []string{"email@"}},
		{"two positionals", []string{"a@testable.com", "b@testable.com"}},
		{"unknown flag", []string{"--nope", "email@testable.com"}},
		{"zero timeout", []string{"-T", "0s", "email@testable.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, io.Discard)
			testutil.AssertTrue(t, errors.Is(err, errors.ErrInvalidInput), "should be a usage error")
		})
	}
}

func TestLoad_VersionSkipsPositional(t *testing.T) {
	cfg, err := Load([]string{"--version"}, io.Discard)
	testutil.AssertNoError(t, err, "version needs no email")
	testutil.AssertTrue(t, cfg.ShowVersion, "show version")
}

func TestLoad_Help(t *testing.T) {
	var buf bytes.Buffer
	_, err := Load([]string{"-h"}, &buf)
	testutil.AssertTrue(t, errors.Is(err, ErrHelp), "should return ErrHelp")
	testutil.AssertContains(t, buf.String(), "LOOKUP ORDER", "help text")
	testutil.AssertContains(t, buf.String(), "--no-dns", "flag defaults")
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf, "1.2.3", "abc", "today")
	testutil.AssertTrue(t, strings.HasPrefix(buf.String(), "ispdb version 1.2.3\n"), "version line")
}
