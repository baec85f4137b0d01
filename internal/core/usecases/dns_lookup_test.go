// internal/core/usecases/dns_lookup_test.go
package usecases

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"testing"

	"ispdb/internal/core/domain"
	"ispdb/internal/core/ports"
	"ispdb/internal/testutil"
)

func dnsLookupFor(t *testing.T, p *Pipeline, email string) *DNSLookup {
	t.Helper()
	for lookup, err := range p.Generate(email, []domain.Protocol{domain.ProtocolDNS}) {
		testutil.AssertNoError(t, err, "generate")
		d, ok := lookup.(*DNSLookup)
		if !ok {
			t.Fatalf("expected *DNSLookup, got %T", lookup)
		}
		return d
	}
	t.Fatal("no DNS lookup generated")
	return nil
}

func TestMailDomains(t *testing.T) {
	tests := []struct {
		name  string
		hosts []string
		want  []string
	}{
		{"single exchange", []string{"mail.example.com."}, []string{"example.com"}},
		{"no trailing dot", []string{"mail.example.com"}, []string{"example.com"}},
		{"case folded", []string{"MAIL.Example.COM."}, []string{"example.com"}},
		{"deep exchange", []string{"a.b.c.example.org."}, []string{"b.c.example.org", "c.example.org", "example.org"}},
		{"exchange is registrable domain", []string{"example.com."}, []string{}},
		{"exchange is tld", []string{"com."}, []string{}},
		{"null mx", []string{"."}, []string{}},
		{"shared ancestor", []string{"mx1.a.example.com.", "mx2.b.example.com."}, []string{"a.example.com", "example.com", "b.example.com"}},
		{"duplicate exchange", []string{"mx.example.com.", "mx.example.com."}, []string{"example.com"}},
		{"distinct tlds", []string{"mx.example.com.", "mx.example.net."}, []string{"example.com", "example.net"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]domain.MXRecord, 0, len(tt.hosts))
			for _, h := range tt.hosts {
				records = append(records, domain.MXRecord{Host: h})
			}
			got := slices.Collect(MailDomains(records))
			if got == nil {
				got = []string{}
			}
			testutil.AssertStrings(t, got, tt.want, "probe domains")
		})
	}
}

func TestMailDomains_FreshVisitedSetPerIteration(t *testing.T) {
	seq := MailDomains([]domain.MXRecord{{Host: "mail.example.com."}})
	testutil.AssertStrings(t, slices.Collect(seq), []string{"example.com"}, "first pass")
	testutil.AssertStrings(t, slices.Collect(seq), []string{"example.com"}, "second pass")
}

func TestDNSLookup_NoRecords(t *testing.T) {
	transport := testutil.NewFakeTransport().HandleAny(testutil.Route{Status: http.StatusOK, Body: testutil.FixtureDocument})
	resolver := newMockResolver(map[string][]string{"testable.com": {}})
	lookup := dnsLookupFor(t, newTestPipeline(transport, resolver, nil), testutil.FixtureEmail)

	got, err := lookup.Query(context.Background())
	testutil.AssertNoError(t, err, "query")
	testutil.AssertEqual(t, got, "", "no document")
	testutil.AssertEqual(t, len(transport.Calls()), 0, "no URL probe without records")
	testutil.AssertStrings(t, resolver.Calls(), []string{"testable.com"}, "one MX query")
}

func TestDNSLookup_ResolutionFailure(t *testing.T) {
	transport := testutil.NewFakeTransport()
	resolver := newMockResolver(nil) // NXDOMAIN para todo
	lookup := dnsLookupFor(t, newTestPipeline(transport, resolver, nil), testutil.FixtureEmail)

	got, err := lookup.Query(context.Background())
	testutil.AssertNoError(t, err, "resolution failures are soft")
	testutil.AssertEqual(t, got, "", "no document")
	testutil.AssertEqual(t, len(transport.Calls()), 0, "no URL probe")
}

func TestDNSLookup_OneHostname(t *testing.T) {
	transport := testutil.NewFakeTransport().HandleAny(testutil.Route{Status: http.StatusOK, Body: testutil.FixtureDocument})
	resolver := newMockResolver(map[string][]string{"testable.com": {"mail.testable.com."}})
	lookup := dnsLookupFor(t, newTestPipeline(transport, resolver, nil), testutil.FixtureEmail)

	got, err := lookup.Query(context.Background())
	testutil.AssertNoError(t, err, "query")
	testutil.AssertEqual(t, got, testutil.FixtureDocument, "document from sub-pipeline")
	testutil.AssertStrings(t, transport.Calls(), []string{"https://autoconfig.testable.com"}, "stops at first success")
}

func TestDNSLookup_ProbesParentNotTLD(t *testing.T) {
	transport := testutil.NewFakeTransport().
		Handle("https://example.com/.well-known/autoconfig/mail/config-v1.1.xml", testutil.Route{Status: http.StatusOK, Body: testutil.FixtureDocument})
	resolver := newMockResolver(map[string][]string{"testable.com": {"mail.example.com."}})
	lookup := dnsLookupFor(t, newTestPipeline(transport, resolver, nil), testutil.FixtureEmail)

	got, err := lookup.Query(context.Background())
	testutil.AssertNoError(t, err, "query")
	testutil.AssertEqual(t, got, testutil.FixtureDocument, "document")

	testutil.AssertStrings(t, transport.Calls(), []string{
		"https://autoconfig.example.com",
		"https://autoconfig.example.com/mail/config-v1.1.xml?emailaddress=test@testable.com",
		"https://example.com/.well-known/autoconfig/mail/config-v1.1.xml",
	}, "sub-pipeline keeps the original email and stops at first success")

	for _, call := range transport.Calls() {
		testutil.AssertFalse(t, strings.Contains(call, "autoconfig.com"), "tld must never be probed")
	}
}

func TestDNSLookup_SharedAncestorProbedOnce(t *testing.T) {
	transport := testutil.NewFakeTransport()
	resolver := newMockResolver(map[string][]string{
		"testable.com": {"mx1.a.example.com.", "mx2.b.example.com."},
	})
	lookup := dnsLookupFor(t, newTestPipeline(transport, resolver, nil), testutil.FixtureEmail)

	got, err := lookup.Query(context.Background())
	testutil.AssertNoError(t, err, "query")
	testutil.AssertEqual(t, got, "", "no document anywhere")

	calls := transport.Calls()
	testutil.AssertEqual(t, len(calls), 3*6, "three probe domains, six URLs each")
	testutil.AssertEqual(t, urlCount(calls, "https://autoconfig.example.com"), 1, "shared ancestor probed once")
	testutil.AssertEqual(t, urlCount(calls, "https://autoconfig.a.example.com"), 1, "first branch")
	testutil.AssertEqual(t, urlCount(calls, "https://autoconfig.b.example.com"), 1, "second branch")
	testutil.AssertEqual(t, len(resolver.Calls()), 1, "sub-pipelines never resolve MX")
}

func TestDNSLookup_SkipsUnusableExchange(t *testing.T) {
	transport := testutil.NewFakeTransport().
		Handle("https://autoconfig.example.com", testutil.Route{Status: http.StatusOK, Body: testutil.FixtureDocument})
	resolver := newMockResolver(map[string][]string{
		"testable.com": {`mx.bad\ host.com.`, "mail.example.com."},
	})
	lookup := dnsLookupFor(t, newTestPipeline(transport, resolver, nil), testutil.FixtureEmail)

	got, err := lookup.Query(context.Background())
	testutil.AssertNoError(t, err, "a bad exchange name is not fatal")
	testutil.AssertEqual(t, got, testutil.FixtureDocument, "next exchange still probed")
	testutil.AssertStrings(t, transport.Calls(), []string{"https://autoconfig.example.com"}, "no request for the bad name")
}

func TestDNSLookup_SubPipelineIsURLOnly(t *testing.T) {
	// Las exclusiones de nivel superior no afectan a los sub-pipelines; solo se quita dns.
	transport := testutil.NewFakeTransport().
		Handle("http://example.com/.well-known/autoconfig/mail/config-v1.1.xml", testutil.Route{Status: http.StatusOK, Body: testutil.FixtureDocument})
	resolver := newMockResolver(map[string][]string{"testable.com": {"mail.example.com."}})
	p := newTestPipeline(transport, resolver, nil)

	var lookups []ports.Lookup
	for lookup, err := range p.Generate(testutil.FixtureEmail, []domain.Protocol{domain.ProtocolDNS}) {
		testutil.AssertNoError(t, err, "generate")
		lookups = append(lookups, lookup)
	}
	testutil.AssertEqual(t, len(lookups), 1, "only the DNS candidate at top level")

	got, err := lookups[0].Query(context.Background())
	testutil.AssertNoError(t, err, "query")
	testutil.AssertEqual(t, got, testutil.FixtureDocument, "http candidate reached through dns")
	testutil.AssertEqual(t, len(resolver.Calls()), 1, "single MX resolution")
}
