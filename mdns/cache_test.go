package mdns

import (
	"testing"
	"time"

	"github.com/dnsscience/simpledns/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustName(t *testing.T, s string) dns.Name {
	t.Helper()
	n, err := dns.NewName(s)
	require.NoError(t, err)
	return n
}

func TestCachePutGet(t *testing.T) {
	c := NewCache(nil)
	now := time.Now()
	name := mustName(t, "host.local")
	rr := dns.ResourceRecord{Name: name, Class: dns.ClassIN, TTL: 120, RData: dns.NewDomainName(dns.TypeCNAME, name)}

	c.Put(rr, now)
	got, ok := c.Get("host.local.", dns.TypeCNAME, dns.ClassIN, now.Add(time.Second))
	require.True(t, ok)
	assert.Equal(t, rr.TTL, got.TTL)

	_, ok = c.Get("host.local.", dns.TypeCNAME, dns.ClassIN, now.Add(121*time.Second))
	assert.False(t, ok)
}

func TestCacheGetCaseInsensitive(t *testing.T) {
	c := NewCache(nil)
	now := time.Now()
	name := mustName(t, "Host.Local")
	rr := dns.ResourceRecord{Name: name, Class: dns.ClassIN, TTL: 60, RData: dns.NewDomainName(dns.TypeCNAME, name)}
	c.Put(rr, now)

	_, ok := c.Get("host.local.", dns.TypeCNAME, dns.ClassIN, now)
	assert.True(t, ok)
}

func TestCacheGoodbyeRecordExpiresFast(t *testing.T) {
	c := NewCache(nil)
	now := time.Now()
	name := mustName(t, "host.local")
	rr := dns.ResourceRecord{Name: name, Class: dns.ClassIN, TTL: 0, RData: dns.NewDomainName(dns.TypeCNAME, name)}
	c.Put(rr, now)

	_, ok := c.Get("host.local.", dns.TypeCNAME, dns.ClassIN, now.Add(2*time.Second))
	assert.False(t, ok)
}

func TestCacheSweep(t *testing.T) {
	c := NewCache(nil)
	now := time.Now()
	name := mustName(t, "host.local")
	rr := dns.ResourceRecord{Name: name, Class: dns.ClassIN, TTL: 1, RData: dns.NewDomainName(dns.TypeCNAME, name)}
	c.Put(rr, now)

	evicted := c.Sweep(now.Add(2 * time.Second))
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 0, c.Len())
}

func TestCacheRefreshCandidates(t *testing.T) {
	c := NewCache(nil)
	now := time.Now()
	name := mustName(t, "host.local")
	rr := dns.ResourceRecord{Name: name, Class: dns.ClassIN, TTL: 10, RData: dns.NewDomainName(dns.TypeCNAME, name)}
	c.Put(rr, now)

	candidates := c.RefreshCandidates(now.Add(9 * time.Second))
	require.Len(t, candidates, 1)
}
