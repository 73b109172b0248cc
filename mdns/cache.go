package mdns

import (
	"strings"
	"sync"
	"time"

	"github.com/dnsscience/simpledns/dns"
)

// cacheKey identifies a cached record by name, type and class — the
// tuple RFC 6762 §10.2 uses to decide whether a new record replaces an
// old one.
type cacheKey struct {
	name  string
	qtype dns.Type
	class dns.Class
}

type cacheEntry struct {
	record   dns.ResourceRecord
	expires  time.Time
	fraction time.Time // 80%-of-TTL mark for proactive refresh (RFC 6762 §5.2)
}

// Cache is the shared resource-record table a responder/querier reads
// and writes. It is guarded by a single reader-writer lock; encoding
// and decoding packet bytes always happens outside the lock, per the
// concurrency model this package implements.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]cacheEntry
	metrics *Metrics
}

// NewCache creates an empty Cache. metrics may be nil.
func NewCache(metrics *Metrics) *Cache {
	return &Cache{entries: make(map[cacheKey]cacheEntry), metrics: metrics}
}

func keyFor(r dns.ResourceRecord) cacheKey {
	return cacheKey{name: strings.ToLower(r.Name.String()), qtype: r.Type(), class: r.Class}
}

// Put inserts or replaces a record. TTL 0 is a goodbye record (RFC
// 6762 §10.1): it is stored with a 1-second expiry so queriers get one
// last chance to observe the removal before it is swept.
func (c *Cache) Put(r dns.ResourceRecord, now time.Time) {
	ttl := time.Duration(r.TTL) * time.Second
	if r.TTL == 0 {
		ttl = time.Second
	}
	c.mu.Lock()
	c.entries[keyFor(r)] = cacheEntry{
		record:   r,
		expires:  now.Add(ttl),
		fraction: now.Add(ttl * 4 / 5),
	}
	if c.metrics != nil {
		c.metrics.CacheSize.Set(float64(len(c.entries)))
	}
	c.mu.Unlock()
}

// Get returns the cached record for name/qtype/class, if present and
// unexpired as of now.
func (c *Cache) Get(name string, qtype dns.Type, class dns.Class, now time.Time) (dns.ResourceRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[cacheKey{name: strings.ToLower(name), qtype: qtype, class: class}]
	if !ok || now.After(e.expires) {
		return dns.ResourceRecord{}, false
	}
	return e.record, true
}

// Sweep removes every entry expired as of now and returns how many
// were evicted. Call this from a ticker on the interval set by
// Config.CacheSweepEvery.
func (c *Cache) Sweep(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	evicted := 0
	for k, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, k)
			evicted++
		}
	}
	if c.metrics != nil {
		if evicted > 0 {
			c.metrics.CacheEvictions.Add(float64(evicted))
		}
		c.metrics.CacheSize.Set(float64(len(c.entries)))
	}
	return evicted
}

// RefreshCandidates returns every record whose 80%-of-TTL mark has
// passed but which has not yet expired, per RFC 6762 §5.2's
// opportunistic cache-refresh query schedule.
func (c *Cache) RefreshCandidates(now time.Time) []dns.ResourceRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []dns.ResourceRecord
	for _, e := range c.entries {
		if now.After(e.fraction) && now.Before(e.expires) {
			out = append(out, e.record)
		}
	}
	return out
}

// Len reports the current entry count.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
