package mdns

import (
	"context"
	"time"

	"github.com/dnsscience/simpledns/dns"
)

// Querier sends questions over a Responder's socket and waits for
// matching answers delivered through its event bus, rather than
// reading the socket itself.
type Querier struct {
	send    SendFunc
	bus     *Bus
	cache   *Cache
	limits  *Limiters
	metrics *Metrics
}

// NewQuerier builds a Querier that sends through responder's send
// path and watches responder's bus/cache.
func NewQuerier(r *Responder) *Querier {
	return &Querier{send: r.send, bus: r.bus, cache: r.cache, limits: r.limits, metrics: r.metrics}
}

// Lookup sends a single question for name/qtype/qclass and returns the
// first matching answer observed before ctx is done, checking the
// cache first so a recently learned answer short-circuits the network
// round trip entirely.
func (q *Querier) Lookup(ctx context.Context, name dns.Name, qtype dns.Type, qclass dns.Class) (dns.ResourceRecord, error) {
	start := time.Now()
	if rr, ok := q.cache.Get(name.String(), qtype, qclass, start); ok {
		return rr, nil
	}

	sub := q.bus.Subscribe(TopicAnswer)

	if err := q.limits.WaitQuery(ctx); err != nil {
		return dns.ResourceRecord{}, err
	}
	pkt := &dns.Packet{Questions: []dns.Question{{QName: name, QType: dns.QType(qtype), QClass: dns.QClass(qclass)}}}
	if q.send != nil {
		if err := q.send(ctx, pkt); err != nil {
			return dns.ResourceRecord{}, err
		}
	}
	if q.metrics != nil {
		q.metrics.PacketsSent.WithLabelValues("query").Inc()
	}

	for {
		select {
		case <-ctx.Done():
			return dns.ResourceRecord{}, ctx.Err()
		case ev := <-sub:
			rr, ok := ev.Payload.(dns.ResourceRecord)
			if !ok {
				continue
			}
			if !rr.Name.Equal(name) || rr.Type() != qtype {
				continue
			}
			if qclass != dns.ClassAny && rr.Class != qclass {
				continue
			}
			if q.metrics != nil {
				q.metrics.QueryLatency.Observe(time.Since(start).Seconds())
			}
			return rr, nil
		}
	}
}

// Browse sends a PTR query for serviceType (e.g. "_http._tcp.local")
// and returns every distinct PTR answer observed within window.
func (q *Querier) Browse(ctx context.Context, serviceType dns.Name, window time.Duration) ([]dns.ResourceRecord, error) {
	sub := q.bus.Subscribe(TopicAnswer)

	if err := q.limits.WaitQuery(ctx); err != nil {
		return nil, err
	}
	pkt := &dns.Packet{Questions: []dns.Question{{QName: serviceType, QType: dns.QType(dns.TypePTR), QClass: dns.QClass(dns.ClassIN)}}}
	if q.send != nil {
		if err := q.send(ctx, pkt); err != nil {
			return nil, err
		}
	}

	deadline := time.NewTimer(window)
	defer deadline.Stop()

	var out []dns.ResourceRecord
	seen := make(map[string]bool)
	for {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case <-deadline.C:
			return out, nil
		case ev := <-sub:
			rr, ok := ev.Payload.(dns.ResourceRecord)
			if !ok || rr.Type() != dns.TypePTR || !rr.Name.Equal(serviceType) {
				continue
			}
			key := rr.Name.String()
			if pt, ok := rr.RData.(dns.DomainName); ok {
				key = pt.Name.String()
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, rr)
		}
	}
}
