package mdns

import (
	"bytes"
	"context"
	"time"

	"github.com/dnsscience/simpledns/dns"
)

// SendFunc transmits a built packet, abstracting over the concrete
// socket so Prober/Announcer stay testable without real UDP I/O.
type SendFunc func(ctx context.Context, p *dns.Packet) error

// ProbeResult reports what a probing round found.
type ProbeResult struct {
	Conflict bool
	Error    error
}

// Prober implements RFC 6762 §8.1's probing sequence: send a probe
// query for each of a set of unique records, three times, 250ms apart,
// watching for any incoming record that collides and doesn't lose the
// simultaneous-probe tie-break.
type Prober struct {
	Send     SendFunc
	Interval time.Duration

	ourRecords []dns.ResourceRecord
}

// NewProber creates a Prober sending through send at RFC 6762's
// default 250ms probe interval.
func NewProber(send SendFunc) *Prober {
	return &Prober{Send: send, Interval: 250 * time.Millisecond}
}

// SetRecords sets the unique records being probed for; their owner
// name is the probe question's QName.
func (p *Prober) SetRecords(records []dns.ResourceRecord) {
	p.ourRecords = records
}

// Probe runs the three-probe sequence for name, feeding every
// incoming resource record seen on incoming (until it closes or ctx is
// done) through the RFC 6762 §8.2 conflict check. incoming is meant to
// be a Bus subscription already filtered to the relevant name by the
// caller.
func (p *Prober) Probe(ctx context.Context, name dns.Name, incoming <-chan Event) ProbeResult {
	const probeCount = 3

	for i := 0; i < probeCount; i++ {
		select {
		case <-ctx.Done():
			return ProbeResult{Error: ctx.Err()}
		default:
		}

		pkt := &dns.Packet{
			Questions: []dns.Question{{QName: name, QType: dns.QType(dns.TypeANY), QClass: dns.QClass(dns.ClassIN)}},
		}
		for _, rr := range p.ourRecords {
			pkt.Authorities = append(pkt.Authorities, rr)
		}
		if p.Send != nil {
			if err := p.Send(ctx, pkt); err != nil {
				return ProbeResult{Error: err}
			}
		}

		deadline := time.NewTimer(p.Interval)
		for drained := false; !drained; {
			select {
			case ev, ok := <-incoming:
				if !ok {
					drained = true
					break
				}
				rr, ok := ev.Payload.(dns.ResourceRecord)
				if !ok {
					break
				}
				if conflicts(p.ourRecords, rr) {
					deadline.Stop()
					return ProbeResult{Conflict: true}
				}
			case <-deadline.C:
				drained = true
			case <-ctx.Done():
				deadline.Stop()
				return ProbeResult{Error: ctx.Err()}
			}
		}
	}

	return ProbeResult{Conflict: false}
}

// conflicts reports whether incoming collides with any of ours: same
// name, type and class but different rdata, and incoming does not lose
// the RFC 6762 §8.2 lexicographic tie-break on rdata bytes.
func conflicts(ours []dns.ResourceRecord, incoming dns.ResourceRecord) bool {
	for _, our := range ours {
		if !our.Name.Equal(incoming.Name) {
			continue
		}
		if our.Type() != incoming.Type() || our.Class != incoming.Class {
			continue
		}
		ourBytes, err1 := dns.EncodeRData(our.RData)
		theirBytes, err2 := dns.EncodeRData(incoming.RData)
		if err1 != nil || err2 != nil {
			continue
		}
		if bytes.Equal(ourBytes, theirBytes) {
			continue // identical record, not a conflict
		}
		if bytes.Compare(theirBytes, ourBytes) > 0 {
			return true // their rdata lexicographically wins, we lose
		}
	}
	return false
}
