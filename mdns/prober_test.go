package mdns

import (
	"context"
	"testing"
	"time"

	"github.com/dnsscience/simpledns/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordA(t *testing.T, name string, ip [4]byte) dns.ResourceRecord {
	t.Helper()
	n := mustName(t, name)
	return dns.ResourceRecord{Name: n, Class: dns.ClassIN, TTL: 120, RData: dns.A{Address: ip}}
}

func TestProberNoConflict(t *testing.T) {
	var sent int
	send := func(ctx context.Context, p *dns.Packet) error { sent++; return nil }
	p := NewProber(send)
	p.Interval = 5 * time.Millisecond
	p.SetRecords([]dns.ResourceRecord{recordA(t, "host.local", [4]byte{10, 0, 0, 1})})

	incoming := make(chan Event)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	result := p.Probe(ctx, mustName(t, "host.local"), incoming)
	assert.NoError(t, result.Error)
	assert.False(t, result.Conflict)
	assert.Equal(t, 3, sent)
}

func TestProberDetectsConflict(t *testing.T) {
	send := func(ctx context.Context, p *dns.Packet) error { return nil }
	p := NewProber(send)
	p.Interval = 50 * time.Millisecond
	ours := recordA(t, "host.local", [4]byte{10, 0, 0, 1})
	p.SetRecords([]dns.ResourceRecord{ours})

	theirs := recordA(t, "host.local", [4]byte{10, 0, 0, 2})
	incoming := make(chan Event, 1)
	incoming <- Event{Topic: TopicAnswer, Payload: theirs}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	result := p.Probe(ctx, mustName(t, "host.local"), incoming)
	require.NoError(t, result.Error)
	assert.True(t, result.Conflict)
}

func TestConflictsIgnoresIdenticalRecord(t *testing.T) {
	rr := recordA(t, "host.local", [4]byte{10, 0, 0, 1})
	assert.False(t, conflicts([]dns.ResourceRecord{rr}, rr))
}
