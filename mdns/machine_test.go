package mdns

import (
	"context"
	"testing"
	"time"

	"github.com/dnsscience/simpledns/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineReachesEstablishedWithoutConflict(t *testing.T) {
	send := func(ctx context.Context, p *dns.Packet) error { return nil }
	m := NewMachine(send)
	m.prober.Interval = time.Millisecond
	m.announcer.Interval = time.Millisecond

	var seen []State
	m.OnStateChange(func(s State) { seen = append(seen, s) })

	rr := recordA(t, "host.local", [4]byte{10, 0, 0, 1})
	incoming := make(chan Event)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, m.Run(ctx, mustName(t, "host.local"), []dns.ResourceRecord{rr}, incoming))
	assert.Equal(t, StateEstablished, m.State())
	assert.Equal(t, []State{StateProbing, StateAnnouncing, StateEstablished}, seen)
}

func TestMachineStopsAtConflict(t *testing.T) {
	send := func(ctx context.Context, p *dns.Packet) error { return nil }
	m := NewMachine(send)
	m.prober.Interval = 20 * time.Millisecond

	ours := recordA(t, "host.local", [4]byte{10, 0, 0, 1})
	theirs := recordA(t, "host.local", [4]byte{10, 0, 0, 2})
	incoming := make(chan Event, 1)
	incoming <- Event{Topic: TopicAnswer, Payload: theirs}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, m.Run(ctx, mustName(t, "host.local"), []dns.ResourceRecord{ours}, incoming))
	assert.Equal(t, StateConflictDetected, m.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Probing", StateProbing.String())
	assert.Equal(t, "Unknown", State(99).String())
}
