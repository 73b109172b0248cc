package mdns

import (
	"context"
	"sync"

	"github.com/dnsscience/simpledns/dns"
)

// Machine coordinates one service registration's probe/announce/
// established lifecycle (RFC 6762 §8), driving a Prober then an
// Announcer and exposing the current State under its own lock.
type Machine struct {
	prober    *Prober
	announcer *Announcer

	mu           sync.RWMutex
	state        State
	onStateChange func(State)
}

// NewMachine builds a Machine that sends both probes and
// announcements through send.
func NewMachine(send SendFunc) *Machine {
	return &Machine{
		state:     StateInitial,
		prober:    NewProber(send),
		announcer: NewAnnouncer(send),
	}
}

// State returns the machine's current position.
func (m *Machine) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// OnStateChange registers a callback invoked (without the machine's
// lock held) on every transition.
func (m *Machine) OnStateChange(fn func(State)) {
	m.mu.Lock()
	m.onStateChange = fn
	m.mu.Unlock()
}

func (m *Machine) setState(s State) {
	m.mu.Lock()
	m.state = s
	cb := m.onStateChange
	m.mu.Unlock()
	if cb != nil {
		cb(s)
	}
}

// Run drives records through probing then announcing. It returns nil
// once the machine reaches StateEstablished or StateConflictDetected;
// the caller inspects State() (or the returned ProbeResult via a
// conflict channel upstream) to decide whether to rename and retry.
func (m *Machine) Run(ctx context.Context, name dns.Name, records []dns.ResourceRecord, incoming <-chan Event) error {
	m.setState(StateProbing)
	m.prober.SetRecords(records)

	result := m.prober.Probe(ctx, name, incoming)
	if result.Error != nil {
		return result.Error
	}
	if result.Conflict {
		m.setState(StateConflictDetected)
		return nil
	}

	m.setState(StateAnnouncing)
	if err := m.announcer.Announce(ctx, records); err != nil {
		return err
	}

	m.setState(StateEstablished)
	return nil
}
