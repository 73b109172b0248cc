package mdns

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/dnsscience/simpledns/dns"
)

// command is the closed set of requests the responder's event loop
// accepts over its command channel. That channel is never closed;
// cancellation is signalled by Close, which closes the separate closed
// channel.
type command struct {
	register   *registerCmd
	deregister *Service
}

type registerCmd struct {
	svc    Service
	result chan error
}

// Responder runs the mDNS event loop: a single select over incoming
// packets, commands, and the cache-expiration ticker, per this
// package's single-reader-writer-lock-over-a-shared-table concurrency
// model. Packet encode/decode always happens off that lock, in the
// goroutines reading from/writing to the socket.
type Responder struct {
	conn    *Conn
	cache   *Cache
	bus     *Bus
	limits  *Limiters
	metrics *Metrics
	cfg     Config
	log     *slog.Logger

	cmds   chan command
	closed chan struct{}

	services map[string]Service
}

// NewResponder wires a Responder around an already-open Conn. Logging
// goes to slog.Default(); set a different logger with SetLogger.
func NewResponder(conn *Conn, cfg Config, metrics *Metrics) *Responder {
	return &Responder{
		conn:     conn,
		cache:    NewCache(metrics),
		bus:      NewBus(32),
		limits:   NewLimiters(cfg.RateLimit),
		metrics:  metrics,
		cfg:      cfg,
		log:      slog.Default(),
		cmds:     make(chan command),
		closed:   make(chan struct{}),
		services: make(map[string]Service),
	}
}

// SetLogger replaces the responder's logger.
func (r *Responder) SetLogger(l *slog.Logger) { r.log = l }

// Cache exposes the shared resource-record table for read access by
// callers building query responses.
func (r *Responder) Cache() *Cache { return r.cache }

// Bus exposes the event bus so a Querier can subscribe to answers.
func (r *Responder) Bus() *Bus { return r.bus }

// Run is the event loop: it reads packets off the wire on its own
// goroutines and multiplexes them, command submissions, and the cache
// sweep ticker into one select, until ctx is done or Close is called.
func (r *Responder) Run(ctx context.Context) error {
	sweep := time.NewTicker(r.cfg.CacheSweepEvery)
	defer sweep.Stop()

	recv := make(chan dns.ResourceRecord, 64)
	go r.readLoop4(ctx, recv)
	go r.readLoop6(ctx, recv)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.closed:
			return ErrClosed
		case rr := <-recv:
			now := time.Now()
			r.cache.Put(rr, now)
			r.bus.Publish(Event{Topic: TopicAnswer, Payload: rr})
		case cmd := <-r.cmds:
			r.handle(ctx, cmd)
		case t := <-sweep.C:
			if evicted := r.cache.Sweep(t); evicted > 0 {
				r.log.Debug("cache sweep evicted entries", "count", evicted)
			}
		}
	}
}

// Close stops the event loop; it is safe to call more than once.
func (r *Responder) Close() {
	select {
	case <-r.closed:
	default:
		close(r.closed)
	}
}

func (r *Responder) handle(ctx context.Context, cmd command) {
	switch {
	case cmd.register != nil:
		err := r.register(ctx, cmd.register.svc)
		cmd.register.result <- err
	case cmd.deregister != nil:
		delete(r.services, cmd.deregister.QualifiedInstance())
	}
}

func (r *Responder) register(ctx context.Context, svc Service) error {
	if err := svc.Validate(); err != nil {
		return err
	}
	r.services[svc.QualifiedInstance()] = svc
	return nil
}

// Register validates and claims svc: it probes for conflicts, renames
// up to RFC 6762 §9's budget on collision, then announces. It blocks
// until the machine reaches StateEstablished or a context deadline.
func (r *Responder) Register(ctx context.Context, svc Service, records func(Service) []dns.ResourceRecord) error {
	const maxRenames = 10

	for attempt := 0; attempt < maxRenames; attempt++ {
		name, err := dns.NewName(svc.QualifiedInstance())
		if err != nil {
			return err
		}
		incoming := r.bus.Subscribe(TopicAnswer)
		machine := NewMachine(r.send)
		if r.cfg.ProbeInterval > 0 {
			machine.prober.Interval = r.cfg.ProbeInterval
		}
		if r.cfg.AnnounceCount > 0 {
			machine.announcer.Count = r.cfg.AnnounceCount
		}
		if err := machine.Run(ctx, name, records(svc), incoming); err != nil {
			return err
		}
		if machine.State() != StateConflictDetected {
			result := make(chan error, 1)
			select {
			case r.cmds <- command{register: &registerCmd{svc: svc, result: result}}:
			case <-r.closed:
				return ErrClosed
			case <-ctx.Done():
				return ctx.Err()
			}
			return <-result
		}
		if r.metrics != nil {
			r.metrics.ProbeConflicts.Inc()
		}
		r.log.Info("probe conflict, renaming service", "instance", svc.InstanceName)
		svc.Rename()
	}
	return ErrNameConflict
}

func (r *Responder) send(ctx context.Context, p *dns.Packet) error {
	kind := "announce"
	wait := r.limits.WaitAnnounce
	if !p.QR && len(p.Questions) > 0 {
		kind = "probe"
		wait = r.limits.WaitProbe
	}
	if err := wait(ctx); err != nil {
		return err
	}
	data, err := dns.BuildCompressed(p)
	if err != nil {
		return err
	}
	if r.metrics != nil {
		r.metrics.PacketsSent.WithLabelValues(kind).Inc()
	}
	return r.writeMulticast(data)
}

func (r *Responder) writeMulticast(data []byte) error {
	if r.conn.PC4 != nil {
		if _, err := r.conn.PC4.WriteTo(data, nil, &net.UDPAddr{IP: IPv4Group, Port: mdnsPort}); err != nil {
			return &NetworkError{Operation: "write udp4", Err: err}
		}
	}
	if r.conn.PC6 != nil {
		if _, err := r.conn.PC6.WriteTo(data, nil, &net.UDPAddr{IP: IPv6Group, Port: mdnsPort}); err != nil {
			return &NetworkError{Operation: "write udp6", Err: err}
		}
	}
	return nil
}

func (r *Responder) readLoop4(ctx context.Context, out chan<- dns.ResourceRecord) {
	if r.conn.PC4 == nil {
		return
	}
	r.readLoop(ctx, out, "udp4", func(buf []byte) (int, error) {
		n, _, _, err := r.conn.PC4.ReadFrom(buf)
		return n, err
	})
}

func (r *Responder) readLoop6(ctx context.Context, out chan<- dns.ResourceRecord) {
	if r.conn.PC6 == nil {
		return
	}
	r.readLoop(ctx, out, "udp6", func(buf []byte) (int, error) {
		n, _, _, err := r.conn.PC6.ReadFrom(buf)
		return n, err
	})
}

// readLoop drives one address family's read side: it pulls packets
// through readFrom until ctx is done or the responder is closed,
// parsing each into a Packet and forwarding its answers to out.
// readLoop4 and readLoop6 run one of these each, both feeding the same
// channel, so neither address family starves the other.
func (r *Responder) readLoop(ctx context.Context, out chan<- dns.ResourceRecord, family string, readFrom func([]byte) (int, error)) {
	pooled := dns.GetBuffer(readBufferLen)
	defer dns.PutBuffer(pooled)
	buf := (*pooled)[:readBufferLen]
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.closed:
			return
		default:
		}
		n, err := readFrom(buf)
		if err != nil {
			continue
		}
		if r.metrics != nil {
			r.metrics.PacketsReceived.WithLabelValues(family).Inc()
		}
		pkt, err := dns.ParsePacket(buf[:n])
		if err != nil {
			if r.metrics != nil {
				r.metrics.ParseErrors.Inc()
			}
			r.log.Debug("dropped malformed packet", "error", err)
			continue
		}
		for _, rr := range pkt.Answers {
			select {
			case out <- rr:
			default:
			}
		}
	}
}
