package mdns

import "sync"

// Topic identifies a class of event published on a Bus.
type Topic string

const (
	// TopicAnswer fires once per parsed incoming resource record,
	// letting a Querier match it against outstanding questions.
	TopicAnswer Topic = "answer"
	// TopicConflict fires when a probe or incoming announcement
	// collides with a name this responder is using.
	TopicConflict Topic = "conflict"
)

// Event is one published message; its Payload's concrete type depends
// on Topic (a dns.ResourceRecord for TopicAnswer, a Name for
// TopicConflict).
type Event struct {
	Topic   Topic
	Payload any
}

// Bus is an in-process pub/sub fan-out, grounded on
// internal/eventbus/bus.go's Topic-keyed subscriber map. Every
// subscriber gets its own buffered channel so a slow reader cannot
// stall publication to the others.
type Bus struct {
	mu   sync.RWMutex
	subs map[Topic][]chan Event
	buf  int
}

// NewBus creates a Bus whose subscriber channels are buffered to buf
// entries; a full channel causes Publish to drop the event for that
// subscriber rather than block.
func NewBus(buf int) *Bus {
	return &Bus{subs: make(map[Topic][]chan Event), buf: buf}
}

// Subscribe returns a channel that receives every future event
// published on topic. Unsubscribe by discarding the channel; it is
// never closed, since multiple publishers may outlive any one reader.
func (b *Bus) Subscribe(topic Topic) <-chan Event {
	ch := make(chan Event, b.buf)
	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], ch)
	b.mu.Unlock()
	return ch
}

// Publish fans e out to every subscriber of e.Topic, dropping it for
// any subscriber whose buffer is currently full.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs[e.Topic] {
		select {
		case ch <- e:
		default:
		}
	}
}
