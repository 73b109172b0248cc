package mdns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusPublishSubscribe(t *testing.T) {
	b := NewBus(1)
	sub := b.Subscribe(TopicAnswer)

	b.Publish(Event{Topic: TopicAnswer, Payload: 42})

	select {
	case ev := <-sub:
		assert.Equal(t, 42, ev.Payload)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestBusDropsOnFullBuffer(t *testing.T) {
	b := NewBus(1)
	sub := b.Subscribe(TopicAnswer)

	b.Publish(Event{Topic: TopicAnswer, Payload: 1})
	b.Publish(Event{Topic: TopicAnswer, Payload: 2}) // dropped, buffer full

	ev := <-sub
	assert.Equal(t, 1, ev.Payload)

	select {
	case <-sub:
		t.Fatal("expected no second event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusTopicIsolation(t *testing.T) {
	b := NewBus(1)
	answers := b.Subscribe(TopicAnswer)
	conflicts := b.Subscribe(TopicConflict)

	b.Publish(Event{Topic: TopicConflict, Payload: "x"})

	select {
	case <-answers:
		t.Fatal("answer subscriber should not see conflict events")
	default:
	}
	require.Len(t, conflicts, 1)
}
