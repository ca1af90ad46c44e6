// Package pubsub fans values out to subscribers and feeds them into the
// Bubble Tea update loop. The debug log streams its entries through it.
package pubsub

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultBufferSize = 64

// Event is a published payload stamped with its publish time.
type Event[T any] struct {
	Payload   T
	Timestamp time.Time
}

// Broker delivers every published payload to all current subscribers.
// A subscriber whose buffer is full misses the event; Publish never blocks.
type Broker[T any] struct {
	mu     sync.Mutex
	subs   map[chan Event[T]]func() bool
	closed bool
	buffer int
}

// NewBroker creates a broker with a 64-event buffer per subscriber.
func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{
		subs:   make(map[chan Event[T]]func() bool),
		buffer: defaultBufferSize,
	}
}

// Subscribe returns a channel that is closed when ctx ends or the broker
// closes, whichever comes first.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event[T], b.buffer)
	if b.closed {
		close(ch)
		return ch
	}

	b.subs[ch] = context.AfterFunc(ctx, func() { b.unsubscribe(ch) })
	return ch
}

func (b *Broker[T]) unsubscribe(ch chan Event[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
}

// Publish stamps payload and offers it to every subscriber.
func (b *Broker[T]) Publish(payload T) {
	event := Event[T]{Payload: payload, Timestamp: time.Now()}

	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Close ends every subscription. Later subscribers get a closed channel and
// later publishes go nowhere.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch, stop := range b.subs {
		stop()
		close(ch)
	}
	clear(b.subs)
}

// SubscriberCount returns the number of live subscriptions.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// ContinuousListener re-arms a subscription as a stream of tea.Cmds.
type ContinuousListener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewContinuousListener subscribes to broker for the lifetime of ctx.
func NewContinuousListener[T any](ctx context.Context, broker *Broker[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{ctx: ctx, ch: broker.Subscribe(ctx)}
}

// Listen waits for the next Event and returns it as the message. The message
// is nil once the subscription ends. Return Listen() again from Update after
// handling each event.
func (l *ContinuousListener[T]) Listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-l.ctx.Done():
			return nil
		case event, ok := <-l.ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}
