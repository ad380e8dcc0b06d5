package app

import (
	"sync"

	"quiz-racer/internal/domain"
)

// Notifier receives session events. Implementations must not block and must
// not call back into the Session: Notify runs while the session lock is held.
type Notifier interface {
	Notify(domain.Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(domain.Event)

func (f NotifierFunc) Notify(ev domain.Event) { f(ev) }

// Broadcaster fans session events out to subscriber channels.
type Broadcaster struct {
	mu          sync.Mutex
	subscribers map[chan domain.Event]struct{}
	closed      bool
}

const subscriberBuffer = 64

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subscribers: make(map[chan domain.Event]struct{})}
}

// Subscribe returns a channel of events. The caller must invoke cancel to avoid leaks.
func (b *Broadcaster) Subscribe() (<-chan domain.Event, func()) {
	ch := make(chan domain.Event, subscriberBuffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subscribers[ch]; ok {
			delete(b.subscribers, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Notify delivers ev to every subscriber, evicting the oldest queued event of a full subscriber.
func (b *Broadcaster) Notify(ev domain.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		select {
		case ch <- ev:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- ev
		}
	}
}

// Close ends every subscription; later subscribers receive a closed channel.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		delete(b.subscribers, ch)
		close(ch)
	}
	b.closed = true
}
