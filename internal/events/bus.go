// Package events is a small in-process stream of pointer events for one
// client view. Components subscribe while they need the stream and release the
// subscription through the returned func.
package events

import "sync"

// Kind identifies an input event.
type Kind string

const (
	KindClick Kind = "click"
)

// Event is a pointer event. Target is the slash-separated path of the element
// that received it, e.g. "picker/3f2a/cell/2024-06-05".
type Event struct {
	Kind   Kind   `json:"kind"`
	Target string `json:"target"`
}

// Handler receives published events.
type Handler func(Event)

// Bus fans events out to subscribers. It is safe for concurrent use.
type Bus struct {
	mu   sync.Mutex
	next uint64
	subs map[uint64]Handler
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[uint64]Handler)}
}

// Subscribe registers h and returns the func that removes it. The returned
// func may be called any number of times.
func (b *Bus) Subscribe(h Handler) (unsubscribe func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers e to every current subscriber. Handlers run on the caller's
// goroutine and may unsubscribe themselves.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
