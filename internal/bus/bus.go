// Package bus is the in-process change-notification signal. Services
// publish the name of a collection after a successful write; listeners
// refetch whatever they care about. No payload travels with the event,
// so listeners can never act on stale partial data.
package bus

import "sync"

type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]func(collection string)
}

// New returns an isolated bus instance. There is deliberately no
// package-level singleton; the instance is injected everywhere it is
// needed so tests can run against their own.
func New() *Bus {
	return &Bus{subs: map[int]func(string){}}
}

// Publish synchronously calls every subscriber with the collection name.
// Delivery is best-effort and in-process only; the only ordering
// guarantee is that Publish runs after the write it announces.
func (b *Bus) Publish(collection string) {
	b.mu.Lock()
	listeners := make([]func(string), 0, len(b.subs))
	for _, fn := range b.subs {
		listeners = append(listeners, fn)
	}
	b.mu.Unlock()

	for _, fn := range listeners {
		fn(collection)
	}
}

// Subscribe registers a listener and returns its unsubscribe func.
func (b *Bus) Subscribe(fn func(collection string)) (unsubscribe func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}
