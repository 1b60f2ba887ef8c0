package events

import (
	"sync"
	"time"
)

// SubscriberFunc is a callback invoked when an event is emitted.
type SubscriberFunc func(Event)

type subscriber struct {
	fn     SubscriberFunc
	filter map[Type]struct{}
}

// Bus provides synchronous, typed event dispatch. Subscribers run in
// registration order on the emitting goroutine.
type Bus struct {
	mu          sync.RWMutex
	subscribers []subscriber
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a callback for all event types.
func (b *Bus) Subscribe(fn SubscriberFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, subscriber{fn: fn})
}

// SubscribeTypes registers a callback only for the given event types.
func (b *Bus) SubscribeTypes(fn SubscriberFunc, types ...Type) {
	filter := make(map[Type]struct{}, len(types))
	for _, t := range types {
		filter[t] = struct{}{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, subscriber{fn: fn, filter: filter})
}

// Emit dispatches an event synchronously to all matching subscribers.
func (b *Bus) Emit(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	b.mu.RLock()
	subs := make([]subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.RUnlock()

	for _, s := range subs {
		if s.filter != nil {
			if _, ok := s.filter[evt.Type]; !ok {
				continue
			}
		}
		s.fn(evt)
	}
}
