// Package events provides the synchronous publish/subscribe bus that connects
// the application state with the views.
//
// Subscriptions are keyed by an exact event name, by a regular expression
// compiled at registration time, or registered as catch-all listeners.
// Emit walks every subscription in registration order.
//
// Example:
//
//	bus := events.NewBus()
//	bus.On(events.BasketUpdated, renderBasket)
//	bus.MustOnPattern(`^order\..+:change$`, setOrderField)
//	bus.OnAll(logEvent)
//
//	bus.Emit(events.BasketUpdated, payload)
package events

import (
	"fmt"
	"regexp"
	"sync"
)

// Event is a named notification with its payload.
type Event struct {
	Name    string
	Payload any
}

// Handler receives emitted events.
type Handler func(Event)

// Emitter is the narrow contract used by models and views to publish.
type Emitter interface {
	Emit(name string, payload any)
}

type matchKind int

const (
	matchExact matchKind = iota
	matchPattern
	matchAll
)

// Subscription identifies a registered handler. Pass it to Off to remove it.
type Subscription struct {
	id uint64
}

type subscription struct {
	id      uint64
	kind    matchKind
	name    string
	pattern *regexp.Regexp
	handler Handler
}

func (s *subscription) matches(name string) bool {
	switch s.kind {
	case matchExact:
		return s.name == name
	case matchPattern:
		return s.pattern.MatchString(name)
	case matchAll:
		return true
	default:
		return false
	}
}

// Bus dispatches events to subscribers synchronously.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []*subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) add(s *subscription) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	s.id = b.nextID
	b.subs = append(b.subs, s)
	return Subscription{id: s.id}
}

// On registers a handler for an exact event name.
func (b *Bus) On(name string, handler Handler) Subscription {
	return b.add(&subscription{kind: matchExact, name: name, handler: handler})
}

// OnPattern registers a handler for every event whose name matches expr.
// The expression is compiled here, so a malformed pattern is reported while
// wiring rather than on the first emit.
func (b *Bus) OnPattern(expr string, handler Handler) (Subscription, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Subscription{}, fmt.Errorf("invalid event pattern %q: %w", expr, err)
	}
	return b.add(&subscription{kind: matchPattern, name: expr, pattern: re, handler: handler}), nil
}

// MustOnPattern is OnPattern for patterns known at compile time.
func (b *Bus) MustOnPattern(expr string, handler Handler) Subscription {
	sub, err := b.OnPattern(expr, handler)
	if err != nil {
		panic(err)
	}
	return sub
}

// OnAll registers a catch-all handler.
func (b *Bus) OnAll(handler Handler) Subscription {
	return b.add(&subscription{kind: matchAll, handler: handler})
}

// Off removes a subscription. Unknown or already removed subscriptions are ignored.
func (b *Bus) Off(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// OffAll drops every subscription.
func (b *Bus) OffAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = nil
}

// Len reports the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Emit delivers the event to every matching handler in registration order.
// Handlers run on a snapshot of the subscription list, so they may emit,
// subscribe or unsubscribe without deadlocking. No match is a no-op.
func (b *Bus) Emit(name string, payload any) {
	b.mu.RLock()
	snapshot := make([]*subscription, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.RUnlock()

	evt := Event{Name: name, Payload: payload}
	for _, s := range snapshot {
		if s.matches(name) {
			s.handler(evt)
		}
	}
}

// PayloadKey holds a non-map payload inside a context-merged Trigger event.
const PayloadKey = "payload"

// Trigger returns an emitter bound to a fixed event name. When context is
// non-nil the emitted payload is a map with context entries written over the
// payload's own entries; any other payload is kept under PayloadKey.
func (b *Bus) Trigger(name string, context map[string]any) func(payload any) {
	return func(payload any) {
		if context == nil {
			b.Emit(name, payload)
			return
		}
		merged := make(map[string]any, len(context)+1)
		switch m := payload.(type) {
		case map[string]any:
			for k, v := range m {
				merged[k] = v
			}
		case nil:
		default:
			merged[PayloadKey] = payload
		}
		for k, v := range context {
			merged[k] = v
		}
		b.Emit(name, merged)
	}
}
