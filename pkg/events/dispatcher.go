package events

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	ErrHandlerAlreadyRegistered = errors.New("handler already registered")
	ErrNilHandler               = errors.New("handler is nil")
)

// Dispatcher is the in-process EventDispatcher. Handlers run synchronously in
// the caller's goroutine, in registration order.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]EventHandler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]EventHandler),
	}
}

func (d *Dispatcher) Register(eventName string, handler EventHandler) error {
	if handler == nil {
		return ErrNilHandler
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, h := range d.handlers[eventName] {
		if sameHandler(h, handler) {
			return ErrHandlerAlreadyRegistered
		}
	}
	d.handlers[eventName] = append(d.handlers[eventName], handler)
	return nil
}

// Dispatch notifies every handler of event.GetName(). The first failing
// handler aborts the notification.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) error {
	handlers := d.Handlers(event.GetName())

	for _, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			return fmt.Errorf("handling %s: %w", event.GetName(), err)
		}
	}
	return nil
}

// Remove drops handler from eventName. The event name stays known with an
// empty handler list.
func (d *Dispatcher) Remove(eventName string, handler EventHandler) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	current, ok := d.handlers[eventName]
	if !ok {
		return nil
	}
	kept := make([]EventHandler, 0, len(current))
	for _, h := range current {
		if !sameHandler(h, handler) {
			kept = append(kept, h)
		}
	}
	d.handlers[eventName] = kept
	return nil
}

func (d *Dispatcher) Has(eventName string, handler EventHandler) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, h := range d.handlers[eventName] {
		if sameHandler(h, handler) {
			return true
		}
	}
	return false
}

// Handlers returns a copy of the handlers registered for eventName, or nil
// when the name was never registered (or the dispatcher was cleared).
func (d *Dispatcher) Handlers(eventName string) []EventHandler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	current, ok := d.handlers[eventName]
	if !ok {
		return nil
	}
	out := make([]EventHandler, len(current))
	copy(out, current)
	return out
}

func (d *Dispatcher) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = make(map[string][]EventHandler)
}

// sameHandler compares handlers by identity. Handlers that cannot be
// compared (a HandlerFunc, or a struct value holding one) never match, so
// they cannot be removed individually.
func sameHandler(a, b EventHandler) (same bool) {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta == nil || ta != tb || !ta.Comparable() {
		return false
	}
	// a comparable struct may still hold an uncomparable value in an
	// interface field, which only fails at comparison time
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

var _ EventDispatcher = (*Dispatcher)(nil)
