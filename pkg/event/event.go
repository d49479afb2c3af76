// Package event provides a simple synchronous/async event dispatcher.
//
// The storefront fires domain events so the host application can observe
// store activity without coupling to the services:
//
//	event.Listen(event.OrderCreated, func(p interface{}) { ... })
package event

import (
	"sync"
)

// Event names fired by the storefront services.
const (
	OrderCreated   = "order.created"
	UserRegistered = "user.registered"
	UserLoggedIn   = "user.logged_in"
	PersistFailed  = "store.persist_failed"
)

// Handler is a function that receives an event payload.
type Handler func(payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
)

// Listen registers a handler for the given event name.
func Listen(event string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[event] = append(handlers[event], handler)
}

// Fire dispatches an event synchronously to all registered listeners.
func Fire(event string, payload interface{}) {
	mu.RLock()
	hs := make([]Handler, len(handlers[event]))
	copy(hs, handlers[event])
	mu.RUnlock()

	for _, h := range hs {
		h(payload)
	}
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}
