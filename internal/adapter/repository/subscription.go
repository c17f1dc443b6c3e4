package repository

import (
	"context"
	"sync"
)

// subscription guards snapshot deliveries against a racing unsubscribe. The
// callback and the unsubscribe handle contend on one lock, so once
// unsubscribe returns no further callback can start.
type subscription struct {
	cancel context.CancelFunc
	mu     sync.Mutex
	closed bool
}

func newSubscription(cancel context.CancelFunc) *subscription {
	return &subscription{cancel: cancel}
}

// deliver invokes fn unless the subscription has been closed.
func (s *subscription) deliver(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	fn()
}

// unsubscribe closes the subscription and cancels its context. Safe to call
// more than once; the context is cancelled only on the first call.
func (s *subscription) unsubscribe() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
}
