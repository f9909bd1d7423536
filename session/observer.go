package session

import (
	"context"
	"sync"
)

// subscriber decouples publication from delivery: Set/Clear append to the
// queue and return, and a per-subscription goroutine feeds the outbound
// channel. Order is preserved and nothing is coalesced; a slow consumer
// buffers, it never drops or reorders. The queue has its own lock so a
// blocked consumer cannot stall publishers.
type subscriber struct {
	mu     sync.Mutex
	queue  []*Identity
	signal chan struct{}
}

func (sub *subscriber) push(value *Identity) {
	sub.mu.Lock()
	sub.queue = append(sub.queue, value)
	sub.mu.Unlock()

	select {
	case sub.signal <- struct{}{}:
	default:
	}
}

func (sub *subscriber) take() []*Identity {
	sub.mu.Lock()
	pending := sub.queue
	sub.queue = nil
	sub.mu.Unlock()
	return pending
}

// Observe returns a lazy, infinite stream of session values. The first value
// delivered is the identity at subscription time (replay-latest); every
// subsequent Set/Clear is delivered in invocation order. The channel closes
// when ctx is done.
func (s *Store) Observe(ctx context.Context) <-chan *Identity {
	out := make(chan *Identity)
	sub := &subscriber{signal: make(chan struct{}, 1)}

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	sub.queue = append(sub.queue, s.identity.Clone())
	s.subs[id] = sub
	s.mu.Unlock()

	go s.deliver(ctx, id, sub, out)
	return out
}

func (s *Store) deliver(ctx context.Context, id uint64, sub *subscriber, out chan<- *Identity) {
	defer func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
		close(out)
	}()

	for {
		for _, value := range sub.take() {
			select {
			case out <- value:
			case <-ctx.Done():
				return
			}
		}

		select {
		case <-sub.signal:
		case <-ctx.Done():
			return
		}
	}
}

// broadcastLocked publishes value to every live subscription. Callers hold
// s.mu, which is what serializes publications into a single total order.
func (s *Store) broadcastLocked(value *Identity) {
	for _, sub := range s.subs {
		sub.push(value.Clone())
	}
}
