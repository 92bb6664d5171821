package inmemory

import (
	"context"
	"slices"
	"sync"

	"github.com/ravnholt/eventjournal"
)

// SubscribeFrom opens a live catch-up subscription on the stream, delivering
// every visible event with version >= from in order, then tailing new
// appends. A stream that does not exist yet is tailed from its first event.
// The subscription stops when Stop is called, the context is cancelled or
// the store closes.
func (s *Store) SubscribeFrom(ctx context.Context, name string, from int64) (eventjournal.Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mux.RLock()
	if s.closed {
		s.mux.RUnlock()
		return nil, ErrClosed
	}

	from = max(from, s.truncateBefore(name))

	var backlog []eventjournal.RecordedEvent
	if st, ok := s.streams[name]; ok && !st.deleted {
		for _, row := range st.rows {
			if row.EventNumber >= from {
				backlog = append(backlog, row)
			}
		}
	}

	sub := newSubscription(from)
	sub.deregister = func() { s.deregister(name, sub) }
	sub.push(backlog...)

	// Registration happens under subsMux while the store lock is still
	// held, so a concurrent append either lands in the backlog or reaches
	// the subscription through notify. The subscription dedupes by version.
	s.subsMux.Lock()
	s.subs[name] = append(s.subs[name], sub)
	s.subsMux.Unlock()
	s.mux.RUnlock()

	go func() {
		select {
		case <-ctx.Done():
			sub.Stop()
		case <-sub.done:
		}
	}()

	go sub.pump()

	return sub, nil
}

// deregister removes a stopped subscription from the registry so notify no
// longer queues events for it.
func (s *Store) deregister(name string, sub *subscription) {
	s.subsMux.Lock()
	defer s.subsMux.Unlock()

	s.subs[name] = slices.DeleteFunc(s.subs[name], func(candidate *subscription) bool {
		return candidate == sub
	})
	if len(s.subs[name]) == 0 {
		delete(s.subs, name)
	}
}

func (s *Store) notify(name string, events []eventjournal.RecordedEvent) {
	s.subsMux.RLock()
	subs := s.subs[name]
	s.subsMux.RUnlock()

	for _, sub := range subs {
		sub.push(events...)
	}
}

func newSubscription(from int64) *subscription {
	return &subscription{
		next: from,
		out:  make(chan eventjournal.RecordedEvent),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

type subscription struct {
	out        chan eventjournal.RecordedEvent
	wake       chan struct{}
	done       chan struct{}
	stop       sync.Once
	deregister func()

	mux     sync.Mutex
	next    int64
	pending []eventjournal.RecordedEvent
}

func (s *subscription) Events() <-chan eventjournal.RecordedEvent {
	return s.out
}

func (s *subscription) Stop() {
	// Deregistration happens before done closes, so once the out channel
	// closes the registry no longer holds the subscription.
	s.stop.Do(func() {
		if s.deregister != nil {
			s.deregister()
		}
		close(s.done)
	})
}

// push queues events for delivery, dropping anything already queued or
// delivered. Events arrive in version order per stream, so a simple
// watermark suffices. A stopped subscription queues nothing.
func (s *subscription) push(events ...eventjournal.RecordedEvent) {
	select {
	case <-s.done:
		return
	default:
	}

	s.mux.Lock()
	for _, event := range events {
		if event.EventNumber < s.next {
			continue
		}
		s.pending = append(s.pending, event)
		s.next = event.EventNumber + 1
	}
	s.mux.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// pump moves queued events to the out channel until the subscription stops.
// The out channel is closed on exit, so receivers observe termination.
func (s *subscription) pump() {
	defer close(s.out)

	for {
		s.mux.Lock()
		batch := s.pending
		s.pending = nil
		s.mux.Unlock()

		for _, event := range batch {
			select {
			case s.out <- event:
			case <-s.done:
				return
			}
		}

		select {
		case <-s.wake:
		case <-s.done:
			return
		}
	}
}
