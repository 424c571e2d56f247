// Package notify provides a small observer list used by the ledger and the
// cast controllers to fan events out to the HUD, audio and logging.
package notify

import "sync"

// List is an ordered set of subscribers of type T.
// Subscribers are called in subscription order.
type List[T any] struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn T
}

// Subscribe adds s to the list and returns a function that removes it again.
// Calling the returned function more than once is harmless.
func (l *List[T]) Subscribe(s T) (unsubscribe func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, subscriber[T]{id: id, fn: s})

	return func() { l.remove(id) }
}

func (l *List[T]) remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, s := range l.subs {
		if s.id == id {
			l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of current subscribers.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

// Each calls fn for every subscriber. The list is snapshotted first, so
// subscribers may unsubscribe (or subscribe others) from inside fn.
func (l *List[T]) Each(fn func(T)) {
	l.mu.Lock()
	snapshot := make([]T, len(l.subs))
	for i, s := range l.subs {
		snapshot[i] = s.fn
	}
	l.mu.Unlock()

	for _, s := range snapshot {
		fn(s)
	}
}
