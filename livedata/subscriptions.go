package livedata

import "sync"

// Subscriptions tracks and clears multiple unsubscribe tokens.
// The zero value is ready to use.
type Subscriptions struct {
	mu     sync.Mutex
	unsubs []Unsubscribe
}

// Add registers an unsubscribe token.
func (s *Subscriptions) Add(unsub Unsubscribe) {
	if s == nil || unsub == nil {
		return
	}
	s.mu.Lock()
	s.unsubs = append(s.unsubs, unsub)
	s.mu.Unlock()
}

// Len returns the number of tracked tokens.
func (s *Subscriptions) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	n := len(s.unsubs)
	s.mu.Unlock()
	return n
}

// Clear runs all tracked tokens and forgets them.
func (s *Subscriptions) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	unsubs := s.unsubs
	s.unsubs = nil
	s.mu.Unlock()
	for _, unsub := range unsubs {
		unsub()
	}
}

// Observe subscribes fn to source and tracks the token in subs.
func Observe[T any](subs *Subscriptions, source LiveData[T], fn Subscriber[T]) error {
	if source == nil {
		return ErrNilSource
	}
	unsub, err := source.Subscribe(fn)
	if err != nil {
		return err
	}
	subs.Add(unsub)
	return nil
}
