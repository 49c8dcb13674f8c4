// Package livedata provides observable value containers with synchronous
// change notification.
//
// An owner holds a *MutableLiveData (or embeds a *ViewModel) and publishes
// only the LiveData interface, so callers can read and subscribe but not
// write. The split is a typing convention; nothing is frozen at runtime.
package livedata

import "sync"

// Subscriber receives the container value on every notification.
type Subscriber[T any] func(value T)

// Unsubscribe removes the registration that produced it.
// Calls after the first are no-ops.
type Unsubscribe func()

// Option configures a container at construction.
type Option[T any] func(*Observable[T])

// WithClone replaces the copy used by Read and Notify.
// A nil fn keeps the default ShallowCopy.
func WithClone[T any](fn CloneFunc[T]) Option[T] {
	return func(o *Observable[T]) {
		if fn != nil {
			o.clone = fn
		}
	}
}

type registration[T any] struct {
	fn Subscriber[T]
}

// Observable holds a value and an ordered list of subscribers.
//
// Subscribers run synchronously, in registration order, on the goroutine
// that triggered the notification. The lock is never held while a
// subscriber runs.
type Observable[T any] struct {
	mu    sync.Mutex
	value T
	subs  []*registration[T]
	clone CloneFunc[T]
}

// New creates a container holding initial.
func New[T any](initial T, opts ...Option[T]) *Observable[T] {
	o := &Observable[T]{value: initial}
	o.apply(opts)
	return o
}

func (o *Observable[T]) apply(opts []Option[T]) {
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
}

// Read returns a shallow copy of the current value.
// Nested references are shared with the stored value.
func (o *Observable[T]) Read() T {
	if o == nil {
		var zero T
		return zero
	}
	o.mu.Lock()
	value := o.value
	o.mu.Unlock()
	return o.copyOf(value)
}

// Subscribe appends fn to the subscriber list.
// The same function may be registered more than once; each registration is
// notified and removed independently.
func (o *Observable[T]) Subscribe(fn Subscriber[T]) (Unsubscribe, error) {
	if fn == nil {
		return nil, ErrInvalidHandlerType
	}
	if o == nil {
		return func() {}, nil
	}
	reg := &registration[T]{fn: fn}
	o.mu.Lock()
	o.subs = append(o.subs, reg)
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			o.remove(reg)
		})
	}, nil
}

// SubscribeAny registers a handler whose type is only known at runtime.
// Accepted handlers are Subscriber[T], func(T) and func().
func (o *Observable[T]) SubscribeAny(handler any) (Unsubscribe, error) {
	fn, err := subscriberOf[T](handler)
	if err != nil {
		return nil, err
	}
	return o.Subscribe(fn)
}

// ClearSubscribers drops every registration.
// Tokens issued earlier become no-ops.
func (o *Observable[T]) ClearSubscribers() {
	if o == nil {
		return
	}
	o.mu.Lock()
	o.subs = nil
	o.mu.Unlock()
}

// Len returns the number of registrations.
func (o *Observable[T]) Len() int {
	if o == nil {
		return 0
	}
	o.mu.Lock()
	n := len(o.subs)
	o.mu.Unlock()
	return n
}

// Notify calls every subscriber with a copy of the current value.
//
// The subscriber list is snapshotted first: subscribers added during the
// pass wait for the next one, and subscribers removed during the pass still
// receive it. A panicking subscriber stops the pass and the panic reaches
// the caller.
func (o *Observable[T]) Notify() {
	if o == nil {
		return
	}
	o.mu.Lock()
	value := o.value
	subs := o.copySubscribersLocked()
	o.mu.Unlock()

	for _, sub := range subs {
		sub.fn(o.copyOf(value))
	}
}

// LiveData returns the read-only view of the container.
func (o *Observable[T]) LiveData() LiveData[T] {
	return o
}

func (o *Observable[T]) store(value T) {
	o.mu.Lock()
	o.value = value
	o.mu.Unlock()
}

func (o *Observable[T]) load() T {
	o.mu.Lock()
	value := o.value
	o.mu.Unlock()
	return value
}

func (o *Observable[T]) remove(reg *registration[T]) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, sub := range o.subs {
		if sub == reg {
			o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
			return
		}
	}
}

func (o *Observable[T]) copySubscribersLocked() []*registration[T] {
	if len(o.subs) == 0 {
		return nil
	}
	subs := make([]*registration[T], len(o.subs))
	copy(subs, o.subs)
	return subs
}

func (o *Observable[T]) copyOf(value T) T {
	if o.clone != nil {
		return o.clone(value)
	}
	return ShallowCopy(value)
}
