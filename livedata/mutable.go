package livedata

// MutableLiveData is an Observable that accepts writes.
//
// Keep it private to the owner and hand out LiveData() to everyone else.
type MutableLiveData[T any] struct {
	Observable[T]
}

// NewMutable creates a writable container holding initial.
func NewMutable[T any](initial T, opts ...Option[T]) *MutableLiveData[T] {
	m := &MutableLiveData[T]{}
	m.value = initial
	m.apply(opts)
	return m
}

// Set stores value and notifies subscribers.
// Subscribers are notified even if value equals the previous one.
func (m *MutableLiveData[T]) Set(value T) {
	if m == nil {
		return
	}
	m.store(value)
	m.Notify()
}

// Update stores fn(previous) and notifies subscribers.
// fn receives the stored value, not a copy, and runs without the lock held,
// so Update is not atomic across goroutines. A nil fn leaves the value as is
// and still notifies.
func (m *MutableLiveData[T]) Update(fn func(T) T) {
	if m == nil {
		return
	}
	if fn != nil {
		m.store(fn(m.load()))
	}
	m.Notify()
}

func (m *MutableLiveData[T]) core() *Observable[T] {
	if m == nil {
		return nil
	}
	return &m.Observable
}

// Read returns a shallow copy of the current value.
func (m *MutableLiveData[T]) Read() T { return m.core().Read() }

// Subscribe appends fn to the subscriber list.
func (m *MutableLiveData[T]) Subscribe(fn Subscriber[T]) (Unsubscribe, error) {
	return m.core().Subscribe(fn)
}

// SubscribeAny registers a handler whose type is only known at runtime.
func (m *MutableLiveData[T]) SubscribeAny(handler any) (Unsubscribe, error) {
	return m.core().SubscribeAny(handler)
}

// ClearSubscribers drops every registration.
func (m *MutableLiveData[T]) ClearSubscribers() { m.core().ClearSubscribers() }

// Len returns the number of registrations.
func (m *MutableLiveData[T]) Len() int { return m.core().Len() }

// Notify calls every subscriber with a copy of the current value.
func (m *MutableLiveData[T]) Notify() { m.core().Notify() }

// LiveData returns the read-only view of the container.
func (m *MutableLiveData[T]) LiveData() LiveData[T] { return m.core().LiveData() }
