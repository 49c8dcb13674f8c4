package livedata

// ViewModel is a container meant to be embedded in a controller.
//
//	type LoginViewModel struct {
//		*livedata.ViewModel[Credentials]
//	}
//
//	func (vm *LoginViewModel) SetEmail(email string) {
//		vm.Apply(func(c Credentials) Credentials {
//			c.Email = email
//			return c
//		})
//	}
//
// The controller's own methods are its write API; Emit and Apply are the
// plumbing they call.
type ViewModel[T any] struct {
	Observable[T]
}

// NewViewModel creates a view model holding initial.
func NewViewModel[T any](initial T, opts ...Option[T]) *ViewModel[T] {
	vm := &ViewModel[T]{}
	vm.value = initial
	vm.apply(opts)
	return vm
}

// Emit stores value and notifies subscribers.
func (vm *ViewModel[T]) Emit(value T) {
	if vm == nil {
		return
	}
	vm.store(value)
	vm.Notify()
}

// Apply stores fn(previous) and notifies subscribers.
func (vm *ViewModel[T]) Apply(fn func(T) T) {
	if vm == nil {
		return
	}
	if fn != nil {
		vm.store(fn(vm.load()))
	}
	vm.Notify()
}

func (vm *ViewModel[T]) core() *Observable[T] {
	if vm == nil {
		return nil
	}
	return &vm.Observable
}

// Read returns a shallow copy of the current value.
func (vm *ViewModel[T]) Read() T { return vm.core().Read() }

// Subscribe appends fn to the subscriber list.
func (vm *ViewModel[T]) Subscribe(fn Subscriber[T]) (Unsubscribe, error) {
	return vm.core().Subscribe(fn)
}

// SubscribeAny registers a handler whose type is only known at runtime.
func (vm *ViewModel[T]) SubscribeAny(handler any) (Unsubscribe, error) {
	return vm.core().SubscribeAny(handler)
}

// ClearSubscribers drops every registration.
func (vm *ViewModel[T]) ClearSubscribers() { vm.core().ClearSubscribers() }

// Len returns the number of registrations.
func (vm *ViewModel[T]) Len() int { return vm.core().Len() }

// Notify calls every subscriber with a copy of the current value.
func (vm *ViewModel[T]) Notify() { vm.core().Notify() }

// LiveData returns the read-only view of the view model.
func (vm *ViewModel[T]) LiveData() LiveData[T] { return vm.core().LiveData() }
