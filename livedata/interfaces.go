package livedata

// LiveData is the read-only view of a container.
type LiveData[T any] interface {
	Read() T
	Subscribe(fn Subscriber[T]) (Unsubscribe, error)
	ClearSubscribers()
}

// Writable is a container view that also accepts writes.
type Writable[T any] interface {
	LiveData[T]
	Set(value T)
	Update(fn func(T) T)
}

var (
	_ LiveData[int] = (*Observable[int])(nil)
	_ Writable[int] = (*MutableLiveData[int])(nil)
	_ LiveData[int] = (*ViewModel[int])(nil)
)
