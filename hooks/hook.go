// Package hooks binds live data containers to view lifecycles.
//
// A Hook copies the container value into local state when it is created,
// subscribes on Mount, folds every notification into that local state and
// asks the view to redraw, and unsubscribes exactly once on Unmount.
package hooks

import (
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/PinoFlores/live-data/livedata"
	"github.com/PinoFlores/live-data/runtime"
)

// MergeFunc folds a notified value into the previous local state.
// It runs without the hook lock held and may call Hook.State.
type MergeFunc[T any] func(prev, next T) T

// Replace is the default MergeFunc: the notified value wins.
func Replace[T any](_, next T) T {
	return next
}

// Option configures a Hook.
type Option[T any] func(*options[T])

type options[T any] struct {
	merge      MergeFunc[T]
	invalidate func()
	logger     log.FieldLogger
}

// WithMerge sets how notified values are folded into local state.
func WithMerge[T any](fn MergeFunc[T]) Option[T] {
	return func(o *options[T]) {
		if fn != nil {
			o.merge = fn
		}
	}
}

// WithInvalidate sets the callback that requests a redraw after local state
// changes, typically (*runtime.Invalidator).Invalidate.
func WithInvalidate[T any](fn func()) Option[T] {
	return func(o *options[T]) {
		o.invalidate = fn
	}
}

// WithLogger sets the logger used for lifecycle tracing.
func WithLogger[T any](logger log.FieldLogger) Option[T] {
	return func(o *options[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Hook holds a view's local copy of a container value together with the
// actions the view may call.
type Hook[T, A any] struct {
	id         ulid.ULID
	source     livedata.LiveData[T]
	action     A
	merge      MergeFunc[T]
	invalidate func()
	logger     log.FieldLogger

	mu       sync.Mutex
	state    T
	unsub    livedata.Unsubscribe
	mounted  bool
	mounting bool
}

var _ runtime.Lifecycle = (*Hook[int, struct{}])(nil)

// UseLiveData binds source to a view. The local state is seeded from a
// single Read; action is handed back unchanged by Action.
func UseLiveData[T, A any](source livedata.LiveData[T], action A, opts ...Option[T]) *Hook[T, A] {
	o := options[T]{
		merge:  Replace[T],
		logger: log.StandardLogger(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	h := &Hook[T, A]{
		id:         ulid.Make(),
		source:     source,
		action:     action,
		merge:      o.merge,
		invalidate: o.invalidate,
		logger:     o.logger,
	}
	if source != nil {
		h.state = source.Read()
	}
	return h
}

// UseMutableLiveData binds a writable container while exposing only action
// to the view.
func UseMutableLiveData[T, A any](source *livedata.MutableLiveData[T], action A, opts ...Option[T]) *Hook[T, A] {
	if source == nil {
		return UseLiveData[T, A](nil, action, opts...)
	}
	return UseLiveData(source.LiveData(), action, opts...)
}

// Publisher is implemented by view models that publish a read-only view of
// their state, such as types embedding *livedata.ViewModel.
type Publisher[T any] interface {
	LiveData() livedata.LiveData[T]
}

// UseViewModel binds a view model; the view model itself is the action.
func UseViewModel[T any, V Publisher[T]](vm V, opts ...Option[T]) *Hook[T, V] {
	return UseLiveData(vm.LiveData(), vm, opts...)
}

// ID identifies the hook in log output.
func (h *Hook[T, A]) ID() ulid.ULID {
	return h.id
}

// State returns the local state.
func (h *Hook[T, A]) State() T {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Action returns the action value supplied at creation.
func (h *Hook[T, A]) Action() A {
	return h.action
}

// Mounted reports whether the hook is currently subscribed.
func (h *Hook[T, A]) Mounted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mounted
}

// Mount subscribes to the source. Mounting a mounted hook, or mounting
// again while a Mount is still subscribing, is a no-op.
func (h *Hook[T, A]) Mount() error {
	h.mu.Lock()
	if h.mounted || h.mounting {
		h.mu.Unlock()
		return nil
	}
	h.mounting = true
	h.mu.Unlock()

	unsub, err := h.subscribe()

	h.mu.Lock()
	h.mounting = false
	if err == nil {
		h.unsub = unsub
		h.mounted = true
	}
	h.mu.Unlock()
	if err != nil {
		return err
	}

	h.logger.WithField("hook", h.id.String()).Debug("hook mounted")
	return nil
}

func (h *Hook[T, A]) subscribe() (livedata.Unsubscribe, error) {
	if h.source == nil {
		return nil, errors.Wrapf(livedata.ErrNilSource, "hook %s", h.id)
	}
	unsub, err := h.source.Subscribe(h.onChange)
	if err != nil {
		return nil, errors.Wrapf(err, "hook %s: subscribe", h.id)
	}
	return unsub, nil
}

// Unmount removes the subscription. Later notifications are ignored.
func (h *Hook[T, A]) Unmount() {
	h.mu.Lock()
	if !h.mounted {
		h.mu.Unlock()
		return
	}
	unsub := h.unsub
	h.unsub = nil
	h.mounted = false
	h.mu.Unlock()

	unsub()
	h.logger.WithField("hook", h.id.String()).Debug("hook unmounted")
}

// onChange runs the merge without the lock held, so a MergeFunc may call
// State. A notification that lands while Unmount runs is dropped.
func (h *Hook[T, A]) onChange(value T) {
	h.mu.Lock()
	if !h.mounted {
		h.mu.Unlock()
		return
	}
	prev := h.state
	h.mu.Unlock()

	merged := h.merge(prev, value)

	h.mu.Lock()
	if !h.mounted {
		h.mu.Unlock()
		return
	}
	h.state = merged
	h.mu.Unlock()

	h.logger.WithField("hook", h.id.String()).Trace("hook state merged")
	if h.invalidate != nil {
		h.invalidate()
	}
}
