package livedata

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// ErrInvalidHandlerType is returned when a subscriber is nil or not callable
// with the container value.
var ErrInvalidHandlerType = stderrors.New("livedata: invalid handler type")

func subscriberOf[T any](handler any) (Subscriber[T], error) {
	switch fn := handler.(type) {
	case Subscriber[T]:
		if fn != nil {
			return fn, nil
		}
	case func(T):
		if fn != nil {
			return fn, nil
		}
	case func():
		if fn != nil {
			return func(T) { fn() }, nil
		}
	}
	return nil, errors.Wrapf(ErrInvalidHandlerType, "got %T", handler)
}

// ErrNilSource is returned when a subscription target is nil.
var ErrNilSource = stderrors.New("livedata: nil source")
