package runtime

import "sync/atomic"

// Invalidator requests redraws with coalescing: after one successful post,
// further requests are dropped until Rendered is called.
type Invalidator struct {
	post    func() bool
	pending atomic.Bool
}

// NewInvalidator creates an invalidator wired to a post function.
// post reports whether the request reached the render loop.
func NewInvalidator(post func() bool) *Invalidator {
	return &Invalidator{post: post}
}

// Invalidate requests a render pass.
func (i *Invalidator) Invalidate() {
	if i == nil || i.post == nil {
		return
	}
	if i.pending.CompareAndSwap(false, true) {
		if !i.post() {
			i.pending.Store(false)
		}
	}
}

// Schedule runs fn and requests a render pass.
func (i *Invalidator) Schedule(fn func()) {
	if fn == nil {
		return
	}
	fn()
	i.Invalidate()
}

// Pending reports whether a posted request has not been rendered yet.
func (i *Invalidator) Pending() bool {
	if i == nil {
		return false
	}
	return i.pending.Load()
}

// Rendered clears the pending request. The render loop calls it after
// drawing.
func (i *Invalidator) Rendered() {
	if i == nil {
		return
	}
	i.pending.Store(false)
}
