// Package runtime provides the mount lifecycle and redraw plumbing that
// view code uses to host live data bindings.
package runtime

import "github.com/pkg/errors"

// Node is an element of a mountable tree.
type Node any

// ChildProvider is implemented by nodes with children.
type ChildProvider interface {
	ChildNodes() []Node
}

// Lifecycle is implemented by nodes that need mount/unmount hooks.
type Lifecycle interface {
	Mount() error
	Unmount()
}

// MountTree calls Mount on nodes that implement Lifecycle, parents first.
// If a Mount fails, the nodes mounted so far are unmounted in reverse order
// and the error is returned.
func MountTree(root Node) error {
	var mounted []Lifecycle
	if err := mountNode(root, &mounted); err != nil {
		for i := len(mounted) - 1; i >= 0; i-- {
			mounted[i].Unmount()
		}
		return err
	}
	return nil
}

// UnmountTree calls Unmount on nodes that implement Lifecycle, children first.
func UnmountTree(root Node) {
	unmountNode(root)
}

func mountNode(n Node, mounted *[]Lifecycle) error {
	if n == nil {
		return nil
	}
	if m, ok := n.(Lifecycle); ok {
		if err := m.Mount(); err != nil {
			return errors.Wrapf(err, "mount %T", n)
		}
		*mounted = append(*mounted, m)
	}
	if children, ok := n.(ChildProvider); ok {
		for _, child := range children.ChildNodes() {
			if err := mountNode(child, mounted); err != nil {
				return err
			}
		}
	}
	return nil
}

func unmountNode(n Node) {
	if n == nil {
		return
	}
	if children, ok := n.(ChildProvider); ok {
		for _, child := range children.ChildNodes() {
			unmountNode(child)
		}
	}
	if m, ok := n.(Lifecycle); ok {
		m.Unmount()
	}
}
