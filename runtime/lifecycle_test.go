package runtime

import (
	"errors"
	"testing"
)

type lifecycleNode struct {
	name      string
	children  []Node
	mountErr  error
	mounted   int
	unmounted int
	log       *[]string
}

func (n *lifecycleNode) ChildNodes() []Node {
	return n.children
}

func (n *lifecycleNode) Mount() error {
	if n.log != nil {
		*n.log = append(*n.log, "mount "+n.name)
	}
	if n.mountErr != nil {
		return n.mountErr
	}
	n.mounted++
	return nil
}

func (n *lifecycleNode) Unmount() {
	if n.log != nil {
		*n.log = append(*n.log, "unmount "+n.name)
	}
	n.unmounted++
}

type plainNode struct {
	children []Node
}

func (p *plainNode) ChildNodes() []Node {
	return p.children
}

func TestMountTree_Order(t *testing.T) {
	var log []string
	child := &lifecycleNode{name: "child", log: &log}
	root := &lifecycleNode{name: "root", log: &log, children: []Node{&plainNode{children: []Node{child}}}}

	if err := MountTree(root); err != nil {
		t.Fatalf("mount failed: %v", err)
	}
	UnmountTree(root)

	want := []string{"mount root", "mount child", "unmount child", "unmount root"}
	if len(log) != len(want) {
		t.Fatalf("unexpected lifecycle log: %v", log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("unexpected lifecycle log: %v", log)
		}
	}
}

func TestMountTree_RollsBackOnError(t *testing.T) {
	failure := errors.New("subscribe failed")
	first := &lifecycleNode{name: "first"}
	broken := &lifecycleNode{name: "broken", mountErr: failure}
	last := &lifecycleNode{name: "last"}
	root := &plainNode{children: []Node{first, broken, last}}

	err := MountTree(root)
	if !errors.Is(err, failure) {
		t.Fatalf("expected wrapped mount error, got %v", err)
	}
	if first.mounted != 1 || first.unmounted != 1 {
		t.Fatalf("expected first node rolled back, got mounted=%d unmounted=%d", first.mounted, first.unmounted)
	}
	if broken.unmounted != 0 {
		t.Fatalf("expected failed node not to be unmounted")
	}
	if last.mounted != 0 {
		t.Fatalf("expected mounting to stop at the failure")
	}
}

func TestMountTree_Nil(t *testing.T) {
	if err := MountTree(nil); err != nil {
		t.Fatalf("expected nil tree to mount cleanly, got %v", err)
	}
	UnmountTree(nil)
}
