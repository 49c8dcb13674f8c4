package livedata

import "testing"

type counterViewModel struct {
	*ViewModel[int]
}

func (c *counterViewModel) Increment() {
	c.Apply(func(v int) int { return v + 1 })
}

func (c *counterViewModel) Reset() {
	c.Emit(0)
}

func TestViewModel_Embedded(t *testing.T) {
	vm := &counterViewModel{ViewModel: NewViewModel(0)}
	var seen []int
	vm.Subscribe(func(v int) { seen = append(seen, v) })

	vm.Increment()
	vm.Increment()
	vm.Reset()

	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 0 {
		t.Fatalf("unexpected notifications: %v", seen)
	}
	if vm.Read() != 0 {
		t.Fatalf("expected 0 after reset, got %d", vm.Read())
	}
}

func TestViewModel_PublishedView(t *testing.T) {
	vm := &counterViewModel{ViewModel: NewViewModel(10)}
	var view LiveData[int] = vm.LiveData()

	calls := 0
	unsub, err := view.Subscribe(func(int) { calls++ })
	if err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	vm.Increment()
	unsub()
	vm.Increment()
	if calls != 1 {
		t.Fatalf("expected 1 call before unsubscribe, got %d", calls)
	}
	if view.Read() != 12 {
		t.Fatalf("expected 12, got %d", view.Read())
	}
}

func TestViewModel_NilReceiver(t *testing.T) {
	var vm *ViewModel[int]
	vm.Emit(1)
	vm.Apply(func(v int) int { return v + 1 })

	if got := vm.Read(); got != 0 {
		t.Fatalf("expected zero value, got %d", got)
	}
	unsub, err := vm.Subscribe(func(int) {})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	unsub()
	if _, err := vm.SubscribeAny(func(int) {}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vm.Notify()
	vm.ClearSubscribers()
	if vm.Len() != 0 {
		t.Fatalf("expected no registrations, got %d", vm.Len())
	}
	if got := vm.LiveData().Read(); got != 0 {
		t.Fatalf("expected read-only view of nil view model to read zero, got %d", got)
	}
}
