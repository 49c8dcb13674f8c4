package runtime

import "testing"

func TestInvalidator_PostsInvalidate(t *testing.T) {
	posted := 0
	invalidator := NewInvalidator(func() bool {
		posted++
		return true
	})

	invalidator.Invalidate()
	invalidator.Invalidate()
	if posted != 1 {
		t.Fatalf("expected 1 invalidate post, got %d", posted)
	}
	if !invalidator.Pending() {
		t.Fatalf("expected request to be pending")
	}

	invalidator.Rendered()
	invalidator.Invalidate()
	if posted != 2 {
		t.Fatalf("expected 2 invalidate posts after render, got %d", posted)
	}
}

func TestInvalidator_RepostsOnFailedSend(t *testing.T) {
	attempts := 0
	invalidator := NewInvalidator(func() bool {
		attempts++
		return false
	})

	invalidator.Invalidate()
	invalidator.Invalidate()
	if attempts != 2 {
		t.Fatalf("expected 2 post attempts, got %d", attempts)
	}
	if invalidator.Pending() {
		t.Fatalf("expected no pending request after failed posts")
	}
}

func TestInvalidator_Schedule(t *testing.T) {
	posted := 0
	calls := 0
	invalidator := NewInvalidator(func() bool {
		posted++
		return true
	})

	invalidator.Schedule(func() { calls++ })
	if calls != 1 {
		t.Fatalf("expected schedule to run callback, got %d", calls)
	}
	if posted != 1 {
		t.Fatalf("expected invalidate post after schedule, got %d", posted)
	}

	invalidator.Schedule(nil)
	if posted != 1 {
		t.Fatalf("expected nil schedule to be ignored, got %d posts", posted)
	}
}

func TestInvalidator_Nil(t *testing.T) {
	var invalidator *Invalidator
	invalidator.Invalidate()
	invalidator.Rendered()
	if invalidator.Pending() {
		t.Fatalf("expected nil invalidator to report nothing pending")
	}
	NewInvalidator(nil).Invalidate()
}
