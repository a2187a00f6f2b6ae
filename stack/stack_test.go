package stack

import "testing"

// frame mirrors the (node, depth) pairs search.go pushes while walking
// a trie, so these tests exercise the stack the way its one real
// caller does rather than with bare ints.
type frame struct {
	node  uint32
	depth int
}

func pushFrames(s *Stack[frame], nodes ...uint32) {
	for i, n := range nodes {
		_, _ = s.Push(frame{node: n, depth: i})
	}
}

func TestStack_PushPopOrder(t *testing.T) {
	s := NewStack[frame]()
	pushFrames(s, 1, 2, 3)

	for _, want := range []uint32{3, 2, 1} {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("Pop returned error: %v", err)
		}
		if got.node != want {
			t.Errorf("Pop() = %d, want %d", got.node, want)
		}
	}
}

func TestStack_PopEmptyReturnsError(t *testing.T) {
	s := NewStack[frame]()
	if _, err := s.Pop(); err == nil {
		t.Error("expected error popping an empty stack")
	}
}

func TestStack_PeekDoesNotRemove(t *testing.T) {
	s := NewStack[frame]()
	pushFrames(s, 7, 9)

	top, err := s.Peek()
	if err != nil {
		t.Fatalf("Peek returned error: %v", err)
	}
	if top.node != 9 {
		t.Errorf("Peek() = %d, want 9", top.node)
	}
	if s.Size() != 2 {
		t.Errorf("Peek must not remove; Size() = %d, want 2", s.Size())
	}
}

func TestStack_IsEmpty(t *testing.T) {
	s := NewStack[frame]()
	if !s.IsEmpty() {
		t.Error("new stack should be empty")
	}
	pushFrames(s, 1)
	if s.IsEmpty() {
		t.Error("stack with a pushed frame should not be empty")
	}
}

func TestStack_GrowsPastInitialCapacity(t *testing.T) {
	s := NewStack[frame]()
	for i := uint32(0); i < 64; i++ {
		if _, err := s.Push(frame{node: i}); err != nil {
			t.Fatalf("Push(%d) returned error: %v", i, err)
		}
	}
	if s.Size() != 64 {
		t.Errorf("Size() = %d, want 64", s.Size())
	}
	top, _ := s.Peek()
	if top.node != 63 {
		t.Errorf("Peek() = %d, want 63", top.node)
	}
}

func TestStack_ValueAt(t *testing.T) {
	s := NewStack[frame]()
	pushFrames(s, 10, 20, 30)

	got, err := s.ValueAt(0)
	if err != nil || got.node != 30 {
		t.Errorf("ValueAt(0) = %v, %v; want 30, nil", got, err)
	}
	got, err = s.ValueAt(2)
	if err != nil || got.node != 10 {
		t.Errorf("ValueAt(2) = %v, %v; want 10, nil", got, err)
	}
	if _, err := s.ValueAt(3); err == nil {
		t.Error("expected error for out-of-range position")
	}
}

func TestStack_Clear(t *testing.T) {
	s := NewStack[frame]()
	pushFrames(s, 1, 2, 3)
	s.Clear()
	if !s.IsEmpty() {
		t.Error("stack should be empty after Clear")
	}
	if s.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", s.Size())
	}
}

func TestStack_ResetKeepsCapacityForReuse(t *testing.T) {
	s := NewStack[frame]()
	pushFrames(s, 1, 2, 3, 4, 5)
	s.Reset()

	if !s.IsEmpty() {
		t.Error("stack should be empty after Reset")
	}
	if _, err := s.Pop(); err == nil {
		t.Error("Pop on a reset stack should error")
	}

	pushFrames(s, 100, 200)
	top, err := s.Peek()
	if err != nil || top.node != 200 {
		t.Errorf("after reuse, Peek() = %v, %v; want 200, nil", top, err)
	}
}
