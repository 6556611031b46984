package stackvm

import "testing"

func TestCollectReclaimsUnreachable(t *testing.T) {
	heap := NewHeap(0)
	heap.NewString("garbage")
	heap.NewObject()
	if heap.Len() != 2 {
		t.Fatalf("expected 2 live objects before collect, got %d", heap.Len())
	}
	heap.Collect(nil, nil)
	if heap.Len() != 0 {
		t.Fatalf("expected 0 live objects after collect with no roots, got %d", heap.Len())
	}
}

func TestCollectKeepsStackRoots(t *testing.T) {
	heap := NewHeap(0)
	kept := heap.NewString("keep")
	heap.NewString("garbage")
	heap.Collect([]Value{StringValue(kept)}, nil)
	if heap.Len() != 1 {
		t.Fatalf("expected 1 live object after collect, got %d", heap.Len())
	}
}

func TestCollectFollowsObjectFields(t *testing.T) {
	heap := NewHeap(0)
	child := heap.NewString("child")
	parent := heap.NewObject()
	parent.fields["x"] = StringValue(child)
	heap.Collect([]Value{ObjectValue(parent)}, nil)
	if heap.Len() != 2 {
		t.Fatalf("expected parent and child both to survive, got %d live", heap.Len())
	}
}

func TestCollectFollowsArrayCycle(t *testing.T) {
	heap := NewHeap(0)
	a := heap.NewArray(nil)
	b := heap.NewArray(nil)
	a.elems = []Value{ArrayValue(b)}
	b.elems = []Value{ArrayValue(a)}
	// Neither array is reachable from any root; the cycle between them
	// must not keep either one alive, and marking must not infinite-loop.
	heap.Collect(nil, nil)
	if heap.Len() != 0 {
		t.Fatalf("expected cyclic unreachable arrays to be collected, got %d live", heap.Len())
	}
}

func TestCollectFollowsScopeChain(t *testing.T) {
	heap := NewHeap(0)
	root := newScope(heap, nil)
	child := newScope(heap, root)
	f := &frame{scope: child}
	heap.Collect(nil, []*frame{f})
	if heap.Len() != 4 { // root scope, root self, child scope, child self
		t.Fatalf("expected 4 live objects reachable through the scope chain, got %d", heap.Len())
	}
}

func TestTeardownClearsHeap(t *testing.T) {
	heap := NewHeap(0)
	heap.NewObject()
	heap.Teardown()
	if heap.Len() != 0 {
		t.Fatalf("expected 0 live objects after Teardown, got %d", heap.Len())
	}
}
