package stackvm

// frame is a call frame (§4.3, §4.4 CALL/RETURN): it carries the scope
// active for LOAD/STORE/PUSH_SELF/PUSH_SUPER, the script the frame is
// executing, how many of its stack slots below the frame base are
// positional arguments (PUSH_ARG), and what to restore on RETURN.
type frame struct {
	scope      *HeapObject // kindScope
	script     *Script
	paramCount int
	savedPtr   int
	savedPC    int
}

// newScope allocates a fresh Scope heap object bundling enclosing with a
// freshly-allocated empty self Object, matching what CALL does for every
// invocation (§4.4 CALL step 3) and what the outermost frame gets at
// startup (§4.5).
func newScope(heap *Heap, enclosing *HeapObject) *HeapObject {
	return heap.NewScope(enclosing, heap.NewObject())
}
