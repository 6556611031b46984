package stackvm

// Heap owns every live HeapObject for one VM instance. Keeping the live
// set and the current mark colour per-instance (rather than process-wide
// globals, as the original source does) lets multiple interpreters
// coexist without sharing GC state; see SPEC_FULL.md / DESIGN.md for the
// rationale (spec §9, "Global mutable state").
type Heap struct {
	live  map[*HeapObject]struct{}
	color bool
}

// NewHeap creates an empty heap. initialCapacity is a sizing hint for the
// live-set map (see Config.HeapCapacityHint); it never affects semantics.
func NewHeap(initialCapacity int) *Heap {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &Heap{live: make(map[*HeapObject]struct{}, initialCapacity)}
}

func (h *Heap) alloc(kind objKind) *HeapObject {
	o := &HeapObject{kind: kind, color: h.color}
	h.live[o] = struct{}{}
	return o
}

func (h *Heap) NewString(s string) *HeapObject {
	o := h.alloc(kindString)
	o.str = s
	return o
}

func (h *Heap) NewObject() *HeapObject {
	o := h.alloc(kindObject)
	o.fields = make(map[string]Value)
	return o
}

func (h *Heap) NewArray(elems []Value) *HeapObject {
	o := h.alloc(kindArray)
	o.elems = elems
	return o
}

func (h *Heap) NewClosure(capturedScope *HeapObject, script *Script, entry int) *HeapObject {
	o := h.alloc(kindClosure)
	o.closure = closureData{capturedScope: capturedScope, script: script, entry: entry}
	return o
}

func (h *Heap) NewScope(enclosing *HeapObject, self *HeapObject) *HeapObject {
	o := h.alloc(kindScope)
	o.scope = scopeData{enclosing: enclosing, self: self}
	return o
}

// Len reports the number of currently live heap objects. Used by tests to
// verify the GC-safety property in spec §8 ("after run_script the live
// heap set is empty").
func (h *Heap) Len() int { return len(h.live) }

// Collect runs one mark-and-sweep cycle (§4.2). Roots are every Value
// on stack and the captured-scope chain of every frame. Marking uses an
// explicit worklist rather than host-stack recursion, per the
// "Recursive marking" design note in spec §9, so a deep or cyclic object
// graph cannot exhaust the Go call stack.
func (h *Heap) Collect(stack []Value, frames []*frame) {
	h.color = !h.color

	var worklist []*HeapObject
	push := func(o *HeapObject) {
		if o == nil || o.color == h.color {
			return
		}
		o.color = h.color
		worklist = append(worklist, o)
	}

	for _, v := range stack {
		if v.Tag == StringTag || v.Tag == ObjectTag || v.Tag == ArrayTag || v.Tag == ClosureTag {
			push(v.Obj)
		}
	}
	for _, f := range frames {
		push(f.scope)
	}

	for len(worklist) > 0 {
		n := len(worklist) - 1
		o := worklist[n]
		worklist = worklist[:n]
		switch o.kind {
		case kindObject:
			for _, v := range o.fields {
				if v.Tag == StringTag || v.Tag == ObjectTag || v.Tag == ArrayTag || v.Tag == ClosureTag {
					push(v.Obj)
				}
			}
		case kindArray:
			for _, v := range o.elems {
				if v.Tag == StringTag || v.Tag == ObjectTag || v.Tag == ArrayTag || v.Tag == ClosureTag {
					push(v.Obj)
				}
			}
		case kindClosure:
			push(o.closure.capturedScope)
		case kindScope:
			push(o.scope.self)
			push(o.scope.enclosing)
		case kindString:
			// no outgoing references
		}
	}

	for o := range h.live {
		if o.color != h.color {
			delete(h.live, o)
		}
	}
}

// Teardown destroys every remaining live object (§4.2 Shutdown), run
// after the interpreter loop exits, whether it finished normally or was
// unwound by a VM error.
func (h *Heap) Teardown() {
	clear(h.live)
}
