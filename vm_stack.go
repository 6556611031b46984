package stackvm

// push appends v to the evaluation stack. Every PUSH_* opcode and every
// binary operator's result funnels through here.
func (vm *VM) push(v Value) {
	vm.stack = append(vm.stack, v)
}

// pop removes and returns the top of the evaluation stack, failing if
// doing so would reach below the current frame's base — "Current stack
// frame empty" in the source's vocabulary (§7 "pop from empty frame").
func (vm *VM) pop() (Value, error) {
	if len(vm.stack) <= vm.ptr {
		return Value{}, vmErrorf("Current stack frame empty")
	}
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v, nil
}

// top returns the value `offset` slots below the current top (0 means
// the very top) without popping, failing under the same frame-base rule
// as pop. CALL uses this to inspect the closure below its arguments.
func (vm *VM) top(offset int) (Value, error) {
	idx := len(vm.stack) - 1 - offset
	if idx < vm.ptr {
		return Value{}, vmErrorf("Current stack frame empty")
	}
	return vm.stack[idx], nil
}

func (vm *VM) opDup() error {
	v, err := vm.top(0)
	if err != nil {
		return err
	}
	vm.push(v)
	return nil
}

// opNewArray implements NEW_ARRAY n (§4.4): pop n values off the top and
// compose them into an Array preserving push order (top of stack becomes
// the last element).
func (vm *VM) opNewArray() error {
	n, pc, err := decodeU8(vm.script.Code, vm.pc)
	if err != nil {
		return err
	}
	vm.pc = pc
	cnt := int(n)
	if len(vm.stack)-cnt < vm.ptr {
		return vmErrorf("Current stack frame empty")
	}
	elems := make([]Value, cnt)
	copy(elems, vm.stack[len(vm.stack)-cnt:])
	vm.stack = vm.stack[:len(vm.stack)-cnt]
	vm.push(ArrayValue(vm.heap.NewArray(elems)))
	return nil
}
