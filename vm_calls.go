package stackvm

// opCall implements CALL n (§4.4). The top of the stack must already be
// laid out as closure | arg_{n-1} | … | arg_0 (closure below n args);
// CALL does not pop any of it — those n+1 values stay reserved below the
// new frame's base until the matching RETURN consumes them.
func (vm *VM) opCall() error {
	n, pc, err := decodeU8(vm.script.Code, vm.pc)
	if err != nil {
		return err
	}
	vm.pc = pc
	argCount := int(n)

	closureVal, err := vm.top(argCount)
	if err != nil {
		return err
	}
	if closureVal.Tag != ClosureTag {
		return vmErrorf("Invalid type %s, %s expected", closureVal.Tag, ClosureTag)
	}
	cd := closureVal.Obj.closure

	newFrame := &frame{
		scope:      newScope(vm.heap, cd.capturedScope),
		script:     cd.script,
		paramCount: argCount,
		savedPtr:   vm.ptr,
		savedPC:    vm.pc,
	}
	vm.frames = append(vm.frames, newFrame)
	vm.script = cd.script
	vm.pc = cd.entry
	vm.ptr = len(vm.stack)
	return nil
}

// opReturn implements RETURN (§4.4): exactly one value must sit above the
// frame base; everything from the matching CALL's closure+args down to
// that value is collapsed to just the return value, the caller's pc/ptr
// are restored, and — unless this was the outermost frame, which halts
// the interpreter instead — a GC cycle runs (§4.2).
func (vm *VM) opReturn() error {
	if len(vm.stack)-1 != vm.ptr {
		return vmErrorf("Incorrect stack top position")
	}
	retval := vm.stack[len(vm.stack)-1]
	f := vm.curFrame()
	newLen := len(vm.stack) - f.paramCount - 2
	if newLen < 0 {
		return vmErrorf("Incorrect stack top position")
	}
	vm.stack = vm.stack[:newLen]
	vm.push(retval)

	if len(vm.frames) <= 1 {
		return errHalt
	}
	vm.pc = f.savedPC
	vm.ptr = f.savedPtr
	vm.frames = vm.frames[:len(vm.frames)-1]
	vm.script = vm.curFrame().script
	if !vm.cfg.DisableGC {
		vm.heap.Collect(vm.stack, vm.frames)
	}
	return nil
}
