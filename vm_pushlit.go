package stackvm

// opPushInt implements PUSH_BINT/PUSH_WINT/PUSH_DWINT/PUSH_INT: read a
// signed little-endian integer of the given operand width, sign-extend
// to 64 bits, and push it (§4.4).
func (vm *VM) opPushInt(width operandKind) error {
	var i int64
	var pc int
	var err error
	switch width {
	case operandI8:
		i, pc, err = decodeI8(vm.script.Code, vm.pc)
	case operandI16:
		i, pc, err = decodeI16(vm.script.Code, vm.pc)
	case operandI32:
		i, pc, err = decodeI32(vm.script.Code, vm.pc)
	default: // operandI64
		i, pc, err = decodeI64(vm.script.Code, vm.pc)
	}
	if err != nil {
		return err
	}
	vm.pc = pc
	vm.push(IntValue(i))
	return nil
}

func (vm *VM) opPushFloat() error {
	f, pc, err := decodeF64(vm.script.Code, vm.pc)
	if err != nil {
		return err
	}
	vm.pc = pc
	vm.push(FloatValue(f))
	return nil
}

func (vm *VM) opPushString() error {
	s, err := vm.readStrOperand()
	if err != nil {
		return err
	}
	vm.push(StringValue(vm.heap.NewString(s)))
	return nil
}
