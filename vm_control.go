package stackvm

// opJump implements unconditional JUMP: the signed 1-byte offset is
// added to the program counter after the offset itself has been read
// (§4.4 "Branches").
func (vm *VM) opJump() error {
	offset, pc, err := decodeI8(vm.script.Code, vm.pc)
	if err != nil {
		return err
	}
	vm.pc = pc + int(offset)
	return nil
}

// opJumpCond implements JUMP_IF (want=true) and JUMP_UNLESS (want=false):
// pop a BOOL, and take the branch when it equals want.
func (vm *VM) opJumpCond(want bool) error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	if v.Tag != BoolTag {
		return vmErrorf("Invalid type %s, %s expected", v.Tag, BoolTag)
	}
	offset, pc, err := decodeI8(vm.script.Code, vm.pc)
	if err != nil {
		return err
	}
	vm.pc = pc
	if v.B == want {
		vm.pc += int(offset)
	}
	return nil
}
