package stackvm

// readStrOperand decodes the single-byte string-pool index operand
// shared by LOAD, STORE, LOAD_SUPER, STORE_SUPER, LOAD_FIELD,
// STORE_FIELD and LOAD_LIB, resolving it against the currently executing
// script's string pool (§4.1).
func (vm *VM) readStrOperand() (string, error) {
	idx, pc, err := decodeU8(vm.script.Code, vm.pc)
	if err != nil {
		return "", err
	}
	vm.pc = pc
	return vm.script.String(idx)
}

func (vm *VM) opLoad() error {
	name, err := vm.readStrOperand()
	if err != nil {
		return err
	}
	self := vm.curFrame().scope.scope.self
	v, ok := self.fields[name]
	if !ok {
		v = NilValue()
	}
	vm.push(v)
	return nil
}

func (vm *VM) opStore() error {
	name, err := vm.readStrOperand()
	if err != nil {
		return err
	}
	v, err := vm.pop()
	if err != nil {
		return err
	}
	storeInto(vm.curFrame().scope.scope.self, name, v)
	return nil
}

func storeInto(obj *HeapObject, name string, v Value) {
	if v.IsNil() {
		delete(obj.fields, name)
	} else {
		obj.fields[name] = v
	}
}

func (vm *VM) enclosingSelf() (*HeapObject, error) {
	enclosing := vm.curFrame().scope.scope.enclosing
	if enclosing == nil {
		return nil, vmErrorf("Trying to get level 0 super closure which does not exist")
	}
	return enclosing.scope.self, nil
}

func (vm *VM) opLoadSuper() error {
	name, err := vm.readStrOperand()
	if err != nil {
		return err
	}
	self, err := vm.enclosingSelf()
	if err != nil {
		return err
	}
	v, ok := self.fields[name]
	if !ok {
		v = NilValue()
	}
	vm.push(v)
	return nil
}

func (vm *VM) opStoreSuper() error {
	name, err := vm.readStrOperand()
	if err != nil {
		return err
	}
	self, err := vm.enclosingSelf()
	if err != nil {
		return err
	}
	v, err := vm.pop()
	if err != nil {
		return err
	}
	storeInto(self, name, v)
	return nil
}

func (vm *VM) opLoadField() error {
	name, err := vm.readStrOperand()
	if err != nil {
		return err
	}
	otv, err := vm.pop()
	if err != nil {
		return err
	}
	if otv.Tag != ObjectTag {
		return vmErrorf("Invalid type %s, %s expected", otv.Tag, ObjectTag)
	}
	v, ok := otv.Obj.fields[name]
	if !ok {
		v = NilValue()
	}
	vm.push(v)
	return nil
}

func (vm *VM) opStoreField() error {
	name, err := vm.readStrOperand()
	if err != nil {
		return err
	}
	v, err := vm.pop()
	if err != nil {
		return err
	}
	otv, err := vm.pop()
	if err != nil {
		return err
	}
	if otv.Tag != ObjectTag {
		return vmErrorf("Invalid type %s, %s expected", otv.Tag, ObjectTag)
	}
	storeInto(otv.Obj, name, v)
	return nil
}

func (vm *VM) opLoadItem() error {
	itv, err := vm.pop()
	if err != nil {
		return err
	}
	otv, err := vm.pop()
	if err != nil {
		return err
	}
	switch otv.Tag {
	case ObjectTag:
		if itv.Tag != StringTag {
			return vmErrorf("Invalid type %s, %s expected", itv.Tag, StringTag)
		}
		v, ok := otv.Obj.fields[itv.Obj.str]
		if !ok {
			v = NilValue()
		}
		vm.push(v)
		return nil
	case ArrayTag:
		if itv.Tag != IntTag {
			return vmErrorf("Invalid type %s, %s expected", itv.Tag, IntTag)
		}
		idx, err := normalizeIndex(otv.Obj, itv.I)
		if err != nil {
			return err
		}
		vm.push(otv.Obj.elems[idx])
		return nil
	default:
		return vmErrorf("Invalid type %s", otv.Tag)
	}
}

func (vm *VM) opStoreItem() error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	itv, err := vm.pop()
	if err != nil {
		return err
	}
	otv, err := vm.pop()
	if err != nil {
		return err
	}
	switch otv.Tag {
	case ObjectTag:
		if itv.Tag != StringTag {
			return vmErrorf("Invalid type %s, %s expected", itv.Tag, StringTag)
		}
		storeInto(otv.Obj, itv.Obj.str, v)
		return nil
	case ArrayTag:
		if itv.Tag != IntTag {
			return vmErrorf("Invalid type %s, %s expected", itv.Tag, IntTag)
		}
		idx, err := normalizeIndex(otv.Obj, itv.I)
		if err != nil {
			return err
		}
		otv.Obj.elems[idx] = v
		return nil
	default:
		return vmErrorf("Invalid type %s", otv.Tag)
	}
}

// normalizeIndex applies §4.4's negative-index rule: k < 0 means
// length+k, and the result must land in [0, length).
func normalizeIndex(arr *HeapObject, k int64) (int64, error) {
	idx := k
	if idx < 0 {
		idx += int64(len(arr.elems))
	}
	if idx < 0 || idx >= int64(len(arr.elems)) {
		return 0, vmErrorf("Array index (%d) out of bound", idx)
	}
	return idx, nil
}

func (vm *VM) opPushSelf() error {
	vm.push(ObjectValue(vm.curFrame().scope.scope.self))
	return nil
}

func (vm *VM) opPushSuper() error {
	level, pc, err := decodeU8(vm.script.Code, vm.pc)
	if err != nil {
		return err
	}
	vm.pc = pc
	scope := vm.curFrame().scope
	for i := 0; i < int(level)+1; i++ {
		scope = scope.scope.enclosing
		if scope == nil {
			return vmErrorf("Trying to get level %d super closure which does not exist", level)
		}
	}
	vm.push(ObjectValue(scope.scope.self))
	return nil
}

func (vm *VM) opPushArg() error {
	idx, pc, err := decodeU8(vm.script.Code, vm.pc)
	if err != nil {
		return err
	}
	vm.pc = pc
	f := vm.curFrame()
	if int(idx) < f.paramCount {
		vm.push(vm.stack[vm.ptr-f.paramCount+int(idx)])
	} else {
		vm.push(NilValue())
	}
	return nil
}

func (vm *VM) opPushClosure() error {
	addr, pc, err := decodeU8(vm.script.Code, vm.pc)
	if err != nil {
		return err
	}
	vm.pc = pc
	f := vm.curFrame()
	closure := vm.heap.NewClosure(f.scope, f.script, int(addr))
	vm.push(ClosureValue(closure))
	return nil
}
