package stackvm

// binaryArith pops two operands (rhs on top), checks they share an INT
// or FLOAT tag, and calls combine with same-tag operands. With
// allowString set (ADD) STRING is accepted too, which combine must handle.
func (vm *VM) binaryArith(opName string, allowString bool, combine func(a, b Value) (Value, error)) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}
	if a.Tag != b.Tag || (a.Tag != IntTag && a.Tag != FloatTag && !(allowString && a.Tag == StringTag)) {
		return vmErrorf("Cannot apply '%s' on types %s and %s", opName, a.Tag, b.Tag)
	}
	result, err := combine(a, b)
	if err != nil {
		return err
	}
	vm.push(result)
	return nil
}

func (vm *VM) opAdd() error {
	return vm.binaryArith("+", true, func(a, b Value) (Value, error) {
		switch a.Tag {
		case IntTag:
			return IntValue(a.I + b.I), nil
		case FloatTag:
			return FloatValue(a.F + b.F), nil
		default: // StringTag
			return StringValue(vm.heap.NewString(a.Obj.str + b.Obj.str)), nil
		}
	})
}

func (vm *VM) opSub() error {
	return vm.binaryArith("-", false, func(a, b Value) (Value, error) {
		if a.Tag == IntTag {
			return IntValue(a.I - b.I), nil
		}
		return FloatValue(a.F - b.F), nil
	})
}

func (vm *VM) opMul() error {
	return vm.binaryArith("*", false, func(a, b Value) (Value, error) {
		if a.Tag == IntTag {
			return IntValue(a.I * b.I), nil
		}
		return FloatValue(a.F * b.F), nil
	})
}

func (vm *VM) opDiv() error {
	return vm.binaryArith("/", false, func(a, b Value) (Value, error) {
		if a.Tag == IntTag {
			if b.I == 0 {
				return Value{}, vmErrorf("integer division by zero")
			}
			return IntValue(a.I / b.I), nil
		}
		return FloatValue(a.F / b.F), nil
	})
}

func (vm *VM) opRem() error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}
	if a.Tag != IntTag || b.Tag != IntTag {
		return vmErrorf("Cannot apply '%%' on types %s and %s", a.Tag, b.Tag)
	}
	if b.I == 0 {
		return vmErrorf("integer division by zero")
	}
	vm.push(IntValue(a.I % b.I))
	return nil
}

func (vm *VM) opPos() error {
	v, err := vm.top(0)
	if err != nil {
		return err
	}
	if v.Tag != IntTag && v.Tag != FloatTag {
		return vmErrorf("Invalid type %s", v.Tag)
	}
	return nil
}

func (vm *VM) opNeg() error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	switch v.Tag {
	case IntTag:
		vm.push(IntValue(-v.I))
	case FloatTag:
		vm.push(FloatValue(-v.F))
	default:
		return vmErrorf("Invalid type %s", v.Tag)
	}
	return nil
}
