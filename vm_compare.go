package stackvm

// opCmpEq implements CMP_EQ / CMP_NE (§4.4): mismatched tags are never
// an error, only ever "not equal".
func (vm *VM) opCmpEq(negate bool) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}
	eq := Eq(a, b)
	if negate {
		eq = !eq
	}
	vm.push(BoolValue(eq))
	return nil
}

var orderable = map[Tag]bool{IntTag: true, FloatTag: true, StringTag: true}

// opCmpOrder implements CMP_GT/CMP_LT/CMP_GE/CMP_LE. Both operands must
// share an orderable tag (INT, FLOAT, STRING); GE is "not LT" and LE is
// "not GT" per §4.4, so NaN comparisons inherit whatever IEEE-754 `<`/`>`
// say (spec §9 design note on floating-point comparison).
func (vm *VM) opCmpOrder(op Op) error {
	b, err := vm.pop()
	if err != nil {
		return err
	}
	a, err := vm.pop()
	if err != nil {
		return err
	}
	var opName string
	switch op {
	case OpCmpGt, OpCmpLe:
		opName = ">"
	default:
		opName = "<"
	}
	if a.Tag != b.Tag || !orderable[a.Tag] {
		return vmErrorf("Cannot apply '%s' on types %s and %s", opName, a.Tag, b.Tag)
	}
	switch op {
	case OpCmpGt:
		vm.push(BoolValue(Greater(a, b)))
	case OpCmpLt:
		vm.push(BoolValue(Less(a, b)))
	case OpCmpGe:
		vm.push(BoolValue(!Less(a, b)))
	case OpCmpLe:
		vm.push(BoolValue(!Greater(a, b)))
	}
	return nil
}

func (vm *VM) opNot() error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	if v.Tag != BoolTag {
		return vmErrorf("Invalid type %s, %s expected", v.Tag, BoolTag)
	}
	vm.push(BoolValue(!v.B))
	return nil
}

// opLen implements LEN (§4.4): STRING byte length, OBJECT key count,
// ARRAY element count; any other tag fails.
func (vm *VM) opLen() error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	switch v.Tag {
	case StringTag:
		vm.push(IntValue(int64(len(v.Obj.str))))
	case ObjectTag:
		vm.push(IntValue(int64(len(v.Obj.fields))))
	case ArrayTag:
		vm.push(IntValue(int64(len(v.Obj.elems))))
	default:
		return vmErrorf("Cannot apply '#' on type %s", v.Tag)
	}
	return nil
}
