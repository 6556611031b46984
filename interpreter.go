package stackvm

import (
	"bufio"
	"errors"
	"io"
)

// errHalt is the internal control-flow signal RETURN raises from the
// outermost frame (§4.4 RETURN step 3). It never escapes Run.
var errHalt = errors.New("halt")

// VM holds all interpreter state for one run_script invocation (§4.5):
// the evaluation stack, the call-frame stack, the program counter, the
// frame base, and which script/code/string-pool is currently executing.
// A VM is single-use: create one per Run call.
type VM struct {
	heap   *Heap
	stack  []Value
	frames []*frame
	pc     int
	ptr    int
	script *Script
	libs   *HeapObject // root libs Object, also eval_stack[0]

	cfg Config
	in  *bufio.Reader
	out io.Writer
}

func newVM(cfg Config, in io.Reader, out io.Writer) *VM {
	return &VM{
		heap: NewHeap(cfg.HeapCapacityHint),
		cfg:  cfg,
		in:   bufio.NewReader(in),
		out:  out,
	}
}

func (vm *VM) curFrame() *frame { return vm.frames[len(vm.frames)-1] }

// Run executes script to completion, per §4.5: it sets up the initial
// state, dispatches opcodes until the outermost RETURN or a VM error,
// and always tears the heap down before returning (§4.2 Shutdown, §5).
func Run(script *Script, in io.Reader, out io.Writer, cfg Config) error {
	vm := newVM(cfg, in, out)
	defer vm.heap.Teardown()

	vm.libs = bootstrapLibs(vm.heap)
	rootScope := newScope(vm.heap, nil)
	vm.frames = []*frame{{scope: rootScope, script: script, paramCount: 0, savedPtr: -1, savedPC: -1}}
	vm.script = script
	vm.stack = []Value{ObjectValue(vm.libs)}
	vm.ptr = 1
	vm.pc = 0

	for {
		op, err := vm.fetchOp()
		if err != nil {
			return err
		}
		if err := vm.dispatch(op); err != nil {
			if err == errHalt {
				return nil
			}
			return err
		}
	}
}

func (vm *VM) fetchOp() (Op, error) {
	b, pc, err := decodeU8(vm.script.Code, vm.pc)
	if err != nil {
		return 0, err
	}
	vm.pc = pc
	if int(b) >= int(opCount) {
		return 0, vmErrorf("Unknown instruction %d", b)
	}
	return Op(b), nil
}

func (vm *VM) dispatch(op Op) error {
	switch op {
	case OpLoad:
		return vm.opLoad()
	case OpStore:
		return vm.opStore()
	case OpLoadSuper:
		return vm.opLoadSuper()
	case OpStoreSuper:
		return vm.opStoreSuper()
	case OpLoadField:
		return vm.opLoadField()
	case OpStoreField:
		return vm.opStoreField()
	case OpLoadItem:
		return vm.opLoadItem()
	case OpStoreItem:
		return vm.opStoreItem()
	case OpPushBInt:
		return vm.opPushInt(operandI8)
	case OpPushWInt:
		return vm.opPushInt(operandI16)
	case OpPushDWInt:
		return vm.opPushInt(operandI32)
	case OpPushInt:
		return vm.opPushInt(operandI64)
	case OpPushFloat:
		return vm.opPushFloat()
	case OpPushString:
		return vm.opPushString()
	case OpPushClosure:
		return vm.opPushClosure()
	case OpPushArg:
		return vm.opPushArg()
	case OpPushSelf:
		return vm.opPushSelf()
	case OpPushSuper:
		return vm.opPushSuper()
	case OpNewArray:
		return vm.opNewArray()
	case OpPop:
		_, err := vm.pop()
		return err
	case OpDup:
		return vm.opDup()
	case OpAdd:
		return vm.opAdd()
	case OpSub:
		return vm.opSub()
	case OpMul:
		return vm.opMul()
	case OpDiv:
		return vm.opDiv()
	case OpRem:
		return vm.opRem()
	case OpPos:
		return vm.opPos()
	case OpNeg:
		return vm.opNeg()
	case OpBAnd:
		return vm.opBitwise(op)
	case OpBOr:
		return vm.opBitwise(op)
	case OpBXor:
		return vm.opBitwise(op)
	case OpBInv:
		return vm.opBInv()
	case OpShl:
		return vm.opShift(op)
	case OpShr:
		return vm.opShift(op)
	case OpUShr:
		return vm.opShift(op)
	case OpCmpEq:
		return vm.opCmpEq(false)
	case OpCmpNe:
		return vm.opCmpEq(true)
	case OpCmpGt:
		return vm.opCmpOrder(op)
	case OpCmpLt:
		return vm.opCmpOrder(op)
	case OpCmpGe:
		return vm.opCmpOrder(op)
	case OpCmpLe:
		return vm.opCmpOrder(op)
	case OpNot:
		return vm.opNot()
	case OpLen:
		return vm.opLen()
	case OpJump:
		return vm.opJump()
	case OpJumpIf:
		return vm.opJumpCond(true)
	case OpJumpUnless:
		return vm.opJumpCond(false)
	case OpCall:
		return vm.opCall()
	case OpReturn:
		return vm.opReturn()
	case OpIn:
		return vm.opIn()
	case OpOut:
		return vm.opOut()
	case OpLoadLib:
		return vm.opLoadLib()
	default:
		return vmErrorf("Unknown instruction %d", op)
	}
}
