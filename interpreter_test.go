package stackvm

import (
	"bytes"
	"strings"
	"testing"
)

// halt appends the minimal outermost-frame epilogue every top-level
// script needs: RETURN only fires the outermost halt (errHalt) when
// exactly one value sits above the frame base, so every script under
// test that doesn't already end in its own RETURN needs this.
func halt(b *ScriptBuilder) *ScriptBuilder {
	return b.PushBInt(0).Return()
}

func runScript(t *testing.T, s *Script, stdin string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := Run(s, strings.NewReader(stdin), &out, Config{})
	return out.String(), err
}

func TestArithmeticAndOut(t *testing.T) {
	b := NewScriptBuilder()
	b.PushBInt(2).PushBInt(3).Add().PushBInt(4).Mul().Out()
	halt(b)
	out, err := runScript(t, b.Build(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "20\n" {
		t.Fatalf("got %q, want %q", out, "20\n")
	}
}

func TestStringConcat(t *testing.T) {
	b := NewScriptBuilder()
	b.PushString("foo").PushString("bar").Add().Out()
	halt(b)
	out, err := runScript(t, b.Build(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "foobar\n" {
		t.Fatalf("got %q, want %q", out, "foobar\n")
	}
}

func TestObjectFieldStoreAndNilErase(t *testing.T) {
	b := NewScriptBuilder()
	b.PushSelf().PushBInt(7).StoreField("x")
	b.PushSelf().LoadField("x").Out() // 7

	// Erase x by storing the Nil that LOAD of an unset scope variable
	// produces, then confirm LOAD_FIELD falls back to Nil.
	b.PushSelf().Load("neverAssigned").StoreField("x")
	b.PushSelf().LoadField("x").Out() // null
	halt(b)

	out, err := runScript(t, b.Build(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "7\nnull\n" {
		t.Fatalf("got %q, want %q", out, "7\nnull\n")
	}
}

func TestClosureCapturesSuper(t *testing.T) {
	b := NewScriptBuilder()
	// Root scope: x = 99.
	b.PushBInt(99).Store("x")
	skip := b.JumpPlaceholder()
	fnAddr := b.Pos()
	b.LoadSuper("x").Out().PushBInt(0).Return()
	b.PatchJump(skip, b.Pos())
	b.PushClosure(uint8(fnAddr)).Call(0).Pop()
	halt(b)

	out, err := runScript(t, b.Build(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "99\n" {
		t.Fatalf("got %q, want %q", out, "99\n")
	}
}

func TestArrayNegativeIndex(t *testing.T) {
	b := NewScriptBuilder()
	b.PushBInt(10).PushBInt(20).PushBInt(30).NewArray(3)
	b.PushBInt(-1).LoadItem().Out()
	halt(b)

	out, err := runScript(t, b.Build(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "30\n" {
		t.Fatalf("got %q, want %q", out, "30\n")
	}
}

func TestArrayIndexOutOfBoundIsVMError(t *testing.T) {
	b := NewScriptBuilder()
	b.PushBInt(1).NewArray(1).PushBInt(5).LoadItem()
	_, err := runScript(t, b.Build(), "")
	if !IsVMError(err) {
		t.Fatalf("expected a VMError, got %v", err)
	}
	if !strings.Contains(err.Error(), "out of bound") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestDivisionByZeroIsVMError(t *testing.T) {
	b := NewScriptBuilder()
	b.PushBInt(1).PushBInt(0).Div()
	_, err := runScript(t, b.Build(), "")
	if !IsVMError(err) {
		t.Fatalf("expected a VMError, got %v", err)
	}
}

func TestShiftByOutOfRangeAmountIsVMError(t *testing.T) {
	b := NewScriptBuilder()
	b.PushBInt(1).PushBInt(64).Shl()
	_, err := runScript(t, b.Build(), "")
	if !IsVMError(err) {
		t.Fatalf("expected a VMError, got %v", err)
	}
}

// TestGCReclaimsAfterReturn drives the VM manually (bypassing Run, which
// tears the heap down in a defer) so it can inspect heap state right
// after a non-outermost RETURN's GC cycle: the string allocated and
// discarded inside the call should be gone, leaving only the
// permanently-rooted libs object, its G child, and the root frame's own
// scope/self.
func TestGCReclaimsAfterReturn(t *testing.T) {
	b := NewScriptBuilder()
	skip := b.JumpPlaceholder()
	fnAddr := b.Pos()
	b.PushString("temporary").Pop()
	b.PushBInt(0).Return()
	b.PatchJump(skip, b.Pos())
	b.PushClosure(uint8(fnAddr)).Call(0).Pop()
	halt(b)

	vm := newVM(Config{}, strings.NewReader(""), &bytes.Buffer{})
	vm.libs = bootstrapLibs(vm.heap)
	rootScope := newScope(vm.heap, nil)
	script := b.Build()
	vm.frames = []*frame{{scope: rootScope, script: script, paramCount: 0, savedPtr: -1, savedPC: -1}}
	vm.script = script
	vm.stack = []Value{ObjectValue(vm.libs)}
	vm.ptr = 1
	vm.pc = 0
	for {
		op, err := vm.fetchOp()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		err = vm.dispatch(op)
		if err == errHalt {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	const wantLive = 4 // libs object, libs.G, root scope, root scope's self
	if vm.heap.Len() != wantLive {
		t.Fatalf("expected %d live objects after the inner call's RETURN GC reclaimed the temporary string, got %d", wantLive, vm.heap.Len())
	}
}

func TestInReadsWhitespaceDelimitedToken(t *testing.T) {
	b := NewScriptBuilder()
	b.In().Out()
	halt(b)

	out, err := runScript(t, b.Build(), "  hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello\n" {
		t.Fatalf("got %q, want %q", out, "hello\n")
	}
}

func TestLoadLibUnknownIsVMError(t *testing.T) {
	b := NewScriptBuilder()
	b.LoadLib("does-not-exist")
	_, err := runScript(t, b.Build(), "")
	if !IsVMError(err) {
		t.Fatalf("expected a VMError, got %v", err)
	}
}

func TestLoadLibKnownSucceeds(t *testing.T) {
	b := NewScriptBuilder()
	b.LoadLib("true").Out()
	halt(b)

	out, err := runScript(t, b.Build(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "true\n" {
		t.Fatalf("got %q, want %q", out, "true\n")
	}
}

func TestSuperLoadWithNoEnclosingScopeIsVMError(t *testing.T) {
	b := NewScriptBuilder()
	b.LoadSuper("x")
	_, err := runScript(t, b.Build(), "")
	if !IsVMError(err) {
		t.Fatalf("expected a VMError, got %v", err)
	}
	if !strings.Contains(err.Error(), "level 0 super closure") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestReturnWithWrongStackShapeIsVMError(t *testing.T) {
	b := NewScriptBuilder()
	skip := b.JumpPlaceholder()
	fnAddr := b.Pos()
	// RETURN with two values above the frame base instead of exactly one.
	b.PushBInt(1).PushBInt(2).Return()
	b.PatchJump(skip, b.Pos())
	b.PushClosure(uint8(fnAddr)).Call(0).Pop()
	_, err := runScript(t, b.Build(), "")
	if !IsVMError(err) {
		t.Fatalf("expected a VMError, got %v", err)
	}
}
