package stackvm

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisassembleListsOpcodesAndOperands(t *testing.T) {
	b := NewScriptBuilder()
	b.PushBInt(7).PushString("hi").Add()
	var buf bytes.Buffer
	if err := Disassemble(&buf, b.Build()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"PUSH_BINT", "7", "PUSH_STRING", `"hi"`, "ADD"} {
		if !strings.Contains(out, want) {
			t.Errorf("disassembly %q missing %q", out, want)
		}
	}
}

func TestDisassembleTruncatedOperandIsError(t *testing.T) {
	// A PUSH_BINT opcode with no following operand byte.
	s := &Script{Code: []byte{byte(OpPushBInt)}}
	if err := Disassemble(&bytes.Buffer{}, s); err == nil {
		t.Fatal("expected a decode error for a truncated operand")
	}
}
