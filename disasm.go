package stackvm

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Disassemble renders a Script's code as a human-readable listing, one
// instruction per line: offset, opcode name, and decoded operand if any.
// This is the "surrounding utility" spec §1/§6 describes as external to
// the VM core — its output format is a debugging convenience, not part
// of the runtime contract, so it is free to use the same decodeOperand
// helpers the interpreter uses without that coupling becoming a
// compatibility promise.
func Disassemble(out io.Writer, s *Script) error {
	opName := color.New(color.FgCyan).SprintFunc()
	pc := 0
	for pc < len(s.Code) {
		offset := pc
		b, next, err := decodeU8(s.Code, pc)
		if err != nil {
			return err
		}
		pc = next
		if int(b) >= int(opCount) {
			fmt.Fprintf(out, "%4d  [Unknown: %d]\n", offset, b)
			continue
		}
		op := Op(b)
		kind := opOperand[op]
		switch kind {
		case operandNone:
			fmt.Fprintf(out, "%4d  %s\n", offset, opName(op.String()))
		case operandStr:
			idx, n, err := decodeU8(s.Code, pc)
			if err != nil {
				return err
			}
			pc = n
			str, err := s.String(idx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%4d  %s %q\n", offset, opName(op.String()), str)
		case operandU8:
			v, n, err := decodeU8(s.Code, pc)
			if err != nil {
				return err
			}
			pc = n
			fmt.Fprintf(out, "%4d  %s %d\n", offset, opName(op.String()), v)
		case operandI8:
			v, n, err := decodeI8(s.Code, pc)
			if err != nil {
				return err
			}
			pc = n
			fmt.Fprintf(out, "%4d  %s %d\n", offset, opName(op.String()), v)
		case operandI16:
			v, n, err := decodeI16(s.Code, pc)
			if err != nil {
				return err
			}
			pc = n
			fmt.Fprintf(out, "%4d  %s %d\n", offset, opName(op.String()), v)
		case operandI32:
			v, n, err := decodeI32(s.Code, pc)
			if err != nil {
				return err
			}
			pc = n
			fmt.Fprintf(out, "%4d  %s %d\n", offset, opName(op.String()), v)
		case operandI64:
			v, n, err := decodeI64(s.Code, pc)
			if err != nil {
				return err
			}
			pc = n
			fmt.Fprintf(out, "%4d  %s %d\n", offset, opName(op.String()), v)
		case operandF64:
			v, n, err := decodeF64(s.Code, pc)
			if err != nil {
				return err
			}
			pc = n
			fmt.Fprintf(out, "%4d  %s %f\n", offset, opName(op.String()), v)
		}
	}
	return nil
}
