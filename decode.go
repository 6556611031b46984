package stackvm

import "math"

func bitsToFloat64(bits uint64) float64 { return math.Float64frombits(bits) }

// The decode helpers below (decodeU8, decodeI8, decodeI16, decodeI32,
// decodeI64, decodeF64) each read one little-endian operand starting at
// code[pc], returning the decoded value alongside the new program
// counter, or a VMError when the operand runs past the end of code.
// They are shared by the interpreter's dispatch loop and the
// disassembler (SPEC_FULL.md's "shared decodeOperand" module) so the two
// never disagree about operand width or sign extension.
//
// The signed readers always widen to int64 (decodeF64 to float64)
// regardless of source width; callers that need the raw uint8 (string-pool index,
// PUSH_ARG, PUSH_CLOSURE, PUSH_SUPER, CALL, NEW_ARRAY) use decodeU8
// instead, since those are unsigned and narrower conversions would be
// lossy in the wrong direction.

func decodeU8(code []byte, pc int) (uint8, int, error) {
	if pc < 0 || pc >= len(code) {
		return 0, pc, vmErrorf("PC (=%d) goes out of script range", pc)
	}
	return code[pc], pc + 1, nil
}

func decodeI8(code []byte, pc int) (int64, int, error) {
	b, pc, err := decodeU8(code, pc)
	if err != nil {
		return 0, pc, err
	}
	return int64(int8(b)), pc, nil
}

func decodeI16(code []byte, pc int) (int64, int, error) {
	if pc < 0 || pc+2 > len(code) {
		return 0, pc, vmErrorf("PC (=%d) goes out of script range", pc)
	}
	v := uint16(code[pc]) | uint16(code[pc+1])<<8
	return int64(int16(v)), pc + 2, nil
}

func decodeI32(code []byte, pc int) (int64, int, error) {
	if pc < 0 || pc+4 > len(code) {
		return 0, pc, vmErrorf("PC (=%d) goes out of script range", pc)
	}
	var v uint32
	for n := 0; n < 4; n++ {
		v |= uint32(code[pc+n]) << (8 * n)
	}
	return int64(int32(v)), pc + 4, nil
}

func decodeI64(code []byte, pc int) (int64, int, error) {
	if pc < 0 || pc+8 > len(code) {
		return 0, pc, vmErrorf("PC (=%d) goes out of script range", pc)
	}
	var v uint64
	for n := 0; n < 8; n++ {
		v |= uint64(code[pc+n]) << (8 * n)
	}
	return int64(v), pc + 8, nil
}

func decodeF64(code []byte, pc int) (float64, int, error) {
	i, pc, err := decodeI64(code, pc)
	if err != nil {
		return 0, pc, err
	}
	return bitsToFloat64(uint64(i)), pc, nil
}
