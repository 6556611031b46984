package stackvm

// Script is the unit the interpreter executes: a flat byte-coded
// instruction stream plus the short-string pool its PUSH_STRING,
// LOAD_FIELD, STORE_FIELD, LOAD, STORE, LOAD_SUPER, STORE_SUPER and
// LOAD_LIB operands index into (§4.1). Compiling source text into a
// Script is explicitly out of scope (spec §1); Scripts here are always
// built directly, either by an external compiler or, in tests, by
// ScriptBuilder.
type Script struct {
	Code    []byte
	Strings []string
}

// String looks up a string-pool entry by its single-byte index,
// reporting the decoding failure spec §7 calls out ("string-pool index
// out of range").
func (s *Script) String(idx uint8) (string, error) {
	if int(idx) >= len(s.Strings) {
		return "", vmErrorf("String pool index (%d) out of range", idx)
	}
	return s.Strings[idx], nil
}
