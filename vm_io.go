package stackvm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func isWhitespace(b byte) bool { return b <= 0x20 }

// readToken reads one whitespace-delimited token, skipping leading
// whitespace, up to limit bytes (§6 "bounded buffer"). An empty or
// failed read surfaces as io.EOF to the caller, which opIn turns into a
// VM error.
func readToken(r *bufio.Reader, limit int) (string, error) {
	var b byte
	var err error
	for {
		b, err = r.ReadByte()
		if err != nil {
			return "", err
		}
		if !isWhitespace(b) {
			break
		}
	}
	var sb strings.Builder
	sb.WriteByte(b)
	for sb.Len() < limit {
		b, err = r.ReadByte()
		if err != nil {
			break
		}
		if isWhitespace(b) {
			break
		}
		sb.WriteByte(b)
	}
	return sb.String(), nil
}

// opIn implements IN (§4.4, §6): read one whitespace-delimited token and
// push it as a STRING.
func (vm *VM) opIn() error {
	tok, err := readToken(vm.in, vm.cfg.inputLimit())
	if err != nil || tok == "" {
		return vmErrorf("Failed to read from stdin")
	}
	vm.push(StringValue(vm.heap.NewString(tok)))
	return nil
}

// opOut implements OUT (§4.4, §6): pop a value, stringify it, and write
// one line.
func (vm *VM) opOut() error {
	v, err := vm.pop()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(vm.out, Stringify(v)); err != nil && err != io.EOF {
		return vmErrorf("write to stdout failed: %v", err)
	}
	return nil
}

// opLoadLib implements LOAD_LIB name (§4.4): resolve name against the
// root libs Object and push the bound value, or fail if unbound.
func (vm *VM) opLoadLib() error {
	name, err := vm.readStrOperand()
	if err != nil {
		return err
	}
	v, ok := vm.libs.fields[name]
	if !ok {
		return vmErrorf("Unknown library %s", name)
	}
	vm.push(v)
	return nil
}
