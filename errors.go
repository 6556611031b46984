package stackvm

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// VMError is the single coarse failure kind described in spec §7: every
// runtime failure, regardless of cause (decoding, type, bounds, stack
// shape, environment), surfaces as a VMError carrying a formatted
// message. There is no richer taxonomy at the type level — callers that
// need to distinguish causes do so by inspecting Message, the same way
// the original VM's single vm_error class carries only a printf-style
// string.
type VMError struct {
	Message string
}

func (e *VMError) Error() string { return e.Message }

func vmErrorf(format string, args ...any) error {
	return &VMError{Message: fmt.Sprintf(format, args...)}
}

// IsVMError reports whether err is a VMError, the only error kind a
// dispatch opcode is allowed to produce.
func IsVMError(err error) bool {
	_, ok := err.(*VMError)
	return ok
}

// ReportError prints err the way the single top-level handler in §7
// does: "ERROR: <message>" to w, colorized when w supports it. Heap
// teardown itself already happened inside Run's defer by the time this
// is called — ReportError only renders the message.
func ReportError(w io.Writer, err error) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s %s\n", red("ERROR:"), err.Error())
}
