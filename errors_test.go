package stackvm

import (
	"bytes"
	"strings"
	"testing"
)

func TestIsVMError(t *testing.T) {
	if !IsVMError(vmErrorf("boom")) {
		t.Error("vmErrorf should produce a VMError")
	}
}

func TestReportErrorIncludesMessage(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, vmErrorf("something went wrong"))
	if !strings.Contains(buf.String(), "something went wrong") {
		t.Errorf("ReportError output %q missing the underlying message", buf.String())
	}
}
