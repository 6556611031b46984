package stackvm

import (
	"math"
	"testing"
)

func TestStringifyScalars(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{NilValue(), "null"},
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{IntValue(-42), "-42"},
		{FloatValue(1.5), "1.500000"},
		{FloatValue(math.NaN()), "nan"},
		{FloatValue(math.Inf(1)), "inf"},
		{FloatValue(math.Inf(-1)), "-inf"},
	}
	for _, c := range cases {
		if got := Stringify(c.v); got != c.want {
			t.Errorf("Stringify(%+v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestStringifyHeapIdentity(t *testing.T) {
	heap := NewHeap(0)
	obj := ObjectValue(heap.NewObject())
	if got := Stringify(obj); got[:7] != "object@" {
		t.Errorf("Stringify(object) = %q, want prefix %q", got, "object@")
	}
}

func TestEqMismatchedTags(t *testing.T) {
	if Eq(IntValue(1), FloatValue(1)) {
		t.Error("Eq should reject a mismatched tag pair even with equal numeric value")
	}
}

func TestEqStringByValue(t *testing.T) {
	heap := NewHeap(0)
	a := StringValue(heap.NewString("hi"))
	b := StringValue(heap.NewString("hi"))
	if !Eq(a, b) {
		t.Error("two distinct String heap objects with equal contents should compare equal")
	}
}

func TestEqObjectByIdentity(t *testing.T) {
	heap := NewHeap(0)
	a := ObjectValue(heap.NewObject())
	b := ObjectValue(heap.NewObject())
	if Eq(a, b) {
		t.Error("two distinct empty Objects should not compare equal")
	}
	if !Eq(a, a) {
		t.Error("an Object should compare equal to itself")
	}
}

func TestLessGreaterStrings(t *testing.T) {
	heap := NewHeap(0)
	a := StringValue(heap.NewString("abc"))
	b := StringValue(heap.NewString("abd"))
	if !Less(a, b) {
		t.Error("\"abc\" should be Less than \"abd\"")
	}
	if !Greater(b, a) {
		t.Error("\"abd\" should be Greater than \"abc\"")
	}
}
