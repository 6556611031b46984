package stackvm

import "math"

// bootstrapLibs populates the root libs Object (the one LOAD_LIB
// resolves against, and the one that lands at eval_stack[0]) with the
// seed bindings spec §6 names: G, null, true, false, nan, inf. This
// mirrors the teacher's own RegisterModule-based "langsam" bootstrap
// (defineValue/defineNativeFn called once into the root scope) scaled
// down to the handful of constants this VM's standard library actually
// needs.
func bootstrapLibs(heap *Heap) *HeapObject {
	libs := heap.NewObject()
	libs.fields["G"] = ObjectValue(heap.NewObject())
	libs.fields["null"] = NilValue()
	libs.fields["true"] = BoolValue(true)
	libs.fields["false"] = BoolValue(false)
	libs.fields["nan"] = FloatValue(math.NaN())
	libs.fields["inf"] = FloatValue(math.Inf(1))
	return libs
}
