package main

import "stackvm"

// demoScripts are small Scripts assembled with stackvm.ScriptBuilder, the
// way any embedder without a compiler would construct one. Bytecode files
// are a non-goal, so run and disasm work against these named, in-process
// fixtures rather than loading anything from disk.
var demoScripts = map[string]func() *stackvm.Script{
	"hello": func() *stackvm.Script {
		b := stackvm.NewScriptBuilder()
		b.PushString("hello, stack machine").Out()
		b.PushBInt(0).Return()
		return b.Build()
	},
	"arithmetic": func() *stackvm.Script {
		b := stackvm.NewScriptBuilder()
		b.PushBInt(2).PushBInt(3).Add().PushBInt(4).Mul().Out()
		b.PushBInt(0).Return()
		return b.Build()
	},
	"closure": func() *stackvm.Script {
		b := stackvm.NewScriptBuilder()
		b.PushBInt(10).Store("x")
		skip := b.JumpPlaceholder()
		makerAddr := b.Pos()
		b.LoadSuper("x").Out().PushBInt(0).Return()
		b.PatchJump(skip, b.Pos())
		b.PushClosure(uint8(makerAddr)).Call(0).Pop()
		b.PushBInt(0).Return()
		return b.Build()
	},
}

func demoNames() []string {
	names := make([]string, 0, len(demoScripts))
	for name := range demoScripts {
		names = append(names, name)
	}
	return names
}
