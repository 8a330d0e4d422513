package fuzztests

import (
	"testing"

	"sprig/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func addSeeds(f *testing.F) {
	closure := token.WrapPlaceholder("T##closure##() -> Void")
	withArg := token.WrapPlaceholder("T##(Int) -> String##(Int) -> String##(_ someInt: Int) -> String")
	for _, s := range []string{
		"",
		"let x = 1\n",
		"foo(" + closure + ")\n",
		"foo(a: 1, b: " + closure + ", c: " + withArg + ")\n",
		"    bar(" + closure + ") { }\n",
		"let v = <#unterminated\n",
		"/* open comment\n",
		"\"unterminated string\n",
		"foo(a: { x in x }, b: [1, 2], c: (3, 4))\n",
	} {
		f.Add([]byte(s))
	}
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
