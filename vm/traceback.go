package vm

import (
	"fmt"
	"io"

	"github.com/samber/lo"
)

// Traceback writes a human-readable dump of the machine state: the
// register file, the callstack top-first with the CSP row marked, and
// the full main-memory contents with the CEA word marked (and the MAR
// word, when main memory is the selected channel).
func (vm *VM) Traceback(w io.Writer, reason string) {
	fmt.Fprintf(w, "fatal: %s\n", reason)
	fmt.Fprintf(w, "traceback of machine state:\n\n")

	nameWidth := lo.Max(lo.Map(registerNames[:], func(name string, _ int) int {
		return len(name)
	}))

	fmt.Fprintf(w, "registers:\n")
	for i, value := range vm.Registers {
		fmt.Fprintf(w, "  [%d] %-*s %020d  0x%016x\n", i, nameWidth, RegisterName(i), value, value)
	}

	fmt.Fprintf(w, "\ncallstack (top first):\n")
	stack := vm.Stack.Words()
	if len(stack) == 0 {
		fmt.Fprintf(w, "  (empty)\n")
	}
	for i := len(stack) - 1; i >= 0; i-- {
		marker := " "
		if uint64(i) == vm.Registers[RegCSP] {
			marker = ">"
		}
		fmt.Fprintf(w, "%s cst[%04d] %020d  0x%016x\n", marker, i, stack[i], stack[i])
	}

	fmt.Fprintf(w, "\nmemory:\n")
	for i, value := range vm.Mem.Words() {
		marker := " "
		switch {
		case uint64(i) == vm.Registers[RegCEA]:
			marker = ">"
		case vm.Registers[RegMCH] == ChanMem && uint64(i) == vm.Registers[RegMAR]:
			marker = "*"
		}
		fmt.Fprintf(w, "%s mem[%04d] %020d  0x%016x\n", marker, i, value, value)
	}
}
