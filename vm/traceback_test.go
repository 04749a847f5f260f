package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/foxvm/fvm/vm"
)

func TestTraceback_WrittenOnFatalError(t *testing.T) {
	machine := vm.NewVM()
	if err := machine.LoadWords([]uint64{26}); err != nil {
		t.Fatal(err)
	}
	var diag bytes.Buffer
	machine.DiagWriter = &diag

	if err := machine.Run(); err == nil {
		t.Fatal("expected underflow error")
	}

	out := diag.String()
	if !strings.Contains(out, "fatal:") {
		t.Errorf("expected fatal header, got %q", out)
	}
	if !strings.Contains(out, "allstack underflow") {
		t.Errorf("expected the reason in the header, got %q", out)
	}
	for _, name := range []string{"mch", "mar", "mdr", "acc", "dat", "cea", "csp"} {
		if !strings.Contains(out, name) {
			t.Errorf("register %s missing from dump", name)
		}
	}
}

func TestTraceback_Markers(t *testing.T) {
	machine := vm.NewVM()
	if err := machine.LoadWords([]uint64{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	machine.Registers[vm.RegCEA] = 1
	machine.Registers[vm.RegMCH] = vm.ChanMem
	machine.Registers[vm.RegMAR] = 3

	var out bytes.Buffer
	machine.Traceback(&out, "test failure")

	if !strings.Contains(out.String(), "> mem[0001]") {
		t.Errorf("expected CEA marker on word 1:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "* mem[0003]") {
		t.Errorf("expected MAR marker on word 3:\n%s", out.String())
	}
}

func TestTraceback_CallstackMarker(t *testing.T) {
	machine := vm.NewVM()
	if err := machine.Stack.Store(0, 10); err != nil {
		t.Fatal(err)
	}
	if err := machine.Stack.Store(1, 20); err != nil {
		t.Fatal(err)
	}
	machine.Registers[vm.RegCSP] = 1

	var out bytes.Buffer
	machine.Traceback(&out, "test failure")

	if !strings.Contains(out.String(), "> cst[0001]") {
		t.Errorf("expected CSP marker on frame 1:\n%s", out.String())
	}
}

func TestTraceback_EmptyCallstack(t *testing.T) {
	machine := vm.NewVM()

	var out bytes.Buffer
	machine.Traceback(&out, "test failure")

	if !strings.Contains(out.String(), "(empty)") {
		t.Errorf("expected empty callstack note:\n%s", out.String())
	}
}
