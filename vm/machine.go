package vm

import (
	"io"
	"os"
)

// ExecutionState represents the current state of the machine
type ExecutionState int

const (
	StateHalted ExecutionState = iota
	StateRunning
	StateError
)

// DefaultStackCapacity is the initial callstack allocation in words
const DefaultStackCapacity = 64

// VM is the complete machine context: register file, the two growable
// word channels, and the host I/O adapter. There are no globals; a
// fresh VM carries no state from earlier runs.
type VM struct {
	Registers [NumRegisters]uint64
	Mem       *Buffer
	Stack     *Buffer

	// Host adapter
	Input  ByteSource
	Output ByteSink
	Disk   io.ReadWriteSeeker

	// Diagnostics and tracebacks go here (defaults to stderr)
	DiagWriter io.Writer

	// Optional one-line-per-instruction execution trace
	TraceWriter io.Writer

	// MirrorOutputReads makes ld on the output channel with MAR=0
	// consume a byte from the input stream. Off by default: MDR
	// reads 0.
	MirrorOutputReads bool

	State     ExecutionState
	LastError error

	Cycles     uint64
	CycleLimit uint64 // 0 = unlimited
}

// NewVM creates a machine wired to the standard streams, with empty
// main memory and a small preallocated callstack
func NewVM() *VM {
	machine := &VM{
		Mem:        NewBuffer(0),
		Stack:      NewBuffer(DefaultStackCapacity),
		Input:      NewReaderSource(os.Stdin),
		Output:     NewWriterSink(os.Stdout),
		DiagWriter: os.Stderr,
	}
	machine.Registers[RegCSP] = EmptyStack
	return machine
}

// Reset returns the machine to its boot state, keeping the host
// adapter wiring but dropping all register and channel contents
func (vm *VM) Reset() {
	for i := range vm.Registers {
		vm.Registers[i] = 0
	}
	vm.Registers[RegCSP] = EmptyStack
	vm.Mem = NewBuffer(0)
	vm.Stack = NewBuffer(DefaultStackCapacity)
	vm.State = StateHalted
	vm.LastError = nil
	vm.Cycles = 0
}

// LoadWords places a ROM word image into main memory and rewinds the
// execution address
func (vm *VM) LoadWords(words []uint64) error {
	for i, w := range words {
		if err := vm.Mem.Store(uint64(i), w); err != nil {
			return err
		}
	}
	vm.Registers[RegCEA] = 0
	vm.State = StateHalted
	return nil
}
